// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scaling converts design sizes drawn against a 375x812 dp baseline
// into sizes for the actual window, and converts between dp and physical
// pixels.
//
//	s := scaling.FromSnapshot(snap)
//	w := s.ScaleWidth(16)          // 16 * width / 375
//	m := s.ModerateScale(16, 0.5)  // 16 + (ScaleWidth(16) - 16) * 0.5
//	px := s.DPToPixels(16)         // round(16 * pixelRatio)
//
// A Scaler is an immutable value.
package scaling
