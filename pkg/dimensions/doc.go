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

// Package dimensions tracks window dimensions and derives responsive sizes
// and safe-area padding from them.
//
// Window is a point-in-time view of the window with orientation flags. A
// Watcher keeps the latest Window from a host dimension source until it is
// closed. Responsive scales design sizes against a configurable baseline and
// picks values by device size class:
//
//	r := dimensions.NewResponsive(w, dimensions.ResponsiveOptions{})
//	padding := r.Value(8, 12, 16)
//	title := r.FontSize(20)
package dimensions
