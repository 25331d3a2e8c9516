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

// Package notch classifies the display cutout of a device and reports the
// padding needed to keep content clear of it.
//
// A cutout is derived from a device.Info:
//
//	info := device.New(snap).Info()
//	c := notch.Cutout(info)
//	// c.Type == notch.CutoutDynamicIsland, c.TopInset == 59, c.BottomInset == 34
//
// Insets in points:
//
//	Dynamic Island  top 59, bottom 34
//	Notch           top 44, bottom 34
//	None (iOS)      top 20, bottom 0
//	None (other)    top 0,  bottom 0
package notch
