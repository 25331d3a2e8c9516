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

// Package device identifies the physical device behind a host snapshot:
// its form factor, whether it has a notch or Dynamic Island, cutout insets,
// status bar height and orientation.
//
// Cutout detection matches the device model against static lists of known
// iPhone models. Dynamic Island models are checked first, so a model such as
// "iPhone 14 Pro" is reported as having a Dynamic Island and not a notch.
//
//	m := device.New(snap)
//	if m.HasDisplayCutout() {
//	    top := m.DisplayCutoutInsets().Top
//	    ...
//	}
//
// OrientationWatcher follows dimension-change events and notifies
// subscribers only when the orientation actually flips.
package device
