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

package defaults

// Design baseline. Sizes in layouts are authored against a 375x812 dp
// portrait screen and scaled from there.
const (
	// BaseWidth is the baseline screen width in dp.
	BaseWidth = 375.0

	// BaseHeight is the baseline screen height in dp.
	BaseHeight = 812.0

	// ModerateScaleFactor is the default share of the width ratio applied by
	// moderate scaling.
	ModerateScaleFactor = 0.5

	// FontScaleFactor is the moderate scaling factor used for font sizes.
	FontScaleFactor = 0.3
)

// Width breakpoints in dp.
const (
	// SmallDeviceMaxWidth is the widest window still considered small.
	SmallDeviceMaxWidth = 320.0

	// MediumDeviceMaxWidth is the widest window still considered medium.
	MediumDeviceMaxWidth = 375.0

	// TabletMinWidth is the Android window width in dp at which a device is
	// treated as a tablet.
	TabletMinWidth = 600.0

	// LargeScreenMinSide is the shortest window side at which a screen is
	// considered large.
	LargeScreenMinSide = 768.0
)

// iOS display insets in points.
const (
	// DynamicIslandTopInset is the top inset on Dynamic Island devices.
	DynamicIslandTopInset = 59.0

	// NotchTopInset is the top inset on notch devices.
	NotchTopInset = 44.0

	// HomeIndicatorInset is the bottom inset for the home indicator.
	HomeIndicatorInset = 34.0

	// StatusBarHeightIOS is the status bar height on iOS devices without a cutout.
	StatusBarHeightIOS = 20.0

	// StatusBarHeightDynamicIsland is the status bar height on Dynamic Island devices.
	StatusBarHeightDynamicIsland = 54.0

	// StatusBarHeightAndroid is the default Android status bar height.
	StatusBarHeightAndroid = 24.0
)

// Platform version thresholds.
const (
	// InputAccessoryViewMinIOSMajor is the first iOS major version that
	// supports input accessory views.
	InputAccessoryViewMinIOSMajor = 12
)
