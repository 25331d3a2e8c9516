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

package notch

import (
	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/device"
)

// CutoutType is the kind of display cutout.
type CutoutType string

// Cutout kinds.
const (
	CutoutNotch         CutoutType = "notch"
	CutoutDynamicIsland CutoutType = "dynamicIsland"
	CutoutNone          CutoutType = "none"
)

// DisplayCutout describes the cutout and its insets in dp.
type DisplayCutout struct {
	Type        CutoutType `json:"type" yaml:"type"`
	TopInset    float64    `json:"topInset" yaml:"topInset"`
	BottomInset float64    `json:"bottomInset" yaml:"bottomInset"`
}

// Padding is the top and bottom padding in dp.
type Padding struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Cutout returns the display cutout for info. Devices without a cutout get
// the plain iOS status bar height on top, or nothing on other platforms.
func Cutout(info device.Info) DisplayCutout {
	switch {
	case info.HasDynamicIsland:
		return DisplayCutout{
			Type:        CutoutDynamicIsland,
			TopInset:    defaults.DynamicIslandTopInset,
			BottomInset: defaults.HomeIndicatorInset,
		}
	case info.HasNotch:
		return DisplayCutout{
			Type:        CutoutNotch,
			TopInset:    defaults.NotchTopInset,
			BottomInset: defaults.HomeIndicatorInset,
		}
	}

	c := DisplayCutout{Type: CutoutNone}
	if info.IsIOS {
		c.TopInset = defaults.StatusBarHeightIOS
	}
	return c
}

// SafePadding returns the padding that clears the cutout.
func SafePadding(info device.Info) Padding {
	c := Cutout(info)
	return Padding{Top: c.TopInset, Bottom: c.BottomInset}
}

// HasDisplayCutout reports whether the device has any cutout.
func HasDisplayCutout(info device.Info) bool {
	return Cutout(info).Type != CutoutNone
}

// StatusBarHeight returns the top inset of the cutout.
func StatusBarHeight(info device.Info) float64 {
	return Cutout(info).TopInset
}
