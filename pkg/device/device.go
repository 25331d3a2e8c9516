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

package device

import (
	"strings"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/platform"
)

// Type is the device form factor.
type Type string

// Device form factors.
const (
	TypePhone   Type = "phone"
	TypeTablet  Type = "tablet"
	TypeTV      Type = "tv"
	TypeUnknown Type = "unknown"
)

const (
	defaultBrand      = "Apple"
	defaultDeviceName = "iOS Device"
)

var notchModels = []string{
	"iPhone X", "iPhone XS", "iPhone XS Max", "iPhone XR",
	"iPhone 11", "iPhone 11 Pro", "iPhone 11 Pro Max",
	"iPhone 12", "iPhone 12 Mini", "iPhone 12 Pro", "iPhone 12 Pro Max",
	"iPhone 13", "iPhone 13 Mini", "iPhone 13 Pro", "iPhone 13 Pro Max",
	"iPhone 14", "iPhone 14 Plus",
}

var dynamicIslandModels = []string{
	"iPhone 14 Pro", "iPhone 14 Pro Max",
	"iPhone 15 Pro", "iPhone 15 Pro Max",
	"iPhone 16 Pro", "iPhone 16 Pro Max",
}

// NotchModels returns a copy of the known notch models.
func NotchModels() []string {
	return append([]string(nil), notchModels...)
}

// DynamicIslandModels returns a copy of the known Dynamic Island models.
func DynamicIslandModels() []string {
	return append([]string(nil), dynamicIslandModels...)
}

// Info describes the device.
type Info struct {
	IsIOS            bool   `json:"isIOS" yaml:"isIOS"`
	IsAndroid        bool   `json:"isAndroid" yaml:"isAndroid"`
	IsTablet         bool   `json:"isTablet" yaml:"isTablet"`
	IsTV             bool   `json:"isTV" yaml:"isTV"`
	IsLandscape      bool   `json:"isLandscape" yaml:"isLandscape"`
	HasNotch         bool   `json:"hasNotch" yaml:"hasNotch"`
	HasDynamicIsland bool   `json:"hasDynamicIsland" yaml:"hasDynamicIsland"`
	DeviceType       Type   `json:"deviceType" yaml:"deviceType"`
	DeviceName       string `json:"deviceName" yaml:"deviceName"`
	SystemVersion    string `json:"systemVersion" yaml:"systemVersion"`
	BundleID         string `json:"bundleId" yaml:"bundleId"`
	BuildNumber      string `json:"buildNumber" yaml:"buildNumber"`
	Version          string `json:"version" yaml:"version"`
	Brand            string `json:"brand" yaml:"brand"`
	Model            string `json:"model" yaml:"model"`
}

// Insets are the top and bottom display cutout insets in dp.
type Insets struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Manager answers device questions for a single snapshot.
type Manager struct {
	info Info
}

// New builds a Manager from a host snapshot.
func New(snap host.Snapshot) *Manager {
	pi := platform.New(snap).Info()
	hostName := snap.Constants.SystemName
	if hostName == "" {
		hostName = defaultDeviceName
	}

	island, notch := cutoutFor(snap)

	info := Info{
		IsIOS:            pi.IsIOS,
		IsAndroid:        pi.IsAndroid,
		IsTablet:         pi.IsTablet,
		IsTV:             pi.IsTV,
		IsLandscape:      OrientationOf(snap.Window.Width, snap.Window.Height) == Landscape,
		HasNotch:         notch,
		HasDynamicIsland: island,
		DeviceType:       typeOf(pi),
		DeviceName:       firstNonEmpty(snap.Native.Brand, hostName),
		SystemVersion:    snap.Version,
		BundleID:         snap.Native.BundleID,
		BuildNumber:      snap.Native.BuildNumber,
		Version:          snap.Native.AppVersion,
		Brand:            firstNonEmpty(snap.Native.Brand, defaultBrand),
		Model:            firstNonEmpty(snap.Native.Model, hostName),
	}
	return &Manager{info: info}
}

// cutoutFor reports Dynamic Island and notch presence. Only iOS devices are
// matched; the model falls back to the host system name.
func cutoutFor(snap host.Snapshot) (island, notch bool) {
	if snap.OS != host.OSIOS {
		return false, false
	}
	model := firstNonEmpty(snap.Native.Model, snap.Constants.SystemName)
	if model == "" {
		return false, false
	}
	if matchesAny(model, dynamicIslandModels) {
		return true, false
	}
	return false, matchesAny(model, notchModels)
}

func matchesAny(model string, list []string) bool {
	for _, m := range list {
		if strings.Contains(model, m) {
			return true
		}
	}
	return false
}

func typeOf(pi platform.Info) Type {
	switch {
	case pi.IsTV:
		return TypeTV
	case pi.IsTablet:
		return TypeTablet
	case pi.IsMobile:
		return TypePhone
	default:
		return TypeUnknown
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Info returns the device description.
func (m *Manager) Info() Info {
	return m.info
}

// IsPhone reports whether the device is a phone.
func (m *Manager) IsPhone() bool {
	return m.info.DeviceType == TypePhone
}

// HasDisplayCutout reports whether the device has a notch or Dynamic Island.
func (m *Manager) HasDisplayCutout() bool {
	return m.info.HasNotch || m.info.HasDynamicIsland
}

// DisplayCutoutInsets returns the cutout insets. Non-iOS devices report zero.
func (m *Manager) DisplayCutoutInsets() Insets {
	if !m.info.IsIOS {
		return Insets{}
	}
	in := Insets{Bottom: defaults.HomeIndicatorInset}
	switch {
	case m.info.HasDynamicIsland:
		in.Top = defaults.DynamicIslandTopInset
	case m.info.HasNotch:
		in.Top = defaults.NotchTopInset
	}
	return in
}

// StatusBarHeight returns the status bar height in dp.
func (m *Manager) StatusBarHeight() float64 {
	if !m.info.IsIOS {
		return defaults.StatusBarHeightAndroid
	}
	switch {
	case m.info.HasDynamicIsland:
		return defaults.StatusBarHeightDynamicIsland
	case m.info.HasNotch:
		return defaults.NotchTopInset
	default:
		return defaults.StatusBarHeightIOS
	}
}
