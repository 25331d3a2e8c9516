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

package platform

import (
	"math"
	"strconv"
	"strings"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/version"
)

// Info describes the host platform.
type Info struct {
	OS           host.OS `json:"os" yaml:"os"`
	Version      string  `json:"version" yaml:"version"`
	IsIOS        bool    `json:"isIOS" yaml:"isIOS"`
	IsAndroid    bool    `json:"isAndroid" yaml:"isAndroid"`
	IsWeb        bool    `json:"isWeb" yaml:"isWeb"`
	IsMobile     bool    `json:"isMobile" yaml:"isMobile"`
	IsDesktop    bool    `json:"isDesktop" yaml:"isDesktop"`
	IsTV         bool    `json:"isTV" yaml:"isTV"`
	IsTablet     bool    `json:"isTablet" yaml:"isTablet"`
	MajorVersion int     `json:"majorVersion" yaml:"majorVersion"`
	MinorVersion int     `json:"minorVersion" yaml:"minorVersion"`
}

// Dimensions pairs the window and screen sizes.
type Dimensions struct {
	Window host.ScaledSize `json:"window" yaml:"window"`
	Screen host.ScaledSize `json:"screen" yaml:"screen"`
}

// Manager answers platform questions for a single snapshot.
type Manager struct {
	snap host.Snapshot
	info Info
}

// New builds a Manager from a host snapshot.
func New(snap host.Snapshot) *Manager {
	major, minor := splitVersion(snap.OS, snap.Version)
	return &Manager{
		snap: snap,
		info: Info{
			OS:           snap.OS,
			Version:      snap.Version,
			IsIOS:        snap.OS == host.OSIOS,
			IsAndroid:    snap.OS == host.OSAndroid,
			IsWeb:        snap.OS == host.OSWeb,
			IsMobile:     snap.OS == host.OSIOS || snap.OS == host.OSAndroid,
			IsDesktop:    snap.OS == host.OSWindows || snap.OS == host.OSMacOS,
			IsTV:         isTV(snap),
			IsTablet:     isTablet(snap),
			MajorVersion: major,
			MinorVersion: minor,
		},
	}
}

// splitVersion returns major and minor. iOS reports a dotted version; other
// hosts report a single integer such as the Android API level.
func splitVersion(os host.OS, raw string) (int, int) {
	if os == host.OSIOS {
		v := version.Parse(raw)
		return v.Major, v.Minor
	}
	return leadingInt(raw), 0
}

// leadingInt reads the integer prefix of s, or 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func isTablet(snap host.Snapshot) bool {
	switch snap.OS {
	case host.OSIOS:
		return snap.Constants.InterfaceIdiom == "pad"
	case host.OSAndroid:
		scale := snap.Window.Scale
		if scale <= 0 {
			scale = 1
		}
		return snap.Window.Width/scale >= defaults.TabletMinWidth
	default:
		return false
	}
}

func isTV(snap host.Snapshot) bool {
	switch snap.OS {
	case host.OSIOS:
		return snap.Constants.InterfaceIdiom == "tv"
	case host.OSAndroid:
		return strings.Contains(snap.Constants.UIMode, "tv")
	default:
		return false
	}
}

// Info returns the platform description.
func (m *Manager) Info() Info {
	return m.info
}

// Snapshot returns the snapshot the manager was built from.
func (m *Manager) Snapshot() host.Snapshot {
	return m.snap
}

// IsAtLeastIOS reports whether the host runs iOS at or above the given
// major.minor version. Non-iOS hosts always return false.
func (m *Manager) IsAtLeastIOS(required string) bool {
	if !m.info.IsIOS {
		return false
	}
	req := version.Parse(required)
	if m.info.MajorVersion != req.Major {
		return m.info.MajorVersion > req.Major
	}
	return m.info.MinorVersion >= req.Minor
}

// IsAtLeastAndroid reports whether the host runs Android at or above the
// given API level. Non-Android hosts always return false.
func (m *Manager) IsAtLeastAndroid(apiLevel int) bool {
	return m.info.IsAndroid && m.info.MajorVersion >= apiLevel
}

// Dimensions returns the window and screen sizes.
func (m *Manager) Dimensions() Dimensions {
	return Dimensions{Window: m.snap.Window, Screen: m.snap.EffectiveScreen()}
}

// IsLargeScreen reports whether the shorter window side is at least 768dp.
func (m *Manager) IsLargeScreen() bool {
	return math.Min(m.snap.Window.Width, m.snap.Window.Height) >= defaults.LargeScreenMinSide
}

// CurrentVersion returns the raw host version string.
func (m *Manager) CurrentVersion() string {
	return m.snap.Version
}

// IsAtLeast reports whether the host version is at least target using
// three-component version comparison.
func (m *Manager) IsAtLeast(target string) bool {
	return version.IsAtLeast(target, m.snap.Version)
}
