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

package host

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/serializer"
)

// OS identifies the host operating system.
type OS string

// Supported host operating systems.
const (
	OSIOS     OS = "ios"
	OSAndroid OS = "android"
	OSWeb     OS = "web"
	OSWindows OS = "windows"
	OSMacOS   OS = "macos"
)

// SupportedOS returns the OS values a Snapshot may carry.
func SupportedOS() []OS {
	return []OS{OSIOS, OSAndroid, OSWeb, OSWindows, OSMacOS}
}

// IsValid reports whether o is a supported OS.
func (o OS) IsValid() bool {
	return slices.Contains(SupportedOS(), o)
}

// String returns the OS name.
func (o OS) String() string {
	return string(o)
}

// ScaledSize is a window or screen size in dp together with its pixel scale
// and font scale.
type ScaledSize struct {
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	Scale     float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	FontScale float64 `json:"fontScale,omitempty" yaml:"fontScale,omitempty"`
}

// Constants are the platform constants exposed by the host.
type Constants struct {
	// InterfaceIdiom is the iOS idiom: "phone", "pad", "tv", ...
	InterfaceIdiom string `json:"interfaceIdiom,omitempty" yaml:"interfaceIdiom,omitempty"`
	// UIMode is the Android UI mode, e.g. "normal" or "tv".
	UIMode string `json:"uiMode,omitempty" yaml:"uiMode,omitempty"`
	// SystemName is the system or model name reported by the host.
	SystemName string `json:"systemName,omitempty" yaml:"systemName,omitempty"`
}

// Native is the device identity reported by the native bridge.
type Native struct {
	Brand       string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Model       string `json:"model,omitempty" yaml:"model,omitempty"`
	BundleID    string `json:"bundleId,omitempty" yaml:"bundleId,omitempty"`
	BuildNumber string `json:"buildNumber,omitempty" yaml:"buildNumber,omitempty"`
	AppVersion  string `json:"appVersion,omitempty" yaml:"appVersion,omitempty"`
}

// Insets are safe-area insets in dp.
type Insets struct {
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
}

// Snapshot is an immutable record of host queries taken once.
type Snapshot struct {
	OS        OS         `json:"os" yaml:"os"`
	Version   string     `json:"version" yaml:"version"`
	Constants Constants  `json:"constants,omitempty" yaml:"constants,omitempty"`
	Window    ScaledSize `json:"window" yaml:"window"`
	Screen    ScaledSize `json:"screen,omitempty" yaml:"screen,omitempty"`
	Native    Native     `json:"native,omitempty" yaml:"native,omitempty"`

	// PixelRatio overrides Window.Scale when set.
	PixelRatio *float64 `json:"pixelRatio,omitempty" yaml:"pixelRatio,omitempty"`
	// FontScale overrides Window.FontScale when set.
	FontScale *float64 `json:"fontScale,omitempty" yaml:"fontScale,omitempty"`
	// SafeArea holds native safe-area insets when the host provides them.
	SafeArea *Insets `json:"safeArea,omitempty" yaml:"safeArea,omitempty"`
}

// EffectivePixelRatio returns PixelRatio, else the window scale, else 1.
func (s Snapshot) EffectivePixelRatio() float64 {
	return positiveOr(ptr.Deref(s.PixelRatio, 0), positiveOr(s.Window.Scale, 1))
}

// EffectiveFontScale returns FontScale, else the window font scale, else 1.
func (s Snapshot) EffectiveFontScale() float64 {
	return positiveOr(ptr.Deref(s.FontScale, 0), positiveOr(s.Window.FontScale, 1))
}

// EffectiveScreen returns Screen, falling back to Window when the screen
// size was not reported.
func (s Snapshot) EffectiveScreen() ScaledSize {
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return s.Window
	}
	return s.Screen
}

// SafeAreaInsets returns the native safe-area insets, or zero insets.
func (s Snapshot) SafeAreaInsets() Insets {
	return ptr.Deref(s.SafeArea, Insets{})
}

// Is reports whether the snapshot was taken on the given OS.
func (s Snapshot) Is(o OS) bool {
	return s.OS == o
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// Normalize lower-cases the OS name and trims the version string.
func (s *Snapshot) Normalize() {
	s.OS = OS(strings.ToLower(strings.TrimSpace(string(s.OS))))
	s.Version = strings.TrimSpace(s.Version)
}

// Validate checks that the snapshot names a supported OS and a positive
// window size. The version string is not validated; malformed versions
// degrade to 0 when parsed.
func (s Snapshot) Validate() error {
	if !s.OS.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported os %q", s.OS),
			map[string]any{"supported": SupportedOS()})
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"window size must be positive",
			map[string]any{"width": s.Window.Width, "height": s.Window.Height})
	}
	if s.PixelRatio != nil && *s.PixelRatio <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "pixelRatio must be positive")
	}
	if s.FontScale != nil && *s.FontScale <= 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "fontScale must be positive")
	}
	return nil
}

// Load reads a snapshot from a local JSON/YAML file or an HTTP(S) URL and
// validates it.
func Load(ctx context.Context, path string) (*Snapshot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshot path is required")
	}

	snap, err := serializer.FromFile[Snapshot](ctx, path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			"failed to load host snapshot", err, map[string]any{"path": path})
	}

	snap.Normalize()
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid host snapshot %q: %w", path, err)
	}
	return snap, nil
}
