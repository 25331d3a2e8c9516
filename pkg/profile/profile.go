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

package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/NVIDIA/devicekit/pkg/device"
	"github.com/NVIDIA/devicekit/pkg/dimensions"
	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/keyboard"
	"github.com/NVIDIA/devicekit/pkg/notch"
	"github.com/NVIDIA/devicekit/pkg/platform"
	"github.com/NVIDIA/devicekit/pkg/scaling"
)

// DefaultMaxRequirements bounds the requirements evaluated per build.
const DefaultMaxRequirements = 100

// SizeClass is the responsive width class of the window.
type SizeClass string

// Size classes.
const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// Scaling summarizes how design sizes map onto the window.
type Scaling struct {
	PixelRatio    float64   `json:"pixelRatio" yaml:"pixelRatio"`
	FontScale     float64   `json:"fontScale" yaml:"fontScale"`
	WidthRatio    float64   `json:"widthRatio" yaml:"widthRatio"`
	HeightRatio   float64   `json:"heightRatio" yaml:"heightRatio"`
	AspectRatio   float64   `json:"aspectRatio" yaml:"aspectRatio"`
	SizeClass     SizeClass `json:"sizeClass" yaml:"sizeClass"`
	IsLargeScreen bool      `json:"isLargeScreen" yaml:"isLargeScreen"`
}

// Keyboard summarizes keyboard behavior on the platform.
type Keyboard struct {
	ShowEvent                  string            `json:"showEvent" yaml:"showEvent"`
	HideEvent                  string            `json:"hideEvent" yaml:"hideEvent"`
	Behavior                   keyboard.Behavior `json:"behavior,omitempty" yaml:"behavior,omitempty"`
	AvoidingView               bool              `json:"avoidingView" yaml:"avoidingView"`
	SupportsInputAccessoryView bool              `json:"supportsInputAccessoryView" yaml:"supportsInputAccessoryView"`
}

// Profile is the aggregate view of one host snapshot.
type Profile struct {
	Platform     platform.Info       `json:"platform" yaml:"platform"`
	Device       device.Info         `json:"device" yaml:"device"`
	Orientation  device.Orientation  `json:"orientation" yaml:"orientation"`
	Cutout       notch.DisplayCutout `json:"cutout" yaml:"cutout"`
	SafeArea     dimensions.Insets   `json:"safeArea" yaml:"safeArea"`
	Window       dimensions.Window   `json:"window" yaml:"window"`
	Scaling      Scaling             `json:"scaling" yaml:"scaling"`
	Keyboard     Keyboard            `json:"keyboard" yaml:"keyboard"`
	Requirements []RequirementResult `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Satisfied    bool                `json:"satisfied" yaml:"satisfied"`
	GeneratedAt  time.Time           `json:"generatedAt" yaml:"generatedAt"`
}

// Builder assembles profiles.
type Builder struct {
	// CacheTTL sets Cache-Control on HTTP responses. Zero disables caching.
	CacheTTL time.Duration
	// MaxRequirements bounds the requirements per build. Zero uses
	// DefaultMaxRequirements.
	MaxRequirements int
}

// NewBuilder returns a Builder with defaults.
func NewBuilder() *Builder {
	return &Builder{MaxRequirements: DefaultMaxRequirements}
}

func (b *Builder) maxRequirements() int {
	if b.MaxRequirements > 0 {
		return b.MaxRequirements
	}
	return DefaultMaxRequirements
}

// Build validates snap and assembles its profile.
func (b *Builder) Build(ctx context.Context, snap host.Snapshot, reqs []Requirement) (*Profile, error) {
	start := time.Now()
	p, err := b.build(ctx, snap, reqs)
	profileBuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		profileBuildsTotal.WithLabelValues(osLabel(snap), "error").Inc()
		return nil, err
	}
	profileBuildsTotal.WithLabelValues(osLabel(snap), "ok").Inc()
	return p, nil
}

// osLabel bounds the metric label to supported OS names.
func osLabel(snap host.Snapshot) string {
	snap.Normalize()
	if !snap.OS.IsValid() {
		return "unknown"
	}
	return string(snap.OS)
}

func (b *Builder) build(ctx context.Context, snap host.Snapshot, reqs []Requirement) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "profile build cancelled", err)
	}
	snap.Normalize()
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if len(reqs) > b.maxRequirements() {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "too many requirements",
			map[string]any{"count": len(reqs), "max": b.maxRequirements()})
	}
	for _, r := range reqs {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	pm := platform.New(snap)
	dm := device.New(snap)
	km := keyboard.New(snap, nil)
	window := dimensions.FromSize(snap.Window)
	resp := dimensions.NewResponsive(window, dimensions.ResponsiveOptions{})
	sc := scaling.FromSnapshot(snap)

	p := &Profile{
		Platform:    pm.Info(),
		Device:      dm.Info(),
		Orientation: device.OrientationOf(snap.Window.Width, snap.Window.Height),
		Cutout:      notch.Cutout(dm.Info()),
		SafeArea:    dimensions.SafeArea(snap),
		Window:      window,
		Scaling: Scaling{
			PixelRatio:    sc.PixelRatio(),
			FontScale:     sc.FontScale(),
			WidthRatio:    sc.ScaleWidth(1),
			HeightRatio:   sc.ScaleHeight(1),
			AspectRatio:   resp.AspectRatio(),
			SizeClass:     sizeClass(resp),
			IsLargeScreen: pm.IsLargeScreen(),
		},
		Keyboard: Keyboard{
			ShowEvent:                  km.ShowEvent(),
			HideEvent:                  km.HideEvent(),
			Behavior:                   km.DefaultBehavior(),
			AvoidingView:               km.IsAvoidingView(),
			SupportsInputAccessoryView: km.SupportsInputAccessoryView(),
		},
		Satisfied:   true,
		GeneratedAt: time.Now().UTC(),
	}

	for _, r := range reqs {
		res := r.Evaluate(snap.OS, snap.Version)
		if !res.Satisfied {
			p.Satisfied = false
		}
		p.Requirements = append(p.Requirements, res)
	}

	return p, nil
}

func sizeClass(r dimensions.Responsive) SizeClass {
	switch {
	case r.IsSmallDevice():
		return SizeSmall
	case r.IsMediumDevice():
		return SizeMedium
	default:
		return SizeLarge
	}
}
