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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/devicekit/pkg/device"
	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/keyboard"
	"github.com/NVIDIA/devicekit/pkg/notch"
)

func iphone15Pro() host.Snapshot {
	return host.Snapshot{
		OS:        host.OSIOS,
		Version:   "17.4.1",
		Constants: host.Constants{InterfaceIdiom: "phone", SystemName: "iOS"},
		Window:    host.ScaledSize{Width: 393, Height: 852, Scale: 3, FontScale: 1},
		Native:    host.Native{Brand: "Apple", Model: "iPhone 15 Pro"},
		SafeArea:  &host.Insets{Top: 59, Bottom: 34},
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder()
	p, err := b.Build(t.Context(), iphone15Pro(), []Requirement{
		{Platform: host.OSIOS, MinVersion: "15.0"},
		{Platform: host.OSAndroid, MinVersion: "34"},
	})
	require.NoError(t, err)

	assert.True(t, p.Platform.IsIOS)
	assert.Equal(t, 17, p.Platform.MajorVersion)
	assert.Equal(t, 4, p.Platform.MinorVersion)
	assert.True(t, p.Device.HasDynamicIsland)
	assert.Equal(t, device.TypePhone, p.Device.DeviceType)
	assert.Equal(t, device.Portrait, p.Orientation)
	assert.Equal(t, notch.CutoutDynamicIsland, p.Cutout.Type)
	assert.Equal(t, 59.0, p.SafeArea.Top)
	assert.True(t, p.Window.IsPortrait)
	assert.Equal(t, 3.0, p.Scaling.PixelRatio)
	assert.InDelta(t, 393.0/375.0, p.Scaling.WidthRatio, 1e-9)
	assert.Equal(t, SizeLarge, p.Scaling.SizeClass)
	assert.False(t, p.Scaling.IsLargeScreen)
	assert.Equal(t, keyboard.EventWillShow, p.Keyboard.ShowEvent)
	assert.Equal(t, keyboard.BehaviorPadding, p.Keyboard.Behavior)
	assert.True(t, p.Keyboard.SupportsInputAccessoryView)
	require.Len(t, p.Requirements, 2)
	assert.True(t, p.Requirements[0].Satisfied)
	assert.False(t, p.Requirements[1].Applicable)
	assert.True(t, p.Satisfied)
	assert.False(t, p.GeneratedAt.IsZero())
}

func TestBuildUnsatisfied(t *testing.T) {
	p, err := NewBuilder().Build(t.Context(), iphone15Pro(), []Requirement{{MinVersion: "18"}})
	require.NoError(t, err)
	assert.False(t, p.Satisfied)
}

func TestBuildSizeClasses(t *testing.T) {
	snap := iphone15Pro()
	snap.Window.Width = 320
	p, err := NewBuilder().Build(t.Context(), snap, nil)
	require.NoError(t, err)
	assert.Equal(t, SizeSmall, p.Scaling.SizeClass)
	assert.Empty(t, p.Requirements)
	assert.True(t, p.Satisfied)

	snap.Window.Width = 375
	p, err = NewBuilder().Build(t.Context(), snap, nil)
	require.NoError(t, err)
	assert.Equal(t, SizeMedium, p.Scaling.SizeClass)
}

func TestBuildNormalizesOS(t *testing.T) {
	snap := iphone15Pro()
	snap.OS = " iOS "
	p, err := NewBuilder().Build(t.Context(), snap, nil)
	require.NoError(t, err)
	assert.Equal(t, host.OSIOS, p.Platform.OS)
}

func TestBuildErrors(t *testing.T) {
	t.Run("invalid snapshot", func(t *testing.T) {
		snap := iphone15Pro()
		snap.Window.Width = 0
		_, err := NewBuilder().Build(t.Context(), snap, nil)
		assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	})

	t.Run("too many requirements", func(t *testing.T) {
		b := &Builder{MaxRequirements: 1}
		_, err := b.Build(t.Context(), iphone15Pro(), []Requirement{{MinVersion: "1"}, {MinVersion: "2"}})
		assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	})

	t.Run("invalid requirement", func(t *testing.T) {
		_, err := NewBuilder().Build(t.Context(), iphone15Pro(), []Requirement{{Platform: "palm", MinVersion: "1"}})
		assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := NewBuilder().Build(ctx, iphone15Pro(), nil)
		assert.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
	})
}

func TestOSLabel(t *testing.T) {
	assert.Equal(t, "ios", osLabel(host.Snapshot{OS: "IOS"}))
	assert.Equal(t, "unknown", osLabel(host.Snapshot{OS: "symbian"}))
}
