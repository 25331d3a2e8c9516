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

package scaling

import (
	"math"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/host"
)

// Scaler scales sizes for one window. The zero value is not useful; build
// one with New or FromSnapshot.
type Scaler struct {
	width      float64
	height     float64
	pixelRatio float64
	fontScale  float64
}

// New returns a Scaler for a window of the given size in dp. Non-positive
// pixelRatio or fontScale default to 1.
func New(width, height, pixelRatio, fontScale float64) Scaler {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	if fontScale <= 0 {
		fontScale = 1
	}
	return Scaler{width: width, height: height, pixelRatio: pixelRatio, fontScale: fontScale}
}

// FromSnapshot returns a Scaler for the snapshot's window.
func FromSnapshot(snap host.Snapshot) Scaler {
	return New(snap.Window.Width, snap.Window.Height, snap.EffectivePixelRatio(), snap.EffectiveFontScale())
}

// ScreenWidth returns the window width in dp.
func (s Scaler) ScreenWidth() float64 { return s.width }

// ScreenHeight returns the window height in dp.
func (s Scaler) ScreenHeight() float64 { return s.height }

// PixelRatio returns the device pixel ratio.
func (s Scaler) PixelRatio() float64 { return s.pixelRatio }

// FontScale returns the user font scale.
func (s Scaler) FontScale() float64 { return s.fontScale }

// ScaleWidth scales size by the window width relative to the base width.
func (s Scaler) ScaleWidth(size float64) float64 {
	return s.width / defaults.BaseWidth * size
}

// ScaleHeight scales size by the window height relative to the base height.
func (s Scaler) ScaleHeight(size float64) float64 {
	return s.height / defaults.BaseHeight * size
}

// HorizontalScale is ScaleWidth against the guideline width.
func (s Scaler) HorizontalScale(size float64) float64 {
	return s.ScaleWidth(size)
}

// VerticalScale is ScaleHeight against the guideline height.
func (s Scaler) VerticalScale(size float64) float64 {
	return s.ScaleHeight(size)
}

// ModerateScale moves size toward its horizontally scaled value by factor.
// A factor of 0 keeps size; 1 is full horizontal scaling.
func (s Scaler) ModerateScale(size, factor float64) float64 {
	return size + (s.HorizontalScale(size)-size)*factor
}

// ModerateScaleDefault is ModerateScale with the default factor of 0.5.
func (s Scaler) ModerateScaleDefault(size float64) float64 {
	return s.ModerateScale(size, defaults.ModerateScaleFactor)
}

// PixelsToDP rounds a layout size to the nearest physical pixel.
func (s Scaler) PixelsToDP(size float64) float64 {
	return math.Round(size*s.pixelRatio) / s.pixelRatio
}

// DPToPixels converts a layout size in dp to whole physical pixels.
func (s Scaler) DPToPixels(dp float64) float64 {
	return math.Round(dp * s.pixelRatio)
}

// ScaleText applies the user font scale and rounds.
func (s Scaler) ScaleText(size float64) float64 {
	return math.Round(size * s.fontScale)
}

// Summary is a serializable view of common scaled values for one size.
type Summary struct {
	Size           float64 `json:"size" yaml:"size"`
	Factor         float64 `json:"factor" yaml:"factor"`
	ScreenWidth    float64 `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight   float64 `json:"screenHeight" yaml:"screenHeight"`
	PixelRatio     float64 `json:"pixelRatio" yaml:"pixelRatio"`
	FontScale      float64 `json:"fontScale" yaml:"fontScale"`
	ScaleWidth     float64 `json:"scaleWidth" yaml:"scaleWidth"`
	ScaleHeight    float64 `json:"scaleHeight" yaml:"scaleHeight"`
	ModerateScale  float64 `json:"moderateScale" yaml:"moderateScale"`
	ScaleText      float64 `json:"scaleText" yaml:"scaleText"`
	Pixels         float64 `json:"pixels" yaml:"pixels"`
	NearestPixelDP float64 `json:"nearestPixelDp" yaml:"nearestPixelDp"`
}

// Summarize computes every scaled value for size.
func (s Scaler) Summarize(size, factor float64) Summary {
	return Summary{
		Size:           size,
		Factor:         factor,
		ScreenWidth:    s.width,
		ScreenHeight:   s.height,
		PixelRatio:     s.pixelRatio,
		FontScale:      s.fontScale,
		ScaleWidth:     s.ScaleWidth(size),
		ScaleHeight:    s.ScaleHeight(size),
		ModerateScale:  s.ModerateScale(size, factor),
		ScaleText:      s.ScaleText(size),
		Pixels:         s.DPToPixels(size),
		NearestPixelDP: s.PixelsToDP(size),
	}
}
