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

package dimensions

import (
	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/scaling"
)

// Axis selects the window dimension a percentage is taken of.
type Axis string

// Axes.
const (
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// ResponsiveOptions override the design baseline. Zero fields use the
// defaults of 375x812 and a moderate scale factor of 0.5.
type ResponsiveOptions struct {
	BaseWidth   float64
	BaseHeight  float64
	ScaleFactor float64
}

func (o ResponsiveOptions) withDefaults() ResponsiveOptions {
	if o.BaseWidth == 0 {
		o.BaseWidth = defaults.BaseWidth
	}
	if o.BaseHeight == 0 {
		o.BaseHeight = defaults.BaseHeight
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = defaults.ModerateScaleFactor
	}
	return o
}

// Responsive derives sizes for one window.
type Responsive struct {
	width  float64
	height float64
	opts   ResponsiveOptions
	scaler scaling.Scaler
}

// NewResponsive returns a Responsive for w.
func NewResponsive(w Window, opts ResponsiveOptions) Responsive {
	return Responsive{
		width:  w.Width,
		height: w.Height,
		opts:   opts.withDefaults(),
		scaler: scaling.New(w.Width, w.Height, w.Scale, w.FontScale),
	}
}

// Options returns the effective options.
func (r Responsive) Options() ResponsiveOptions {
	return r.opts
}

// WidthScale scales size by the window width relative to the base width.
func (r Responsive) WidthScale(size float64) float64 {
	return r.width / r.opts.BaseWidth * size
}

// HeightScale scales size by the window height relative to the base height.
func (r Responsive) HeightScale(size float64) float64 {
	return r.height / r.opts.BaseHeight * size
}

// ModerateScale moves size toward WidthScale(size) by the scale factor.
func (r Responsive) ModerateScale(size float64) float64 {
	return size + (r.WidthScale(size)-size)*r.opts.ScaleFactor
}

// Value picks small, medium or large by the window width class.
func (r Responsive) Value(small, medium, large float64) float64 {
	switch {
	case r.IsSmallDevice():
		return small
	case r.IsMediumDevice():
		return medium
	default:
		return large
	}
}

// FontSize scales a font size moderately against the standard baseline,
// regardless of the configured base width.
func (r Responsive) FontSize(size float64) float64 {
	return r.scaler.ModerateScale(size, defaults.FontScaleFactor)
}

// Percentage returns percent of the window dimension on axis. Any axis other
// than AxisHeight uses the width.
func (r Responsive) Percentage(percent float64, axis Axis) float64 {
	if axis == AxisHeight {
		return r.height * percent / 100
	}
	return r.width * percent / 100
}

// IsSmallDevice reports a width of at most 320dp.
func (r Responsive) IsSmallDevice() bool {
	return r.width <= defaults.SmallDeviceMaxWidth
}

// IsMediumDevice reports a width above 320dp and at most 375dp.
func (r Responsive) IsMediumDevice() bool {
	return r.width > defaults.SmallDeviceMaxWidth && r.width <= defaults.MediumDeviceMaxWidth
}

// IsLargeDevice reports a width above 375dp.
func (r Responsive) IsLargeDevice() bool {
	return r.width > defaults.MediumDeviceMaxWidth
}

// Width returns the window width.
func (r Responsive) Width() float64 { return r.width }

// Height returns the window height.
func (r Responsive) Height() float64 { return r.height }

// AspectRatio returns width / height, or 0 for a zero height.
func (r Responsive) AspectRatio() float64 {
	if r.height == 0 {
		return 0
	}
	return r.width / r.height
}
