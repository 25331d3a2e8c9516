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
	"sync"

	"github.com/NVIDIA/devicekit/pkg/host"
)

// Orientation is the window orientation.
type Orientation string

// Orientations.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// OrientationOf returns Landscape when width exceeds height, otherwise
// Portrait. A square window is portrait.
func OrientationOf(width, height float64) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// IsPortrait reports whether the window is portrait.
func IsPortrait(size host.ScaledSize) bool {
	return OrientationOf(size.Width, size.Height) == Portrait
}

// IsLandscape reports whether the window is landscape.
func IsLandscape(size host.ScaledSize) bool {
	return OrientationOf(size.Width, size.Height) == Landscape
}

// DimensionsForOrientation returns width and height as seen in portrait.
// Landscape sizes are swapped.
func DimensionsForOrientation(size host.ScaledSize) (width, height float64) {
	if IsPortrait(size) {
		return size.Width, size.Height
	}
	return size.Height, size.Width
}

// OrientationWatcher tracks the window orientation from dimension-change
// events and notifies subscribers when it changes.
type OrientationWatcher struct {
	mu      sync.Mutex
	current Orientation
	sub     *host.Subscription
	changes host.Emitter[Orientation]
}

// NewOrientationWatcher starts watching src. Call Close to stop.
func NewOrientationWatcher(initial host.ScaledSize, src *host.DimensionsSource) *OrientationWatcher {
	w := &OrientationWatcher{current: OrientationOf(initial.Width, initial.Height)}
	if src != nil {
		w.sub = src.Subscribe(w.onChange)
	}
	return w
}

func (w *OrientationWatcher) onChange(ev host.DimensionsEvent) {
	next := OrientationOf(ev.Window.Width, ev.Window.Height)

	w.mu.Lock()
	changed := next != w.current
	w.current = next
	w.mu.Unlock()

	if changed {
		w.changes.Emit(next)
	}
}

// Orientation returns the latest orientation.
func (w *OrientationWatcher) Orientation() Orientation {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Subscribe registers fn for orientation changes.
func (w *OrientationWatcher) Subscribe(fn func(Orientation)) *host.Subscription {
	return w.changes.Subscribe(fn)
}

// Close stops watching the dimension source.
func (w *OrientationWatcher) Close() {
	w.sub.Remove()
}
