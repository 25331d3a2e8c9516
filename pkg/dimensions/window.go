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
	"sync"

	"github.com/NVIDIA/devicekit/pkg/host"
)

// Window is the window size with orientation flags. A square window is
// neither portrait nor landscape.
type Window struct {
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	Scale       float64 `json:"scale" yaml:"scale"`
	FontScale   float64 `json:"fontScale" yaml:"fontScale"`
	IsPortrait  bool    `json:"isPortrait" yaml:"isPortrait"`
	IsLandscape bool    `json:"isLandscape" yaml:"isLandscape"`
}

// FromSize builds a Window from a host size.
func FromSize(size host.ScaledSize) Window {
	return Window{
		Width:       size.Width,
		Height:      size.Height,
		Scale:       size.Scale,
		FontScale:   size.FontScale,
		IsPortrait:  size.Height > size.Width,
		IsLandscape: size.Width > size.Height,
	}
}

// Watcher holds the current Window and updates it from a dimension source.
type Watcher struct {
	mu      sync.RWMutex
	current Window
	sub     *host.Subscription
	changes host.Emitter[Window]
}

// NewWatcher starts watching src with initial as the current window.
// A nil src yields a watcher that never changes.
func NewWatcher(initial host.ScaledSize, src *host.DimensionsSource) *Watcher {
	w := &Watcher{current: FromSize(initial)}
	if src != nil {
		w.sub = src.Subscribe(w.onChange)
	}
	return w
}

func (w *Watcher) onChange(ev host.DimensionsEvent) {
	next := FromSize(ev.Window)

	w.mu.Lock()
	w.current = next
	w.mu.Unlock()

	w.changes.Emit(next)
}

// Window returns the latest window dimensions.
func (w *Watcher) Window() Window {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Subscribe registers fn for every dimension change.
func (w *Watcher) Subscribe(fn func(Window)) *host.Subscription {
	return w.changes.Subscribe(fn)
}

// Close detaches the watcher from its source. It is safe to call more than
// once.
func (w *Watcher) Close() {
	w.sub.Remove()
}
