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

package keyboard

import (
	"sync"
	"time"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/host"
)

// State is the keyboard state seen by a Tracker.
type State struct {
	Height            float64       `json:"height" yaml:"height"`
	Visible           bool          `json:"visible" yaml:"visible"`
	AnimationDuration time.Duration `json:"animationDuration" yaml:"animationDuration"`
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithAnimation sets a hook invoked before every state change, for example
// to schedule a layout animation. A nil hook disables it.
func WithAnimation(hook func()) TrackerOption {
	return func(t *Tracker) {
		t.animate = hook
	}
}

// Tracker keeps the latest keyboard state from show and hide events.
type Tracker struct {
	mu      sync.RWMutex
	state   State
	animate func()
	sub     *host.Subscription
	changes host.Emitter[State]
}

// NewTracker subscribes to m's show and hide events. Call Close to stop.
func NewTracker(m *Manager, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		state: State{AnimationDuration: defaults.KeyboardAnimationDuration},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.sub = host.Combine(
		m.AddShowListener(func(ev Event) {
			t.update(State{Height: ev.Height, Visible: true, AnimationDuration: ev.Duration})
		}),
		m.AddHideListener(func(ev Event) {
			t.update(State{AnimationDuration: ev.Duration})
		}),
	)
	return t
}

func (t *Tracker) update(next State) {
	if t.animate != nil {
		t.animate()
	}

	t.mu.Lock()
	t.state = next
	t.mu.Unlock()

	t.changes.Emit(next)
}

// State returns the latest keyboard state.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Subscribe registers fn for every state change.
func (t *Tracker) Subscribe(fn func(State)) *host.Subscription {
	return t.changes.Subscribe(fn)
}

// Close removes the show and hide listeners. It is safe to call more than
// once.
func (t *Tracker) Close() {
	t.sub.Remove()
}
