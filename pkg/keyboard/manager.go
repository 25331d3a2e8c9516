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
	"context"
	"time"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/version"
)

// Behavior is the keyboard-avoiding behavior suited to a platform.
type Behavior string

// Keyboard-avoiding behaviors.
const (
	BehaviorPadding Behavior = "padding"
	BehaviorHeight  Behavior = "height"
	BehaviorNone    Behavior = ""
)

// Manager exposes keyboard events for one host.
type Manager struct {
	os      host.OS
	version string
	src     Source
}

// New returns a Manager for snap reading from src. A nil src gets a
// MemorySource with no publisher.
func New(snap host.Snapshot, src Source) *Manager {
	if src == nil {
		src = NewMemorySource()
	}
	return &Manager{os: snap.OS, version: snap.Version, src: src}
}

// ShowEvent returns the platform's keyboard show event name.
func (m *Manager) ShowEvent() string {
	if m.os == host.OSIOS {
		return EventWillShow
	}
	return EventDidShow
}

// HideEvent returns the platform's keyboard hide event name.
func (m *Manager) HideEvent() string {
	if m.os == host.OSIOS {
		return EventWillHide
	}
	return EventDidHide
}

// AddShowListener registers fn for keyboard show events.
func (m *Manager) AddShowListener(fn func(Event)) *host.Subscription {
	return m.src.AddListener(m.ShowEvent(), fn)
}

// AddHideListener registers fn for keyboard hide events.
func (m *Manager) AddHideListener(fn func(Event)) *host.Subscription {
	return m.src.AddListener(m.HideEvent(), fn)
}

// Dismiss hides the keyboard.
func (m *Manager) Dismiss() {
	m.src.Dismiss()
}

// ScheduleDismiss dismisses the keyboard after delay unless ctx ends first.
// The returned channel yields nil after dismissing or the context error, and
// is then closed.
func (m *Manager) ScheduleDismiss(ctx context.Context, delay time.Duration) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			done <- ctx.Err()
		case <-timer.C:
			m.src.Dismiss()
			done <- nil
		}
	}()
	return done
}

// Height returns the keyboard height carried by ev.
func (m *Manager) Height(ev Event) float64 {
	return ev.Height
}

// AnimationDuration returns the animation duration carried by ev.
func (m *Manager) AnimationDuration(ev Event) time.Duration {
	return ev.Duration
}

// SupportsInputAccessoryView reports iOS 12 or later.
func (m *Manager) SupportsInputAccessoryView() bool {
	return m.os == host.OSIOS && version.Parse(m.version).Major >= defaults.InputAccessoryViewMinIOSMajor
}

// AddAndroidSoftInputListener calls fn with true when the keyboard opens and
// false when it closes. Off Android it registers nothing.
func (m *Manager) AddAndroidSoftInputListener(fn func(open bool)) *host.Subscription {
	if m.os != host.OSAndroid || fn == nil {
		return host.NewSubscription(nil)
	}
	return host.Combine(
		m.src.AddListener(EventDidShow, func(Event) { fn(true) }),
		m.src.AddListener(EventDidHide, func(Event) { fn(false) }),
	)
}

// IsAvoidingView reports whether views should avoid the keyboard, which is
// only the case on iOS.
func (m *Manager) IsAvoidingView() bool {
	return m.os == host.OSIOS
}

// DefaultBehavior returns the keyboard-avoiding behavior for the platform.
func (m *Manager) DefaultBehavior() Behavior {
	switch m.os {
	case host.OSIOS:
		return BehaviorPadding
	case host.OSAndroid:
		return BehaviorHeight
	default:
		return BehaviorNone
	}
}
