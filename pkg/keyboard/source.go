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
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/NVIDIA/devicekit/pkg/host"
)

// Keyboard event names.
const (
	EventWillShow = "keyboardWillShow"
	EventWillHide = "keyboardWillHide"
	EventDidShow  = "keyboardDidShow"
	EventDidHide  = "keyboardDidHide"
)

// Event is a keyboard show or hide notification.
type Event struct {
	// Height is the keyboard height in dp at the end of the animation.
	Height float64 `json:"height" yaml:"height"`
	// Duration is the animation duration.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Source delivers keyboard events and can dismiss the keyboard.
type Source interface {
	AddListener(name string, h host.Handler[Event]) *host.Subscription
	Dismiss()
}

// MemorySource is an in-process Source backed by a host.Bus.
type MemorySource struct {
	bus       *host.Bus[Event]
	dismissed atomic.Int64
}

// NewMemorySource returns an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{bus: host.NewBus[Event]()}
}

// AddListener implements Source.
func (s *MemorySource) AddListener(name string, h host.Handler[Event]) *host.Subscription {
	return s.bus.AddListener(name, h)
}

// Publish delivers ev to the listeners of name.
func (s *MemorySource) Publish(name string, ev Event) {
	s.bus.Publish(name, ev)
}

// Dismiss implements Source. It records the call and publishes nothing.
func (s *MemorySource) Dismiss() {
	n := s.dismissed.Add(1)
	slog.Debug("keyboard dismissed", "count", n)
}

// Dismissed returns how many times Dismiss was called.
func (s *MemorySource) Dismissed() int {
	return int(s.dismissed.Load())
}

// ListenerCount returns the listeners registered for name.
func (s *MemorySource) ListenerCount(name string) int {
	return s.bus.ListenerCount(name)
}
