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
	"sync"
)

// Handler receives an event payload.
type Handler[T any] func(T)

// Subscription is a registered handler. Remove detaches it and is safe to
// call more than once.
type Subscription struct {
	once   sync.Once
	remove func()
}

// Remove detaches the handler.
func (s *Subscription) Remove() {
	if s == nil || s.remove == nil {
		return
	}
	s.once.Do(s.remove)
}

// NewSubscription returns a subscription that calls remove once.
func NewSubscription(remove func()) *Subscription {
	return &Subscription{remove: remove}
}

// Combine returns a subscription that removes every non-nil sub.
func Combine(subs ...*Subscription) *Subscription {
	return NewSubscription(func() {
		for _, s := range subs {
			s.Remove()
		}
	})
}

// Emitter is a registry of handlers for one event type. The zero value is
// ready to use.
type Emitter[T any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler[T]
	order    []uint64
}

// Subscribe registers h and returns the subscription used to remove it.
// A nil handler yields a subscription whose Remove is a no-op.
func (e *Emitter[T]) Subscribe(h Handler[T]) *Subscription {
	if h == nil {
		return &Subscription{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = make(map[uint64]Handler[T])
	}
	e.nextID++
	id := e.nextID
	e.handlers[id] = h
	e.order = append(e.order, id)

	return &Subscription{remove: func() { e.unsubscribe(id) }}
}

func (e *Emitter[T]) unsubscribe(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.handlers, id)
	for i, v := range e.order {
		if v == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Emit delivers v to every handler in subscription order. Handlers run on
// the caller's goroutine and may subscribe or remove without deadlocking.
func (e *Emitter[T]) Emit(v T) {
	e.mu.RLock()
	hs := make([]Handler[T], 0, len(e.order))
	for _, id := range e.order {
		hs = append(hs, e.handlers[id])
	}
	e.mu.RUnlock()

	for _, h := range hs {
		h(v)
	}
}

// Len returns the number of registered handlers.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.handlers)
}

// DimensionsEvent is published when the host window or screen changes size.
type DimensionsEvent struct {
	Window ScaledSize `json:"window" yaml:"window"`
	Screen ScaledSize `json:"screen" yaml:"screen"`
}

// DimensionsSource is the emitter the host uses for size changes.
type DimensionsSource = Emitter[DimensionsEvent]
