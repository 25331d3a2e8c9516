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

// Bus routes named events to per-name emitters. It stands in for a host
// event source such as the keyboard bridge.
type Bus[T any] struct {
	mu       sync.Mutex
	emitters map[string]*Emitter[T]
}

// NewBus returns an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{emitters: make(map[string]*Emitter[T])}
}

func (b *Bus[T]) emitter(name string) *Emitter[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.emitters == nil {
		b.emitters = make(map[string]*Emitter[T])
	}
	e, ok := b.emitters[name]
	if !ok {
		e = &Emitter[T]{}
		b.emitters[name] = e
	}
	return e
}

// AddListener subscribes h to events published under name.
func (b *Bus[T]) AddListener(name string, h Handler[T]) *Subscription {
	return b.emitter(name).Subscribe(h)
}

// Publish delivers v to the listeners of name.
func (b *Bus[T]) Publish(name string, v T) {
	b.emitter(name).Emit(v)
}

// ListenerCount returns the number of listeners for name.
func (b *Bus[T]) ListenerCount(name string) int {
	return b.emitter(name).Len()
}
