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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterOrderAndRemove(t *testing.T) {
	var e Emitter[int]
	var got []string

	a := e.Subscribe(func(v int) { got = append(got, "a") })
	b := e.Subscribe(func(v int) { got = append(got, "b") })
	assert.Equal(t, 2, e.Len())

	e.Emit(1)
	assert.Equal(t, []string{"a", "b"}, got)

	a.Remove()
	a.Remove()
	assert.Equal(t, 1, e.Len())

	got = nil
	e.Emit(2)
	assert.Equal(t, []string{"b"}, got)

	b.Remove()
	assert.Equal(t, 0, e.Len())
}

func TestEmitterNilHandler(t *testing.T) {
	var e Emitter[string]
	sub := e.Subscribe(nil)
	assert.Equal(t, 0, e.Len())
	sub.Remove()

	var nilSub *Subscription
	nilSub.Remove()
}

func TestEmitterRemoveDuringEmit(t *testing.T) {
	var e Emitter[int]
	calls := 0
	var sub *Subscription
	sub = e.Subscribe(func(int) {
		calls++
		sub.Remove()
	})

	e.Emit(1)
	e.Emit(2)
	assert.Equal(t, 1, calls)
}

func TestEmitterConcurrent(t *testing.T) {
	var e Emitter[int]
	var mu sync.Mutex
	total := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := e.Subscribe(func(v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			e.Emit(1)
			sub.Remove()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, e.Len())
	assert.GreaterOrEqual(t, total, 20)
}

func TestBus(t *testing.T) {
	bus := NewBus[float64]()
	var shown, hidden []float64

	s1 := bus.AddListener("show", func(h float64) { shown = append(shown, h) })
	bus.AddListener("hide", func(h float64) { hidden = append(hidden, h) })

	bus.Publish("show", 300)
	bus.Publish("hide", 0)
	bus.Publish("other", 1)

	assert.Equal(t, []float64{300}, shown)
	assert.Equal(t, []float64{0}, hidden)
	assert.Equal(t, 1, bus.ListenerCount("show"))

	s1.Remove()
	assert.Equal(t, 0, bus.ListenerCount("show"))

	var zero Bus[int]
	zero.Publish("x", 1)
	assert.Equal(t, 0, zero.ListenerCount("x"))
}

func TestCombine(t *testing.T) {
	var a, b Emitter[int]
	sub := Combine(a.Subscribe(func(int) {}), b.Subscribe(func(int) {}), nil)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())

	sub.Remove()
	sub.Remove()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, b.Len())

	calls := 0
	s := NewSubscription(func() { calls++ })
	s.Remove()
	s.Remove()
	assert.Equal(t, 1, calls)
}
