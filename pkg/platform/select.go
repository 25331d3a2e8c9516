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

package platform

import (
	"github.com/NVIDIA/devicekit/pkg/host"
)

// Options holds per-platform values. Nil entries are treated as absent.
type Options[T any] struct {
	IOS     *T
	Android *T
	Web     *T
	Default *T
}

// Select returns the value for the manager's platform, falling back to
// Default. The boolean is false when no value applies.
func Select[T any](m *Manager, opts Options[T]) (T, bool) {
	var picked *T
	switch m.snap.OS {
	case host.OSIOS:
		picked = opts.IOS
	case host.OSAndroid:
		picked = opts.Android
	case host.OSWeb:
		picked = opts.Web
	}
	if picked == nil {
		picked = opts.Default
	}
	if picked == nil {
		var zero T
		return zero, false
	}
	return *picked, true
}

// StyleProperty returns ios on iOS, android on Android and the zero value
// elsewhere.
func StyleProperty[T any](m *Manager, ios, android T) T {
	v, _ := Select(m, Options[T]{IOS: &ios, Android: &android})
	return v
}
