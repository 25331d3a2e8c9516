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
	"github.com/NVIDIA/devicekit/pkg/host"
)

// Insets are safe-area insets in dp.
type Insets = host.Insets

// Edge names one side of the safe area.
type Edge string

// Safe-area edges.
const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// SafeArea returns the native safe-area insets on iOS and zero insets
// elsewhere or when the host reported none.
func SafeArea(snap host.Snapshot) Insets {
	if snap.OS != host.OSIOS {
		return Insets{}
	}
	return snap.SafeAreaInsets()
}

// SafeAreaPadding returns the inset for one edge, or 0 for an unknown edge.
func SafeAreaPadding(snap host.Snapshot, edge Edge) float64 {
	in := SafeArea(snap)
	switch edge {
	case EdgeTop:
		return in.Top
	case EdgeBottom:
		return in.Bottom
	case EdgeLeft:
		return in.Left
	case EdgeRight:
		return in.Right
	default:
		return 0
	}
}
