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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/devicekit/pkg/host"
)

func TestSafeArea(t *testing.T) {
	ios := host.Snapshot{OS: host.OSIOS, SafeArea: &host.Insets{Top: 59, Bottom: 34, Left: 1, Right: 2}}
	assert.Equal(t, Insets{Top: 59, Bottom: 34, Left: 1, Right: 2}, SafeArea(ios))

	tests := []struct {
		edge Edge
		want float64
	}{
		{EdgeTop, 59},
		{EdgeBottom, 34},
		{EdgeLeft, 1},
		{EdgeRight, 2},
		{Edge("middle"), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.edge), func(t *testing.T) {
			assert.Equal(t, tt.want, SafeAreaPadding(ios, tt.edge))
		})
	}

	noInsets := host.Snapshot{OS: host.OSIOS}
	assert.Equal(t, Insets{}, SafeArea(noInsets))

	android := host.Snapshot{OS: host.OSAndroid, SafeArea: &host.Insets{Top: 24}}
	assert.Equal(t, Insets{}, SafeArea(android))
	assert.Equal(t, 0.0, SafeAreaPadding(android, EdgeTop))
}
