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

package notch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/devicekit/pkg/device"
	"github.com/NVIDIA/devicekit/pkg/host"
)

func TestCutout(t *testing.T) {
	tests := []struct {
		name string
		info device.Info
		want DisplayCutout
	}{
		{"dynamic island", device.Info{IsIOS: true, HasDynamicIsland: true}, DisplayCutout{CutoutDynamicIsland, 59, 34}},
		{"notch", device.Info{IsIOS: true, HasNotch: true}, DisplayCutout{CutoutNotch, 44, 34}},
		{"island wins over notch", device.Info{IsIOS: true, HasNotch: true, HasDynamicIsland: true}, DisplayCutout{CutoutDynamicIsland, 59, 34}},
		{"plain ios", device.Info{IsIOS: true}, DisplayCutout{CutoutNone, 20, 0}},
		{"android", device.Info{IsAndroid: true}, DisplayCutout{CutoutNone, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cutout(tt.info)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Padding{Top: tt.want.TopInset, Bottom: tt.want.BottomInset}, SafePadding(tt.info))
			assert.Equal(t, tt.want.Type != CutoutNone, HasDisplayCutout(tt.info))
			assert.Equal(t, tt.want.TopInset, StatusBarHeight(tt.info))
		})
	}
}

func TestCutoutFromSnapshot(t *testing.T) {
	snap := host.Snapshot{
		OS:      host.OSIOS,
		Version: "17.0",
		Window:  host.ScaledSize{Width: 393, Height: 852},
		Native:  host.Native{Model: "iPhone 14 Pro"},
	}
	assert.Equal(t, CutoutDynamicIsland, Cutout(device.New(snap).Info()).Type)
}
