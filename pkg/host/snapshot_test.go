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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/devicekit/pkg/errors"
)

func iphone15() Snapshot {
	return Snapshot{
		OS:        OSIOS,
		Version:   "17.4.1",
		Constants: Constants{InterfaceIdiom: "phone", SystemName: "iOS"},
		Window:    ScaledSize{Width: 393, Height: 852, Scale: 3, FontScale: 1},
		Native:    Native{Brand: "Apple", Model: "iPhone 15 Pro"},
	}
}

func TestSnapshotEffectiveValues(t *testing.T) {
	s := iphone15()
	assert.Equal(t, 3.0, s.EffectivePixelRatio())
	assert.Equal(t, 1.0, s.EffectiveFontScale())
	assert.Equal(t, s.Window, s.EffectiveScreen())
	assert.Equal(t, Insets{}, s.SafeAreaInsets())

	s.PixelRatio = ptr.To(2.0)
	s.FontScale = ptr.To(1.3)
	s.Screen = ScaledSize{Width: 400, Height: 900}
	s.SafeArea = &Insets{Top: 59, Bottom: 34}
	assert.Equal(t, 2.0, s.EffectivePixelRatio())
	assert.Equal(t, 1.3, s.EffectiveFontScale())
	assert.Equal(t, 400.0, s.EffectiveScreen().Width)
	assert.Equal(t, 59.0, s.SafeAreaInsets().Top)

	var empty Snapshot
	assert.Equal(t, 1.0, empty.EffectivePixelRatio())
	assert.Equal(t, 1.0, empty.EffectiveFontScale())
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantErr bool
	}{
		{"valid", func(*Snapshot) {}, false},
		{"malformed version is accepted", func(s *Snapshot) { s.Version = "beta" }, false},
		{"unknown os", func(s *Snapshot) { s.OS = "symbian" }, true},
		{"zero width", func(s *Snapshot) { s.Window.Width = 0 }, true},
		{"negative pixel ratio", func(s *Snapshot) { s.PixelRatio = ptr.To(-1.0) }, true},
		{"zero font scale", func(s *Snapshot) { s.FontScale = ptr.To(0.0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := iphone15()
			tt.mutate(&s)
			err := s.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
		})
	}
}

func TestOS(t *testing.T) {
	assert.True(t, OSAndroid.IsValid())
	assert.False(t, OS("").IsValid())
	assert.Equal(t, "ios", OSIOS.String())
	assert.True(t, iphone15().Is(OSIOS))
	assert.Len(t, SupportedOS(), 5)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "pixel.yaml")
		data := "os: Android\nversion: \"34\"\nconstants:\n  uiMode: normal\nwindow:\n  width: 412\n  height: 915\n  scale: 2.625\nnative:\n  brand: Google\n  model: Pixel 8\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		snap, err := Load(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, OSAndroid, snap.OS)
		assert.Equal(t, "34", snap.Version)
		assert.Equal(t, 2.625, snap.EffectivePixelRatio())
		assert.Equal(t, "Pixel 8", snap.Native.Model)
	})

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(dir, "iphone.json")
		data := `{"os":"ios","version":"17.4","window":{"width":393,"height":852,"scale":3},"pixelRatio":3,"safeArea":{"top":59,"bottom":34}}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		snap, err := Load(t.Context(), path)
		require.NoError(t, err)
		assert.Equal(t, 59.0, snap.SafeAreaInsets().Top)
		require.NotNil(t, snap.PixelRatio)
	})

	t.Run("invalid snapshot", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"os":"palm","window":{"width":1,"height":1}}`), 0o600))

		_, err := Load(t.Context(), path)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.Context(), filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load(t.Context(), " ")
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidRequest))
	})

	t.Run("remote", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"os":"web","version":"1","window":{"width":1280,"height":800}}`))
		}))
		defer srv.Close()

		snap, err := Load(t.Context(), srv.URL+"/snapshot")
		require.NoError(t, err)
		assert.Equal(t, OSWeb, snap.OS)
	})
}
