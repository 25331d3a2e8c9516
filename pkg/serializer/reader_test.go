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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"device.json", FormatJSON},
		{"DEVICE.JSON", FormatJSON},
		{"device.yaml", FormatYAML},
		{"device.yml", FormatYAML},
		{"device.txt", FormatTable},
		{"device.table", FormatTable},
		{"device", FormatJSON},
		{"https://example.com/device.yaml?token=abc", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestFormatFromContentType(t *testing.T) {
	f, ok := FormatFromContentType("application/json; charset=utf-8")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, f)

	f, ok = FormatFromContentType("application/yaml")
	assert.True(t, ok)
	assert.Equal(t, FormatYAML, f)

	_, ok = FormatFromContentType("text/plain")
	assert.False(t, ok)

	_, ok = FormatFromContentType("")
	assert.False(t, ok)
}

func TestNewReaderRejectsTableAndUnknown(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestReaderDeserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("os: android\nmajorVersion: 34\n"))
	require.NoError(t, err)
	defer r.Close()

	var got sample
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "android", got.OS)
	assert.Equal(t, 34, got.Major)
}

func TestReaderDeserializeInvalidJSON(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader("{"))
	require.NoError(t, err)

	var got sample
	assert.Error(t, r.Deserialize(&got))
}

func TestReaderNilSafety(t *testing.T) {
	var r *Reader
	assert.NoError(t, r.Close())
	assert.Error(t, r.Deserialize(&sample{}))
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal[sample](FormatJSON, []byte(`{"os":"web","majorVersion":1}`))
	require.NoError(t, err)
	assert.Equal(t, "web", got.OS)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "device.yaml")
	require.NoError(t, os.WriteFile(path, []byte("os: ios\ninsets:\n  top: 44\n"), 0o600))

	got, err := FromFile[sample](context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ios", got.OS)
	assert.Equal(t, 44.0, got.Insets.Top)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[sample](context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFromFileURLUsesContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HTTPReaderUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte("os: android\nmajorVersion: 33\n"))
	}))
	defer srv.Close()

	got, err := FromFile[sample](context.Background(), srv.URL+"/snapshot")
	require.NoError(t, err)
	assert.Equal(t, "android", got.OS)
	assert.Equal(t, 33, got.Major)
}

func TestFromFileURLFallsBackToExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`{"os":"ios"}`))
	}))
	defer srv.Close()

	got, err := FromFile[sample](context.Background(), srv.URL+"/snapshot.json")
	require.NoError(t, err)
	assert.Equal(t, "ios", got.OS)
}
