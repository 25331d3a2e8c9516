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

package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/devicekit/pkg/server"
)

const iphoneBody = `{
  "os": "ios",
  "version": "17.4",
  "window": {"width": 393, "height": 852, "scale": 3},
  "native": {"model": "iPhone 14 Pro"},
  "requirements": [{"platform": "ios", "minVersion": "16.0"}]
}`

func TestHandleProfile(t *testing.T) {
	b := NewBuilder()

	req := httptest.NewRequest(http.MethodPost, "/v1/profile", strings.NewReader(iphoneBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	b.HandleProfile(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var p Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.True(t, p.Device.HasDynamicIsland)
	assert.True(t, p.Satisfied)
	require.Len(t, p.Requirements, 1)
	assert.Equal(t, "16.0", p.Requirements[0].MinVersion)
}

func TestHandleProfile_YAML(t *testing.T) {
	body := "os: android\nversion: \"34\"\nwindow:\n  width: 412\n  height: 915\n  scale: 2.625\nrequirements:\n  - platform: android\n    minVersion: \"35\"\n"
	req := httptest.NewRequest(http.MethodPost, "/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml")
	w := httptest.NewRecorder()

	(&Builder{CacheTTL: time.Minute}).HandleProfile(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	var p Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.True(t, p.Platform.IsAndroid)
	assert.False(t, p.Satisfied)
}

func TestHandleProfile_Errors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
		wantCode    string
	}{
		{"wrong method", http.MethodGet, "", "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"empty body", http.MethodPost, "", "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"malformed json", http.MethodPost, "{", "application/json", http.StatusBadRequest, "INVALID_REQUEST"},
		{"unsupported content type", http.MethodPost, iphoneBody, "text/plain", http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid snapshot", http.MethodPost, `{"os":"palm","window":{"width":1,"height":1}}`, "", http.StatusBadRequest, "INVALID_REQUEST"},
		{"too large", http.MethodPost, `{"os":"` + strings.Repeat("x", 2<<20) + `"}`, "", http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, "/v1/profile", http.NoBody)
			} else {
				req = httptest.NewRequest(tt.method, "/v1/profile", strings.NewReader(tt.body))
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			NewBuilder().HandleProfile(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
