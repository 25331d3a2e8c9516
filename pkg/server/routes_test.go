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

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_ServeMux(t *testing.T) {
	s := New(WithName("devkitd"), WithVersion("1.2.3"), WithHandler(map[string]http.HandlerFunc{
		"/v1/echo": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(APIVersionFromContext(r.Context())))
		},
	}))
	s.setReady(true)

	ts := httptest.NewServer(s.httpServer.Handler)
	defer ts.Close()

	t.Run("api handler runs behind middleware", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/v1/echo")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
		assert.Equal(t, "v1", resp.Header.Get("X-API-Version"))
	})

	t.Run("root lists routes", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		var root RootResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&root))
		assert.Equal(t, "devkitd", root.Name)
		assert.Equal(t, "1.2.3", root.Version)
		assert.True(t, root.Ready)
		assert.Contains(t, root.Routes, "/v1/echo")
		assert.Contains(t, root.Routes, "/metrics")
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("metrics exposes request counters", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "devkit_http_requests_total")
	})
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Equal(t, DefaultAPIVersion, APIVersionFromContext(ctx))

	ctx = context.WithValue(ctx, contextKeyRequestID, "abc")
	ctx = context.WithValue(ctx, contextKeyAPIVersion, "v1")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Equal(t, "v1", APIVersionFromContext(ctx))
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	assert.Equal(t, http.StatusOK, rw.Status())
	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot)
	_, err := rw.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rw.Status())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, rec, rw.Unwrap())
}
