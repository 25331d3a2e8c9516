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
	"log/slog"
	"net/http"
	"time"

	apierrors "github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/serializer"
)

// RootResponse is returned by the default root handler.
type RootResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

// handleRoot lists the registered routes. Unknown paths get 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling root route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, apierrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, apierrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	routes := []string{"/health", "/ready", "/metrics"}
	for _, path := range s.routes() {
		if path != "/" {
			routes = append(routes, path)
		}
	}

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	})
}
