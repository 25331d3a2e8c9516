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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/logging"
	"github.com/NVIDIA/devicekit/pkg/profile"
	"github.com/NVIDIA/devicekit/pkg/server"
)

const (
	name           = "devkitd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, buildVersion)
	slog.Info("starting",
		"name", name,
		"version", buildVersion,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(buildVersion),
		server.WithHandler(routes(profile.NewBuilder())),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps the application endpoints to their handlers.
func routes(b *profile.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/versions/parse":    withTimeout(handleParse),
		"/v1/versions/compare":  withTimeout(handleCompare),
		"/v1/versions/at-least": withTimeout(handleAtLeast),
		"/v1/profile":           b.HandleProfile,
	}
}

func withTimeout(h http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(h, defaults.VersionHandlerTimeout, "request timed out").ServeHTTP
}
