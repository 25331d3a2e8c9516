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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/serializer"
	"github.com/NVIDIA/devicekit/pkg/server"
)

// Request is the body of POST /v1/profile: a host snapshot plus optional
// requirements.
type Request struct {
	host.Snapshot `yaml:",inline"`
	Requirements []Requirement `json:"requirements,omitempty" yaml:"requirements,omitempty"`
}

// HandleProfile builds a profile from a JSON or YAML snapshot in the
// request body.
func (b *Builder) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ProfileHandlerTimeout)
	defer cancel()

	req, err := decodeRequest(w, r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid profile request", nil)
		return
	}

	slog.Debug("building profile",
		"os", req.OS,
		"version", req.Version,
		"requirements", len(req.Requirements),
	)

	p, err := b.Build(ctx, req.Snapshot, req.Requirements)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build profile", nil)
		return
	}

	if b.CacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(b.CacheTTL.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	serializer.RespondJSON(w, http.StatusOK, p)
}

// decodeRequest reads a JSON or YAML body. JSON is assumed when no
// Content-Type is sent.
func decodeRequest(w http.ResponseWriter, r *http.Request) (*Request, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body is required")
	}
	defer r.Body.Close()

	format := serializer.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		f, ok := serializer.FormatFromContentType(ct)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unsupported content type", map[string]any{"contentType": ct})
		}
		format = f
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxSnapshotBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"request body too large", err, map[string]any{"limit": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}

	req, err := serializer.Unmarshal[Request](format, data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "malformed request body", err)
	}
	return req, nil
}
