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
	"fmt"
	"net/http"

	"github.com/NVIDIA/devicekit/pkg/defaults"
	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/serializer"
	"github.com/NVIDIA/devicekit/pkg/server"
	"github.com/NVIDIA/devicekit/pkg/version"
)

// ParseResponse is returned by GET /v1/versions/parse.
type ParseResponse struct {
	Input string `json:"input"`
	version.Version
	Canonical string `json:"canonical"`
	// Warning is set when the input is not a strictly well-formed version.
	Warning string `json:"warning,omitempty"`
}

// CompareResponse is returned by GET /v1/versions/compare.
type CompareResponse struct {
	V1     string `json:"v1"`
	V2     string `json:"v2"`
	Result int    `json:"result"`
}

// AtLeastResponse is returned by GET /v1/versions/at-least.
type AtLeastResponse struct {
	Target  string `json:"target"`
	Current string `json:"current"`
	Result  bool   `json:"result"`
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	params, ok := queryParams(w, r, "version")
	if !ok {
		return
	}

	in := params[0]
	v := version.Parse(in)
	resp := ParseResponse{
		Input:     in,
		Version:   v,
		Canonical: v.String(),
	}
	if err := version.Validate(in); err != nil {
		resp.Warning = err.Error()
	}

	respond(w, resp)
}

func handleCompare(w http.ResponseWriter, r *http.Request) {
	params, ok := queryParams(w, r, "v1", "v2")
	if !ok {
		return
	}

	respond(w, CompareResponse{
		V1:     params[0],
		V2:     params[1],
		Result: version.Compare(params[0], params[1]),
	})
}

func handleAtLeast(w http.ResponseWriter, r *http.Request) {
	params, ok := queryParams(w, r, "target", "current")
	if !ok {
		return
	}

	respond(w, AtLeastResponse{
		Target:  params[0],
		Current: params[1],
		Result:  version.IsAtLeast(params[0], params[1]),
	})
}

// queryParams checks the method and returns the named query values in
// order. An empty value is accepted; only an absent key is rejected.
func queryParams(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return nil, false
	}

	q := r.URL.Query()
	out := make([]string, 0, len(names))
	var missing []string
	for _, n := range names {
		if !q.Has(n) {
			missing = append(missing, n)
			continue
		}
		out = append(out, q.Get(n))
	}
	if len(missing) > 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Missing required query parameter", false, map[string]any{
				"missing": missing,
			})
		return nil, false
	}
	return out, true
}

func respond(w http.ResponseWriter, v any) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.VersionCacheMaxAge.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, v)
}
