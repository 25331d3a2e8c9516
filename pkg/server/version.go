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
	"mime"
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is used when the client does not ask for a version.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix is the vendor media type prefix, e.g.
	// application/vnd.nvidia.devkit.v1+json.
	vendorMediaPrefix = "application/vnd.nvidia.devkit."
)

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion picks the first supported version named by a vendor
// media type in the Accept header, falling back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || !strings.HasPrefix(mediaType, vendorMediaPrefix) {
			continue
		}
		version, _, _ := strings.Cut(strings.TrimPrefix(mediaType, vendorMediaPrefix), "+")
		if isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

// SetAPIVersionHeader reports the negotiated version to the client.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
