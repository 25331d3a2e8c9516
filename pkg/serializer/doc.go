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

// Package serializer reads and writes devicekit data in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, used for API responses
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, the default CLI output and the usual snapshot format
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Two-column FIELD/VALUE listing with dotted keys built from json tags
//   - Write-only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, profile); err != nil {
//		return err
//	}
//
// # Reading
//
// FromFile loads a local file or an HTTP/HTTPS URL. The format is taken from
// the file extension; for URLs a recognized response Content-Type wins.
//
//	snap, err := serializer.FromFile[host.Snapshot](ctx, "device.yaml")
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoding before writing headers so a failed encode
// produces a clean 500 instead of a partial body.
package serializer
