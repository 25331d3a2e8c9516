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
	"log/slog"
	"mime"
	"strings"
)

// Format represents the output format type
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data as a two-column FIELD/VALUE table
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// FormatFromPath determines the serialization format from a file extension.
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Query strings on URLs are ignored. Unknown extensions default to JSON.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	if i := strings.IndexAny(lowerPath, "?#"); i >= 0 {
		lowerPath = lowerPath[:i]
	}
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Debug("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// FormatFromContentType maps an HTTP Content-Type to a format.
// The second result is false when the media type is not recognized.
func FormatFromContentType(contentType string) (Format, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return FormatJSON, true
	case mediaType == "application/yaml", mediaType == "application/x-yaml",
		mediaType == "text/yaml", mediaType == "text/x-yaml":
		return FormatYAML, true
	default:
		return "", false
	}
}
