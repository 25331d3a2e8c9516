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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader handles deserialization of JSON or YAML data from an io.Reader.
// Close must be called when the Reader was created with NewFileReader.
// Table format is write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from input.
// If input implements io.Closer, Reader.Close closes it.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a new Reader over a local file.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return fmt.Errorf("table format does not support deserialization")
	}
	return nil
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call on a nil Reader and more than once.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Unmarshal decodes data in the given format into a new T.
func Unmarshal[T any](format Format, data []byte) (*T, error) {
	r, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromFile reads and deserializes a local file or an HTTP/HTTPS URL into a
// new T. The format comes from the path extension; for URLs a recognized
// response Content-Type takes precedence.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	if isRemote(path) {
		return fromURL[T](ctx, path)
	}

	format := FormatFromPath(path)
	slog.Debug("determined file format", "path", path, "format", format)

	r, err := NewFileReader(format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}
	return &out, nil
}

func fromURL[T any](ctx context.Context, url string) (*T, error) {
	data, contentType, err := NewHTTPReader().Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	format, ok := FormatFromContentType(contentType)
	if !ok {
		format = FormatFromPath(url)
	}
	slog.Debug("fetched remote object", "url", url, "format", format, "bytes", len(data))

	out, err := Unmarshal[T](format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", url, err)
	}
	return out, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
