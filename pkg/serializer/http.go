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
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/devicekit/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

// HTTPReaderUserAgent is sent with every remote snapshot request.
const HTTPReaderUserAgent = "devicekit-serializer/1.0"

// maxRemoteBytes caps the size of a fetched document.
const maxRemoteBytes = 4 << 20

// HTTPReaderOption defines a configuration option for HTTPReader.
type HTTPReaderOption func(*HTTPReader)

// HTTPReader fetches documents over HTTP.
type HTTPReader struct {
	UserAgent string
	Client    *http.Client
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) HTTPReaderOption {
	return func(r *HTTPReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the overall client timeout.
func WithTotalTimeout(timeout time.Duration) HTTPReaderOption {
	return func(r *HTTPReader) {
		if timeout > 0 {
			r.Client.Timeout = timeout
		}
	}
}

// WithClient replaces the underlying client.
func WithClient(client *http.Client) HTTPReaderOption {
	return func(r *HTTPReader) {
		if client != nil {
			r.Client = client
		}
	}
}

// NewHTTPReader creates a new HTTPReader with the specified options.
func NewHTTPReader(options ...HTTPReaderOption) *HTTPReader {
	r := &HTTPReader{
		UserAgent: HTTPReaderUserAgent,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultHTTPTransport(),
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Fetch retrieves url and returns the body and the response Content-Type.
// The request is bound to ctx for cancellation and deadlines.
func (r *HTTPReader) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", fmt.Errorf("url is empty")
	}
	if r.Client == nil {
		return nil, "", fmt.Errorf("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	if len(data) > maxRemoteBytes {
		return nil, "", fmt.Errorf("response from %s exceeds %d bytes", url, maxRemoteBytes)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
