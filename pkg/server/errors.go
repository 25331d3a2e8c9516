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
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apierrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. Structured errors keep
// their code, message and context; anything else becomes INTERNAL with
// fallbackMessage. The cause text is added to details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	code := apierrors.ErrCodeInternal
	message := fallbackMessage
	var extra map[string]any

	var se *apierrors.StructuredError
	if stderrors.As(err, &se) {
		code = se.Code
		message = se.Message
		extra = se.Context
	}

	merged := mergeDetails(details, extra)
	if cause := causeMessage(err, se); cause != "" {
		if merged == nil {
			merged = make(map[string]any, 1)
		}
		merged["error"] = cause
	}

	status := HTTPStatusFromCode(code)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"code", code,
			"error", err,
		)
	}

	WriteError(w, r, status, code, message, retryableFromCode(code), merged)
}

// causeMessage returns the most specific message for err: the cause of a
// structured error when present, otherwise err itself.
func causeMessage(err error, se *apierrors.StructuredError) string {
	if err == nil {
		return ""
	}
	if se != nil {
		if se.Cause != nil {
			return se.Cause.Error()
		}
		return ""
	}
	return err.Error()
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apierrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apierrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case apierrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code apierrors.ErrorCode) bool {
	switch code {
	case apierrors.ErrCodeTimeout, apierrors.ErrCodeUnavailable,
		apierrors.ErrCodeRateLimitExceeded, apierrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with a's entries overwritten by b's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
