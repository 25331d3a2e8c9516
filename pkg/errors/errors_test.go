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
package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "snapshot not found")

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "snapshot not found" {
		t.Errorf("expected message 'snapshot not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("unknown os")
	ctx := map[string]any{
		"os":   "symbian",
		"path": "device.yaml",
	}

	err := WrapWithContext(ErrCodeInvalidRequest, "invalid host snapshot", cause, ctx)

	if err.Code != ErrCodeInvalidRequest {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidRequest, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["os"] != "symbian" {
		t.Errorf("expected os to be symbian")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", New(ErrCodeNotFound, "missing"))

	if got := CodeOf(wrapped); got != ErrCodeNotFound {
		t.Errorf("expected %s, got %s", ErrCodeNotFound, got)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("expected %s for plain error, got %s", ErrCodeInternal, got)
	}
	if !IsCode(wrapped, ErrCodeNotFound) {
		t.Error("expected IsCode to find NOT_FOUND in chain")
	}
	if IsCode(wrapped, ErrCodeTimeout) {
		t.Error("expected IsCode to reject TIMEOUT")
	}
}
