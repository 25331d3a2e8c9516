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

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types reported by Validate.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Validate reports whether s is a strictly well-formed "N", "N.N" or "N.N.N"
// version string. It returns nil when Parse reads every segment in full, and
// otherwise an error describing the first segment Parse would degrade.
//
// Validate is advisory: Parse accepts every input regardless of the result.
func Validate(s string) error {
	if s == "" {
		return ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	if len(parts) > components {
		return fmt.Errorf("%w: %d", ErrTooManyComponents, len(parts))
	}

	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		if part[0] == '+' {
			return fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
	}

	return nil
}
