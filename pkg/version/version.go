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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// components is the number of significant dot-separated segments.
const components = 3

// Version represents a parsed version number with Major, Minor, and Patch
// components. All components are non-negative. A Version is a plain value;
// it is constructed fresh by every Parse and never mutated.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// NewVersion creates a new Version with the specified major, minor, and patch
// values. Negative values are clamped to 0.
func NewVersion(major, minor, patch int) Version {
	return Version{
		Major: max(major, 0),
		Minor: max(minor, 0),
		Patch: max(patch, 0),
	}
}

// String returns the "Major.Minor.Patch" representation of the Version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a dotted version string into a Version.
// The string is split on '.'; each of the first three segments is read as an
// integer and any missing or non-numeric segment yields 0. Parse never fails.
func Parse(s string) Version {
	var v Version
	parts := strings.SplitN(s, ".", components+1)
	for i, part := range parts {
		if i == components {
			break
		}
		num := parseSegment(part)
		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}
	return v
}

// parseSegment reads the leading decimal digits of s after optional leading
// whitespace. Anything that does not start with a digit reads as 0; a run of
// digits that overflows int reads as math.MaxInt.
func parseSegment(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	num, err := strconv.Atoi(s[:end])
	if err != nil {
		// only a range error is possible for a run of digits
		return math.MaxInt
	}
	return num
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Major is compared first, then Minor, then Patch.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return sign(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return sign(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return sign(v.Patch, other.Patch)
	}
	return 0
}

func sign(a, b int) int {
	if a > b {
		return 1
	}
	return -1
}

// AtLeast returns true if v is equal to or newer than minimum.
func (v Version) AtLeast(minimum Version) bool {
	return v.Compare(minimum) >= 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// Equals returns true if all three components match.
func (v Version) Equals(other Version) bool {
	return v == other
}

// IsZero returns true for 0.0.0, which is also what every fully malformed
// string parses to.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare parses v1 and v2 independently and compares them.
// It returns 1 if v1 > v2, -1 if v1 < v2, and 0 if they are equal.
func Compare(v1, v2 string) int {
	return Parse(v1).Compare(Parse(v2))
}

// IsAtLeast reports whether currentVersion satisfies the minimum target
// version, that is Compare(currentVersion, target) >= 0.
//
// A malformed currentVersion parses toward 0.0.0 and therefore compares as
// very old; it is not reported as an error.
func IsAtLeast(target, currentVersion string) bool {
	return Compare(currentVersion, target) >= 0
}
