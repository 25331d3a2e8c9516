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

package profile

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/devicekit/pkg/errors"
	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/version"
)

// Requirement is a minimum host version, optionally limited to one platform.
type Requirement struct {
	// Platform limits the requirement to one OS. Empty applies to all.
	Platform   host.OS `json:"platform,omitempty" yaml:"platform,omitempty"`
	MinVersion string  `json:"minVersion" yaml:"minVersion"`
}

// String returns the "platform=version" form accepted by ParseRequirement.
func (r Requirement) String() string {
	if r.Platform == "" {
		return r.MinVersion
	}
	return fmt.Sprintf("%s=%s", r.Platform, r.MinVersion)
}

// Validate rejects unknown platforms and empty versions.
func (r Requirement) Validate() error {
	if r.Platform != "" && !r.Platform.IsValid() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported platform %q in requirement", r.Platform),
			map[string]any{"supported": host.SupportedOS()})
	}
	if strings.TrimSpace(r.MinVersion) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "requirement minVersion is required")
	}
	return nil
}

// ParseRequirement parses "platform=version" or a bare "version".
func ParseRequirement(s string) (Requirement, error) {
	s = strings.TrimSpace(s)
	var r Requirement
	if name, ver, ok := strings.Cut(s, "="); ok {
		r.Platform = host.OS(strings.ToLower(strings.TrimSpace(name)))
		r.MinVersion = strings.TrimSpace(ver)
	} else {
		r.MinVersion = s
	}
	if err := r.Validate(); err != nil {
		return Requirement{}, fmt.Errorf("invalid requirement %q: %w", s, err)
	}
	return r, nil
}

// ParseRequirements parses each entry with ParseRequirement.
func ParseRequirements(list []string) ([]Requirement, error) {
	out := make([]Requirement, 0, len(list))
	for _, s := range list {
		r, err := ParseRequirement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// RequirementResult is the evaluation of one Requirement.
type RequirementResult struct {
	Requirement
	// Applicable is false when the requirement targets another platform.
	Applicable bool `json:"applicable" yaml:"applicable"`
	// Satisfied is true when the requirement does not apply or the host
	// version is at least MinVersion.
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
	Warning   string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Evaluate checks r against a host OS and version.
func (r Requirement) Evaluate(os host.OS, current string) RequirementResult {
	res := RequirementResult{Requirement: r}
	res.Applicable = r.Platform == "" || r.Platform == os
	res.Satisfied = !res.Applicable || version.IsAtLeast(r.MinVersion, current)
	if err := version.Validate(r.MinVersion); err != nil {
		res.Warning = fmt.Sprintf("minVersion %q is not a strict version (%v); compared as %s",
			r.MinVersion, err, version.Parse(r.MinVersion))
	}
	return res
}
