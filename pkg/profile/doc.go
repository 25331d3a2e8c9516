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

// Package profile aggregates everything devicekit knows about one host
// snapshot into a single Profile: platform and device info, display cutout,
// safe area, window dimensions, scaling figures, keyboard behavior and the
// outcome of optional minimum-version requirements.
//
// Build a profile directly:
//
//	b := profile.NewBuilder()
//	p, err := b.Build(ctx, snap, []profile.Requirement{
//	    {Platform: host.OSIOS, MinVersion: "15.0"},
//	})
//
// or serve it over HTTP:
//
//	POST /v1/profile
//	{"os": "ios", "version": "17.4", "window": {"width": 393, "height": 852},
//	 "requirements": [{"platform": "ios", "minVersion": "15.0"}]}
//
// Requirements are compared with version.IsAtLeast, so malformed versions
// degrade to 0 instead of failing. A requirement whose minimum version is not
// strictly well formed carries a warning.
package profile
