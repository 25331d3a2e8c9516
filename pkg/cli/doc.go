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

// Package cli implements the devkit command-line interface.
//
// # Commands
//
// version - Parse and compare dotted version strings:
//
//	devkit version parse 17.4.1
//	devkit version compare 1.2 1.10       # prints -1, 0 or 1
//	devkit version at-least 15.0 17.4     # prints true or false
//	devkit version validate 12.x          # advisory strictness check
//
// Version strings are read permissively: missing or non-numeric components
// read as 0 and none of these commands fail on malformed input.
//
// profile - Build a device profile from a host snapshot:
//
//	devkit profile --snapshot iphone.yaml --require ios=15.0 --require android=30
//
// The snapshot may be a local file or an HTTP/HTTPS URL in JSON or YAML.
// With --strict the command exits with status 2 when a requirement is not met.
//
// scale - Compute scaled sizes for a snapshot:
//
//	devkit scale --snapshot iphone.yaml --size 16 --factor 0.5
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--log-level      Log level: debug, info, warn, error (default: info)
//
// Every global flag can also be set through a DEVKIT_ environment variable
// (DEVKIT_OUTPUT, DEVKIT_FORMAT, DEVKIT_LOG_LEVEL).
package cli
