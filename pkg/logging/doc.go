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

// Package logging configures log/slog for devicekit binaries.
//
// All logs are written to stderr as JSON and carry "module" and "version"
// attributes. Debug level adds source locations.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Potentially problematic situations, such as a version
//     string that had to be degraded to 0 while parsing
//   - ERROR: Failures requiring attention
//
// # Usage
//
// Setting the default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("devkitd", version)
//	    slog.Info("profile built", "os", snap.OS, "deviceType", info.DeviceType)
//	}
//
// Setting an explicit level, as the CLI does for --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("devkit", version, "warn")
//
// Creating a standalone logger:
//
//	logger := logging.NewStructuredLogger("devkitd", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug devkit profile -f device.yaml
//	LOG_LEVEL=error devkitd
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "devkitd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
