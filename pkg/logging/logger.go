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

package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvLogLevel names the environment variable that sets the default level.
	EnvLogLevel = "LOG_LEVEL"

	keyModule  = "module"
	keyVersion = "version"
)

// ParseLogLevel converts a case-insensitive level name into a slog.Level.
// Unknown or empty names yield slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv returns the level named by LOG_LEVEL, or INFO.
func levelFromEnv() slog.Level {
	return ParseLogLevel(os.Getenv(EnvLogLevel))
}

// NewStructuredLogger returns a JSON logger writing to stderr with module and
// version attributes. Debug level adds source locations.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(os.Stderr, module, version, ParseLogLevel(level))
}

func newLogger(w io.Writer, module, version string, lvl slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: lvl <= slog.LevelDebug,
		Level:     lvl,
	})
	return slog.New(h).With(keyModule, module, keyVersion, version)
}

// SetDefaultStructuredLogger installs a structured logger as the slog default,
// using the level from LOG_LEVEL.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(newLogger(os.Stderr, module, version, levelFromEnv()))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the slog
// default with an explicit level. An empty level falls back to LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	lvl := levelFromEnv()
	if strings.TrimSpace(level) != "" {
		lvl = ParseLogLevel(level)
	}
	slog.SetDefault(newLogger(os.Stderr, module, version, lvl))
}

// NewLogLogger returns a standard library *log.Logger that writes through the
// current default slog handler at the given level. Used for
// http.Server.ErrorLog so connection errors share the JSON format.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), level)
}
