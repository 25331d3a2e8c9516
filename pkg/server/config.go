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
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/devicekit/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort                   = "PORT"
	EnvShutdownTimeoutSeconds = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers maps URL patterns to API handlers. Each is wrapped in the
	// middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	// Rate limiting
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// MaxBulkRequests bounds list-style requests such as the number of
	// version requirements in one profile request.
	MaxBulkRequests int

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a Config with defaults and environment overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		MaxBulkRequests:   100,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}

	// Lets orchestrators align shutdown with their termination grace period.
	if v := os.Getenv(EnvShutdownTimeoutSeconds); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
