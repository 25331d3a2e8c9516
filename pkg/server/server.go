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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/devicekit/pkg/logging"
)

// Server is the devkitd HTTP server.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported by the root handler.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the server version reported by the root handler.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithHandler adds API handlers keyed by URL pattern.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, h := range handlers {
			s.config.Handlers[path] = h
		}
	}
}

// WithConfig replaces the configuration. Options applied after it still
// take effect.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// New creates a server from options.
func New(opts ...Option) *Server {
	s := &Server{config: parseConfig()}
	for _, opt := range opts {
		opt(s)
	}

	if s.config.Handlers == nil {
		s.config.Handlers = make(map[string]http.HandlerFunc)
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		s.config.Handlers["/"] = s.handleRoot
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          logging.NewLogLogger(slog.LevelError),
	}

	return s
}

// setupRoutes registers system endpoints directly and API handlers behind
// the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for _, path := range s.routes() {
		mux.HandleFunc(path, s.withMiddleware(s.config.Handlers[path]))
	}

	return mux
}

// routes returns the configured handler patterns in sorted order.
func (s *Server) routes() []string {
	paths := make([]string, 0, len(s.config.Handlers))
	for path := range s.config.Handlers {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.setReady(true)

	select {
	case <-ctx.Done():
		return s.Shutdown(context.WithoutCancel(ctx))
	case err, ok := <-errCh:
		s.setReady(false)
		if !ok {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

// Shutdown stops accepting connections and waits for in-flight requests up
// to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout)
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Run starts the server and stops it on SIGINT, SIGTERM or ctx cancellation.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("starting server",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", s.httpServer.Addr,
		"rateLimit", float64(s.config.RateLimit),
		"rateLimitBurst", s.config.RateLimitBurst,
		"readTimeout", s.config.ReadTimeout,
		"writeTimeout", s.config.WriteTimeout,
		"idleTimeout", s.config.IdleTimeout,
		"shutdownTimeout", s.config.ShutdownTimeout,
		"routes", s.routes(),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
