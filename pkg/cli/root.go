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

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/devicekit/pkg/logging"
)

const (
	name           = "devkit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// Execute runs the devkit command line and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Device, platform and version helpers for mobile clients",
		Description: `devkit answers "what kind of device is this" questions from a host
snapshot: platform and version checks, notch and safe-area insets, keyboard
behaviour and responsive scaling.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("DEVKIT_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", buildVersion,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			versionCmd(),
			profileCmd(),
			scaleCmd(),
		},
	}
}
