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
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/devicekit/pkg/version"
)

// parseResult is the serialized form of `devkit version parse`.
type parseResult struct {
	Input     string          `json:"input" yaml:"input"`
	Version   version.Version `json:"version" yaml:"version"`
	Canonical string          `json:"canonical" yaml:"canonical"`
	Warning   string          `json:"warning,omitempty" yaml:"warning,omitempty"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Parse and compare dotted version strings",
		Description: `Versions are read permissively: the input is split on '.', only the
first three components count, and a missing or non-numeric component reads
as 0. None of these commands fail on malformed version strings.`,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a version into major, minor and patch",
				ArgsUsage: "<version>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					args, err := requireArgs(cmd, "version")
					if err != nil {
						return err
					}
					w, err := newWriter(cmd)
					if err != nil {
						return err
					}
					defer closeWriter(w)

					res := parseResult{Input: args[0], Version: version.Parse(args[0])}
					res.Canonical = res.Version.String()
					if verr := version.Validate(args[0]); verr != nil {
						res.Warning = verr.Error()
					}
					return w.Serialize(ctx, res)
				},
			},
			{
				Name:      "compare",
				Usage:     "Compare two versions, printing -1, 0 or 1",
				ArgsUsage: "<v1> <v2>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args, err := requireArgs(cmd, "v1", "v2")
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, version.Compare(args[0], args[1]))
					return err
				},
			},
			{
				Name:      "at-least",
				Usage:     "Print whether current is at least target",
				ArgsUsage: "<target> <current>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args, err := requireArgs(cmd, "target", "current")
					if err != nil {
						return err
					}
					ok := version.IsAtLeast(args[0], args[1])
					slog.Debug("version check", "target", args[0], "current", args[1], "result", ok)
					_, err = fmt.Fprintln(cmd.Root().Writer, strconv.FormatBool(ok))
					return err
				},
			},
			{
				Name:      "validate",
				Usage:     "Report whether a version string is strictly well formed",
				ArgsUsage: "<version>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args, err := requireArgs(cmd, "version")
					if err != nil {
						return err
					}
					if verr := version.Validate(args[0]); verr != nil {
						slog.Warn("version is not strictly well formed",
							"version", args[0],
							"error", verr,
							"parsed", version.Parse(args[0]).String())
						_, err = fmt.Fprintf(cmd.Root().Writer, "invalid: %v\n", verr)
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, "valid")
					return err
				},
			},
		},
	}
}

// requireArgs returns exactly len(names) positional arguments.
func requireArgs(cmd *cli.Command, names ...string) ([]string, error) {
	if cmd.NArg() != len(names) {
		return nil, fmt.Errorf("%s: expected %d argument(s) %v, got %d",
			cmd.Name, len(names), names, cmd.NArg())
	}
	return cmd.Args().Slice(), nil
}
