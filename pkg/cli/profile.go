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
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/notch"
	"github.com/NVIDIA/devicekit/pkg/profile"
)

func profileCmd() *cli.Command {
	return &cli.Command{
		Name:                  "profile",
		EnableShellCompletion: true,
		Usage:                 "Build a device profile from a host snapshot",
		Description: `Build a device profile including:
  - Platform and OS version
  - Device type, notch and Dynamic Island detection
  - Safe area and display cutout insets
  - Window dimensions and responsive scaling
  - Keyboard events and behaviour

Optional --require flags check minimum OS versions (format: os=version, or
version alone to apply to every platform).`,
		Flags: []cli.Flag{
			snapshotFlag(),
			&cli.StringSliceFlag{
				Name:  "require",
				Usage: "Minimum version requirement (format: os=version, can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with status 2 when a requirement is not satisfied",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print a one-line device summary instead of the full profile",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reqs, err := profile.ParseRequirements(cmd.StringSlice("require"))
			if err != nil {
				return err
			}

			path := cmd.String("snapshot")
			snap, err := host.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to load snapshot from %q: %w", path, err)
			}

			p, err := profile.NewBuilder().Build(ctx, *snap, reqs)
			if err != nil {
				return fmt.Errorf("error building profile: %w", err)
			}

			for _, r := range p.Requirements {
				if r.Warning != "" {
					slog.Warn("requirement uses a malformed version", "requirement", r.String(), "warning", r.Warning)
				}
			}

			if cmd.Bool("summary") {
				if _, err := fmt.Fprintln(cmd.Root().Writer, summarize(p)); err != nil {
					return err
				}
			} else {
				w, err := newWriter(cmd)
				if err != nil {
					return err
				}
				defer closeWriter(w)
				if err := w.Serialize(ctx, p); err != nil {
					return err
				}
			}

			if cmd.Bool("strict") && !p.Satisfied {
				return cli.Exit("one or more version requirements are not satisfied", 2)
			}
			return nil
		},
	}
}

// summarize renders a profile as a single human readable line, e.g.
// "Apple iPhone 15 Pro: Phone, Portrait, DynamicIsland, ios 17.4.1".
func summarize(p *profile.Profile) string {
	title := cases.Title(language.English, cases.NoLower)

	parts := []string{
		title.String(string(p.Device.DeviceType)),
		title.String(string(p.Orientation)),
	}
	if p.Cutout.Type != notch.CutoutNone {
		parts = append(parts, title.String(string(p.Cutout.Type)))
	}
	parts = append(parts, strings.TrimSpace(fmt.Sprintf("%s %s", p.Platform.OS, p.Platform.Version)))

	label := p.Device.Model
	if !strings.HasPrefix(label, p.Device.Brand) {
		label = p.Device.Brand + " " + label
	}
	return fmt.Sprintf("%s: %s", label, strings.Join(parts, ", "))
}
