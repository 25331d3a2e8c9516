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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/devicekit/pkg/host"
	"github.com/NVIDIA/devicekit/pkg/scaling"
)

func scaleCmd() *cli.Command {
	return &cli.Command{
		Name:  "scale",
		Usage: "Compute scaled sizes for a host snapshot",
		Description: `Scale a size against the 375x812 design base of the snapshot's window.
Reports width, height and moderate scaling, font scaling and pixel rounding.`,
		Flags: []cli.Flag{
			snapshotFlag(),
			&cli.FloatFlag{
				Name:     "size",
				Usage:    "Size in design points to scale",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  "factor",
				Usage: "Moderate scale factor between 0 (no scaling) and 1 (full scaling)",
				Value: 0.5,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			factor := cmd.Float("factor")
			if factor < 0 || factor > 1 {
				return fmt.Errorf("factor must be between 0 and 1, got %v", factor)
			}

			path := cmd.String("snapshot")
			snap, err := host.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to load snapshot from %q: %w", path, err)
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer closeWriter(w)

			return w.Serialize(ctx, scaling.FromSnapshot(*snap).Summarize(cmd.Float("size"), factor))
		},
	}
}
