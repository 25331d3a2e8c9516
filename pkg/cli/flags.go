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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/devicekit/pkg/serializer"
)

// Flags hold parse state, so each command tree gets fresh instances.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("DEVKIT_OUTPUT"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
		Sources: cli.EnvVars("DEVKIT_FORMAT"),
	}
}

func snapshotFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "snapshot",
		Aliases:  []string{"f"},
		Usage:    "Path or HTTP/HTTPS URL of a host snapshot (JSON or YAML)",
		Required: true,
		Sources:  cli.EnvVars("DEVKIT_SNAPSHOT"),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// newWriter returns a writer for the --output and --format flags. Without
// --output it writes to the root command's writer.
func newWriter(cmd *cli.Command) (*serializer.Writer, error) {
	f, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	if path := cmd.String("output"); path != "" {
		return serializer.NewFileWriterOrStdout(f, path), nil
	}
	return serializer.NewWriter(f, cmd.Root().Writer), nil
}

func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}
