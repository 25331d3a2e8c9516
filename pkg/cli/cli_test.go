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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/devicekit/pkg/profile"
	"github.com/NVIDIA/devicekit/pkg/scaling"
	"github.com/NVIDIA/devicekit/pkg/serializer"
)

const iphoneSnapshot = `os: ios
version: "17.4.1"
constants:
  interfaceIdiom: phone
  systemName: iOS
window:
  width: 393
  height: 852
  scale: 3
  fontScale: 1
native:
  brand: Apple
  model: iPhone 15 Pro
safeArea:
  top: 59
  bottom: 34
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iphone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(iphoneSnapshot), 0o600))
	return path
}

// run executes the root command and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &bytes.Buffer{}
	root.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	err := root.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{&cli.StringFlag{Name: "format", Value: tt.format}},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.want, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   string
	}{
		{"1.2", "1.10", "-1"},
		{"2.0.0", "1.9.9", "1"},
		{"12.x", "12", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.v1+"_"+tt.v2, func(t *testing.T) {
			out, err := run(t, "version", "compare", tt.v1, tt.v2)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	out, err := run(t, "version", "at-least", "15.0", "17.4")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "version", "at-least", "1.0", "beta")
	require.NoError(t, err, "an unmet check still exits zero")
	assert.Equal(t, "false\n", out)
}

func TestVersionParse(t *testing.T) {
	out, err := run(t, "--format", "json", "version", "parse", "12.x")
	require.NoError(t, err)

	var res parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "12.x", res.Input)
	assert.Equal(t, "12.0.0", res.Canonical)
	assert.Equal(t, 12, res.Version.Major)
	assert.NotEmpty(t, res.Warning)
}

func TestVersionValidate(t *testing.T) {
	out, err := run(t, "version", "validate", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = run(t, "version", "validate", "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "invalid: "), out)
}

func TestVersionArgCount(t *testing.T) {
	_, err := run(t, "version", "compare", "1.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 argument(s)")
}

func TestProfileCommand(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, "-t", "json", "profile", "--snapshot", path, "--require", "ios=15.0")
	require.NoError(t, err)

	var p profile.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.True(t, p.Device.HasDynamicIsland)
	assert.True(t, p.Satisfied)
	require.Len(t, p.Requirements, 1)
}

func TestProfileCommandOutputFile(t *testing.T) {
	path := writeSnapshot(t)
	dest := filepath.Join(t.TempDir(), "profile.yaml")

	out, err := run(t, "profile", "-f", path, "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hasDynamicIsland: true")
}

func TestProfileCommandSummary(t *testing.T) {
	out, err := run(t, "profile", "--snapshot", writeSnapshot(t), "--summary")
	require.NoError(t, err)
	assert.Equal(t, "Apple iPhone 15 Pro: Phone, Portrait, DynamicIsland, ios 17.4.1\n", out)
}

func TestProfileCommandStrict(t *testing.T) {
	path := writeSnapshot(t)

	_, err := run(t, "profile", "--snapshot", path, "--require", "ios=18", "--summary")
	require.NoError(t, err)

	_, err = run(t, "profile", "--snapshot", path, "--require", "ios=18", "--summary", "--strict")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestProfileCommandErrors(t *testing.T) {
	path := writeSnapshot(t)

	_, err := run(t, "profile")
	assert.Error(t, err, "snapshot is required")

	_, err = run(t, "profile", "--snapshot", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "profile", "--snapshot", path, "--require", "palm=1")
	assert.Error(t, err)

	_, err = run(t, "--format", "xml", "profile", "--snapshot", path)
	assert.Error(t, err)
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "-t", "json", "scale", "--snapshot", writeSnapshot(t), "--size", "16")
	require.NoError(t, err)

	var s scaling.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 16.0, s.Size)
	assert.Equal(t, 0.5, s.Factor)
	assert.InDelta(t, 16*393.0/375.0, s.ScaleWidth, 1e-9)
	assert.Equal(t, 48.0, s.Pixels)
}

func TestScaleCommandErrors(t *testing.T) {
	path := writeSnapshot(t)

	_, err := run(t, "scale", "--snapshot", path)
	assert.Error(t, err, "size is required")

	_, err = run(t, "scale", "--snapshot", path, "--size", "16", "--factor", "2")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(assert.AnError))
	assert.Equal(t, 3, exitCode(cli.Exit("boom", 3)))
}

func TestVersionFlag(t *testing.T) {
	assert.Equal(t, "devkit", name)
	assert.Equal(t, versionDefault, buildVersion)

	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "devkit version dev (commit: unknown, built: unknown)\n", out)
}

func TestExitCodeWrapped(t *testing.T) {
	err := fmt.Errorf("profile: %w", cli.Exit("bad snapshot", 2))
	assert.Equal(t, 2, exitCode(err))
}
