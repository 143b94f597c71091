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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/appinteractive/linearmouse/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path, ConfigMap URI (cm://namespace/name), or stdout when empty",
	}
}

func formatFlag(defaultFormat serializer.Format) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(defaultFormat),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Required: true,
		Usage: `Path/URI to a linearmouse configuration document.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
	}
}

// parseOutputFormat reads the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// sourceOptions carries the global kubeconfig into serializer calls.
func sourceOptions(cmd *cli.Command) []serializer.Option {
	if kc := cmd.String("kubeconfig"); kc != "" {
		return []serializer.Option{serializer.WithKubeconfig(kc)}
	}
	return nil
}

// writeOutput serializes v to --output, or to the command writer when unset.
// Failing to open or close the destination is reported as an error.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) (err error) {
	output := cmd.String("output")

	var ser serializer.Serializer
	if output == "" {
		ser = serializer.NewWriter(format, cmd.Root().Writer)
	} else {
		ser, err = serializer.NewFileWriterOrStdout(format, output, sourceOptions(cmd)...)
		if err != nil {
			return fmt.Errorf("failed to open output: %w", err)
		}
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if cerr := closer.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("failed to close output: %w", cerr))
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Debug("output written", "destination", output, "format", format)
	return nil
}
