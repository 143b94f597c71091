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

	"github.com/urfave/cli/v3"

	"github.com/appinteractive/linearmouse/pkg/config"
	"github.com/appinteractive/linearmouse/pkg/serializer"
)

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:                  "format",
		EnableShellCompletion: true,
		Usage:                 "Rewrite a configuration document in canonical form",
		Description: `Load a configuration document and write it back in canonical form:
per-direction settings are expanded into {vertical, horizontal} objects,
"if" clauses become lists, line counts are written as integers and pixel
amounts as strings with the "px" suffix.

The output can be a file, stdout, or a ConfigMap, which makes format useful
for converting between JSON and YAML or publishing a document to a cluster.

# Examples

  lmconfig format --config linearmouse.json --format yaml
  lmconfig format -c linearmouse.yaml -o cm://default/linearmouse -t json`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "skip-validation",
				Usage: "write the document even if validation fails",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			source := cmd.String("config")
			cfg, err := config.Load(ctx, source, sourceOptions(cmd)...)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				if !cmd.Bool("skip-validation") {
					return fmt.Errorf("configuration %s is invalid: %w", source, err)
				}
				slog.Warn("writing invalid configuration", "uri", source, "error", err)
			}

			return writeOutput(ctx, cmd, format, cfg)
		},
	}
}
