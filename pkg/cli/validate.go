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
	"golang.org/x/sync/errgroup"

	"github.com/appinteractive/linearmouse/pkg/config"
	"github.com/appinteractive/linearmouse/pkg/defaults"
	"github.com/appinteractive/linearmouse/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate linearmouse configuration documents",
		ArgsUsage:             "[URI...]",
		Description: `Load one or more configuration documents and report, per document,
whether it decodes and passes validation.

Every scrolling distance must be a whole number of lines or a decimal pixel
amount ("12.5px"). The declared $schema must not be newer than the supported
schema version, and device matchers must name a known category and USB ids.

Documents are given with --config (repeatable) or as arguments and are
checked concurrently.

# Examples

Validate a local file:
  lmconfig validate --config linearmouse.json

Validate a file and a ConfigMap, failing the command on any problem:
  lmconfig validate -c linearmouse.yaml -c cm://default/linearmouse --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `Path/URI to a configuration document (repeatable).
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any document is invalid",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			sources := append(cmd.StringSlice("config"), cmd.Args().Slice()...)
			if len(sources) == 0 {
				return fmt.Errorf("at least one configuration document is required")
			}

			results, err := validateSources(ctx, sources, sourceOptions(cmd)...)
			if err != nil {
				return err
			}

			if err := writeOutput(ctx, cmd, format, results); err != nil {
				return err
			}

			invalid := 0
			for _, r := range results {
				if !r.Valid {
					invalid++
				}
			}
			slog.Info("validation completed", "documents", len(results), "invalid", invalid)

			if cmd.Bool("fail-on-error") && invalid > 0 {
				return fmt.Errorf("validation failed: %d of %d document(s) invalid", invalid, len(results))
			}
			return nil
		},
	}
}

// validateSources loads and validates each source concurrently and returns
// the results in input order. Per-document failures are reported in the
// results; only cancellation is returned as an error.
func validateSources(ctx context.Context, sources []string, opts ...serializer.Option) ([]config.ValidationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CLIValidateTimeout)
	defer cancel()

	results := make([]config.ValidationResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.CLIValidateConcurrency)

	for i, source := range sources {
		g.Go(func() error {
			slog.Debug("validating", "uri", source)
			cfg, err := config.Load(gctx, source, opts...)
			if err == nil {
				err = cfg.Validate()
			}
			results[i] = config.NewValidationResult(source, cfg, err)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation interrupted: %w", err)
	}
	return results, nil
}
