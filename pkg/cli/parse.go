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
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/appinteractive/linearmouse/pkg/config"
	"github.com/appinteractive/linearmouse/pkg/serializer"
)

// ParseResult is the outcome of decoding one token.
type ParseResult struct {
	config.DistanceResult `yaml:",inline"`
	Error                 string `json:"error,omitempty" yaml:"error,omitempty"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Decode scrolling distance tokens",
		ArgsUsage:             "TOKEN...",
		Description: `Decode one or more scrolling distance tokens and print their kind,
canonical text and encoded form.

A token is either a whole number of lines ("3") or a decimal pixel amount
with the "px" suffix ("12.5px"). Tokens are parsed as text by default; with
--native, tokens that are plain integers are treated as native numbers, the
way a JSON or YAML integer would be.

# Examples

  lmconfig parse 3 12.5px
  lmconfig parse --format json 0.5px
  lmconfig parse --native -- -3`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "native",
				Usage: "treat integer tokens as native numbers instead of text",
			},
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			tokens := cmd.Args().Slice()
			if len(tokens) == 0 {
				return fmt.Errorf("at least one token is required")
			}

			results, failed := parseTokens(tokens, cmd.Bool("native"))

			output := cmd.String("output")
			if format == serializer.FormatTable && !strings.HasPrefix(output, serializer.ConfigMapURIScheme) {
				err = writeParseTable(cmd, output, results)
			} else {
				err = writeOutput(ctx, cmd, format, results)
			}
			if err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d token(s) could not be decoded", failed, len(tokens))
			}
			return nil
		},
	}
}

func parseTokens(tokens []string, native bool) ([]ParseResult, int) {
	results := make([]ParseResult, 0, len(tokens))
	failed := 0
	for _, token := range tokens {
		d, err := config.DecodeToken(token, native)
		if err != nil {
			slog.Debug("token rejected", "token", token, "error", err)
			results = append(results, ParseResult{
				DistanceResult: config.DistanceResult{Input: token},
				Error:          err.Error(),
			})
			failed++
			continue
		}
		results = append(results, ParseResult{DistanceResult: config.NewDistanceResult(token, d)})
	}
	return results, failed
}

func writeParseTable(cmd *cli.Command, output string, results []ParseResult) error {
	var w io.Writer = cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return renderParseTable(w, results)
}

// renderParseTable writes one row per token with a display-cased kind.
func renderParseTable(w io.Writer, results []ParseResult) error {
	title := cases.Title(language.English)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOKEN\tKIND\tCANONICAL\tENCODED")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t%s\t-\t%s\n", r.Input, "Invalid", r.Error)
			continue
		}
		encoded := fmt.Sprintf("%v", r.Encoded)
		if s, ok := r.Encoded.(string); ok {
			encoded = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Input, title.String(r.Kind), r.Canonical, encoded)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}
