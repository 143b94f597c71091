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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/appinteractive/linearmouse/pkg/config"
	"github.com/appinteractive/linearmouse/pkg/serializer"
)

// MatchResult is the effective scrolling configuration for a device.
type MatchResult struct {
	Device    config.Device     `json:"device" yaml:"device"`
	Scrolling *config.Scrolling `json:"scrolling,omitempty" yaml:"scrolling,omitempty"`
}

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "match",
		EnableShellCompletion: true,
		Usage:                 "Show the scrolling settings that apply to a device",
		Description: `Merge, in document order, every scheme whose conditions select the
described device and print the resulting scrolling settings. Later schemes
override earlier ones per setting and per direction.

Vendor and product ids accept decimal or hexadecimal (0x046d) notation.

# Examples

  lmconfig match -c linearmouse.json --category mouse --vendor-id 0x046d --product-id 0xc077
  lmconfig match -c cm://default/linearmouse --category trackpad --product-name "Magic Trackpad"`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "category",
				Value: string(config.CategoryMouse),
				Usage: "device category (mouse, trackpad)",
			},
			&cli.StringFlag{
				Name:  "vendor-id",
				Value: "0",
				Usage: "USB vendor id",
			},
			&cli.StringFlag{
				Name:  "product-id",
				Value: "0",
				Usage: "USB product id",
			},
			&cli.StringFlag{
				Name:  "product-name",
				Usage: "device product name",
			},
			&cli.StringFlag{
				Name:  "serial-number",
				Usage: "device serial number",
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			device, err := deviceFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(ctx, cmd.String("config"), sourceOptions(cmd)...)
			if err != nil {
				return err
			}

			scheme := cfg.Matching(device)
			slog.Debug("device matched",
				"vendorID", device.VendorID.String(),
				"productID", device.ProductID.String(),
				"category", device.Category,
				"hasScrolling", scheme.Scrolling != nil,
			)

			return writeOutput(ctx, cmd, format, MatchResult{Device: device, Scrolling: scheme.Scrolling})
		},
	}
}

func deviceFromCmd(cmd *cli.Command) (config.Device, error) {
	category, err := config.ParseCategory(cmd.String("category"))
	if err != nil {
		return config.Device{}, err
	}
	vendorID, err := config.ParseDeviceID(cmd.String("vendor-id"))
	if err != nil {
		return config.Device{}, err
	}
	productID, err := config.ParseDeviceID(cmd.String("product-id"))
	if err != nil {
		return config.Device{}, err
	}

	return config.Device{
		VendorID:     vendorID,
		ProductID:    productID,
		ProductName:  cmd.String("product-name"),
		SerialNumber: cmd.String("serial-number"),
		Category:     category,
	}, nil
}
