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

package config

import (
	"context"
	"fmt"
	"log/slog"

	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
	"github.com/appinteractive/linearmouse/pkg/serializer"
)

// Load reads a configuration document from a local path, an http(s) URL or
// a ConfigMap URI (cm://namespace/name). It does not call Validate.
func Load(ctx context.Context, uri string, opts ...serializer.Option) (*Configuration, error) {
	if uri == "" {
		return nil, lmerrors.New(lmerrors.ErrCodeInvalidRequest, "configuration location is required")
	}

	cfg, err := serializer.FromFile[Configuration](ctx, uri, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", uri, err)
	}

	slog.Debug("configuration loaded",
		"uri", uri,
		"schema", cfg.Schema,
		"schemes", len(cfg.Schemes),
	)
	return cfg, nil
}

// Decode parses a configuration document held in memory.
func Decode(format serializer.Format, data []byte) (*Configuration, error) {
	cfg, err := serializer.Unmarshal[Configuration](format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}
