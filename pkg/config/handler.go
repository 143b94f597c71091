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
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/appinteractive/linearmouse/pkg/defaults"
	"github.com/appinteractive/linearmouse/pkg/distance"
	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
	"github.com/appinteractive/linearmouse/pkg/serializer"
	"github.com/appinteractive/linearmouse/pkg/server"
)

// DistanceResult describes a decoded scrolling distance.
type DistanceResult struct {
	Input     string  `json:"input" yaml:"input"`
	Kind      string  `json:"kind" yaml:"kind"`
	Canonical string  `json:"canonical" yaml:"canonical"`
	Encoded   any     `json:"encoded" yaml:"encoded"`
	Lines     *int64  `json:"lines,omitempty" yaml:"lines,omitempty"`
	Pixels    *string `json:"pixels,omitempty" yaml:"pixels,omitempty"`
}

// NewDistanceResult describes d, decoded from input.
func NewDistanceResult(input string, d distance.Distance) DistanceResult {
	res := DistanceResult{
		Input:     input,
		Kind:      d.Kind().String(),
		Canonical: d.String(),
		Encoded:   d.Encode(),
	}
	if n, ok := d.LineCount(); ok {
		res.Lines = ptr.To(n)
	}
	if amount, ok := d.PixelAmount(); ok {
		res.Pixels = ptr.To(amount.String())
	}
	return res
}

// DecodeToken decodes a command line or query token. With native set, a
// token that is a plain integer is treated as a native integer, the way a
// JSON or YAML number would be; otherwise it goes through the text parser.
func DecodeToken(token string, native bool) (distance.Distance, error) {
	if native {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return distance.Decode(n)
		}
	}
	return distance.Parse(token)
}

// HandleDistance decodes the "value" query parameter.
//
//	GET /v1/distance?value=12.5px
//	GET /v1/distance?value=3&native=true
func HandleDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, lmerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	q := r.URL.Query()
	if !q.Has("value") {
		server.WriteError(w, r, http.StatusBadRequest, lmerrors.ErrCodeInvalidRequest,
			"Query parameter 'value' is required", false, nil)
		return
	}

	native := false
	if raw := q.Get("native"); raw != "" {
		var err error
		if native, err = strconv.ParseBool(raw); err != nil {
			server.WriteError(w, r, http.StatusBadRequest, lmerrors.ErrCodeInvalidRequest,
				"Query parameter 'native' must be a boolean", false, map[string]any{"native": raw})
			return
		}
	}

	value := q.Get("value")
	d, err := DecodeToken(value, native)
	if err != nil {
		distanceDecodes.WithLabelValues(outcomeError).Inc()
		server.WriteErrorFromErr(w, r, err, "Failed to decode distance", nil)
		return
	}
	distanceDecodes.WithLabelValues(d.Kind().String()).Inc()

	serializer.RespondJSON(w, http.StatusOK, NewDistanceResult(value, d))
}

// HandleValidate decodes and validates a configuration document posted as
// JSON or YAML (YAML for a yaml Content-Type, JSON otherwise). Invalid
// documents are reported in the ValidationResult with status 200.
func HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, lmerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}
	defer r.Body.Close()

	format := formatFromContentType(r.Header.Get("Content-Type"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxConfigBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, lmerrors.ErrCodeInvalidRequest,
				"Configuration document too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, lmerrors.ErrCodeInvalidRequest,
			"Failed to read request body", false, map[string]any{"error": err.Error()})
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, lmerrors.ErrCodeInvalidRequest,
			"Configuration document cannot be empty", false, nil)
		return
	}

	result := ValidateDocument("request", format, body)

	slog.Debug("configuration validated",
		"requestID", server.RequestIDFromContext(r.Context()),
		"format", format,
		"valid", result.Valid,
		"issues", len(result.Issues),
	)

	serializer.RespondJSON(w, http.StatusOK, result)
}

// ValidateDocument decodes and validates data, recording the outcome.
func ValidateDocument(source string, format serializer.Format, data []byte) ValidationResult {
	cfg, err := Decode(format, data)
	if err == nil {
		err = cfg.Validate()
	}
	return record(NewValidationResult(source, cfg, err))
}

func record(res ValidationResult) ValidationResult {
	outcome := outcomeValid
	if !res.Valid {
		outcome = outcomeInvalid
	}
	configValidations.WithLabelValues(outcome).Inc()
	return res
}

// formatFromContentType picks YAML for any yaml media type and JSON otherwise.
func formatFromContentType(contentType string) serializer.Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil && strings.Contains(mediaType, "yaml") {
		return serializer.FormatYAML
	}
	return serializer.FormatJSON
}
