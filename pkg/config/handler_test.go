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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
	"github.com/appinteractive/linearmouse/pkg/server"
)

func TestHandleDistance(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		status    int
		kind      string
		canonical string
		encoded   any
		code      string
	}{
		{name: "lines", query: "value=3", status: http.StatusOK, kind: "lines", canonical: "3", encoded: float64(3)},
		{name: "pixels", query: "value=12.50px", status: http.StatusOK, kind: "pixels", canonical: "12.50px", encoded: "12.50px"},
		{name: "native integer", query: "value=7&native=true", status: http.StatusOK, kind: "lines", canonical: "7", encoded: float64(7)},
		{name: "invalid value", query: "value=12mm", status: http.StatusBadRequest, code: string(lmerrors.ErrCodeInvalidValue)},
		{name: "fractional lines", query: "value=1.5", status: http.StatusBadRequest, code: string(lmerrors.ErrCodeInvalidValue)},
		{name: "empty value", query: "value=", status: http.StatusBadRequest, code: string(lmerrors.ErrCodeInvalidValue)},
		{name: "missing value", query: "", status: http.StatusBadRequest, code: string(lmerrors.ErrCodeInvalidRequest)},
		{name: "bad native flag", query: "value=3&native=maybe", status: http.StatusBadRequest, code: string(lmerrors.ErrCodeInvalidRequest)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/distance?"+tt.query, nil)
			w := httptest.NewRecorder()

			HandleDistance(w, req)

			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code != "" {
				var resp server.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.code, resp.Code)
				return
			}

			var res DistanceResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.canonical, res.Canonical)
			assert.Equal(t, tt.encoded, res.Encoded)
		})
	}
}

func TestHandleDistanceMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	HandleDistance(w, httptest.NewRequest(http.MethodPost, "/v1/distance?value=3", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestHandleValidate(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		valid       bool
		issueCode   string
	}{
		{name: "valid json", contentType: "application/json", body: sampleJSON, status: http.StatusOK, valid: true},
		{name: "valid yaml", contentType: "application/yaml", body: sampleYAML, status: http.StatusOK, valid: true},
		{name: "yaml with charset", contentType: "application/x-yaml; charset=utf-8", body: sampleYAML, status: http.StatusOK, valid: true},
		{name: "no content type defaults to json", body: sampleJSON, status: http.StatusOK, valid: true},
		{
			name:      "invalid distance",
			body:      `{"schemes": [{"scrolling": {"distance": {"vertical": "3em"}}}]}`,
			status:    http.StatusOK,
			issueCode: string(lmerrors.ErrCodeInvalidValue),
		},
		{
			name:      "unknown category",
			body:      `{"schemes": [{"if": {"device": {"category": "pen"}}}]}`,
			status:    http.StatusOK,
			issueCode: string(lmerrors.ErrCodeInvalidValue),
		},
		{
			name:      "malformed json",
			body:      `{"schemes": [`,
			status:    http.StatusOK,
			issueCode: string(lmerrors.ErrCodeInvalidRequest),
		},
		{name: "empty body", body: "  ", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/config/validate", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			HandleValidate(w, req)

			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			var res ValidationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.valid, res.Valid)
			if tt.issueCode != "" {
				require.NotEmpty(t, res.Issues)
				assert.Equal(t, tt.issueCode, res.Issues[0].Code)
			} else {
				assert.Empty(t, res.Issues)
				assert.Equal(t, SupportedSchemaVersion, res.SchemaVersion)
				assert.Equal(t, 3, res.Schemes)
			}
		})
	}
}

func TestHandleValidateTooLarge(t *testing.T) {
	body := `{"schemes": []}` + strings.Repeat(" ", 2<<20)
	w := httptest.NewRecorder()
	HandleValidate(w, httptest.NewRequest(http.MethodPost, "/v1/config/validate", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleValidateMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	HandleValidate(w, httptest.NewRequest(http.MethodGet, "/v1/config/validate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestDecodeToken(t *testing.T) {
	d, err := DecodeToken("12", true)
	require.NoError(t, err)
	assert.True(t, d.IsLines())

	d, err = DecodeToken("12px", true)
	require.NoError(t, err)
	assert.True(t, d.IsPixels())

	// Native decoding does not widen the grammar
	_, err = DecodeToken("-3", false)
	assert.Error(t, err)
	d, err = DecodeToken("-3", true)
	require.NoError(t, err)
	n, _ := d.LineCount()
	assert.Equal(t, int64(-3), n)
}
