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

package serializer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appinteractive/linearmouse/pkg/distance"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr string
	}{
		{"json", FormatJSON, ""},
		{"yaml", FormatYAML, ""},
		{"table", FormatTable, "does not support deserialization"},
		{"unknown", Format("xml"), "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader("{}"))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, r.Close())
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"wheel","distance":"3px"}`))
		require.NoError(t, err)
		var got testScrolling
		require.NoError(t, r.Deserialize(&got))
		assert.Equal(t, "wheel", got.Name)
		assert.Equal(t, "3px", got.Distance.String())
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := NewReader(FormatYAML, strings.NewReader("name: wheel\ndistance: 3\n"))
		require.NoError(t, err)
		var got testScrolling
		require.NoError(t, r.Deserialize(&got))
		assert.True(t, got.Distance.Equal(distance.Lines(3)))
	})

	t.Run("domain error is preserved", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"distance":"12mm"}`))
		require.NoError(t, err)
		var got testScrolling
		err = r.Deserialize(&got)
		require.Error(t, err)
		assert.True(t, errors.Is(err, distance.ErrInvalidValue), "got %v", err)
	})

	t.Run("nil reader", func(t *testing.T) {
		var r *Reader
		assert.Error(t, r.Deserialize(&testConfig{}))
		assert.NoError(t, r.Close())
	})

	t.Run("nil input", func(t *testing.T) {
		r, err := NewReader(FormatJSON, nil)
		require.NoError(t, err)
		assert.Error(t, r.Deserialize(&testConfig{}))
	})
}

type closeCounter struct {
	*strings.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestReader_CloseIdempotent(t *testing.T) {
	src := &closeCounter{Reader: strings.NewReader("{}")}
	r, err := NewReader(FormatJSON, src)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, src.closed)
}

func TestNewFileReaderAuto(t *testing.T) {
	path := writeFile(t, "c.yaml", "name: a\nvalue: 2\n")
	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	defer r.Close()

	var got testConfig
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, testConfig{Name: "a", Value: 2}, got)

	_, err = NewFileReaderAuto(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal[testConfig](FormatJSON, []byte(`{"name":"a","value":1}`))
	require.NoError(t, err)
	assert.Equal(t, &testConfig{Name: "a", Value: 1}, got)

	_, err = Unmarshal[testConfig](FormatTable, []byte("x"))
	assert.Error(t, err)
}

func TestFromFile_LocalFile(t *testing.T) {
	ctx := context.Background()

	jsonPath := writeFile(t, "c.json", `{"name":"j","value":1}`)
	got, err := FromFile[testConfig](ctx, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "j", got.Name)

	yamlPath := writeFile(t, "c.yml", "name: y\nvalue: 2\n")
	got, err = FromFile[testConfig](ctx, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value)
}

func TestFromFile_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := FromFile[testConfig](ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")

	bad := writeFile(t, "bad.json", "{")
	_, err = FromFile[testConfig](ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	table := writeFile(t, "out.txt", "FIELD VALUE")
	_, err = FromFile[testConfig](ctx, table)
	assert.Error(t, err)

	_, err = FromFile[testConfig](ctx, "cm://only-namespace")
	assert.Error(t, err)
}

func TestFromFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/linearmouse.yaml":
			_, _ = w.Write([]byte("name: remote\nvalue: 9\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	opt := WithHttpReader(NewHttpReader(WithClient(srv.Client())))

	got, err := FromFile[testConfig](ctx, srv.URL+"/linearmouse.yaml", opt)
	require.NoError(t, err)
	assert.Equal(t, &testConfig{Name: "remote", Value: 9}, got)

	_, err = FromFile[testConfig](ctx, srv.URL+"/missing.json", opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
