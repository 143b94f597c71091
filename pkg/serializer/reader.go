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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reader decodes JSON or YAML from an io.Reader. Table format is write-only.
// Close releases the input when it is an io.Closer; it is safe to call
// more than once and on readers over non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for input in the given format.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader opens a local file for reading in the given format.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r, err := NewReader(format, file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// NewFileReaderAuto opens a local file, detecting the format from its extension.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

// Deserialize decodes the input into v, which must be a pointer.
// Decoding errors, including those returned by custom unmarshalers, are
// wrapped so errors.Is and errors.As still reach them.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Unmarshal decodes data in the given format into a new T.
func Unmarshal[T any](format Format, data []byte) (*T, error) {
	r, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromFile loads a T from a local path, an http(s) URL or a ConfigMap URI
// (cm://namespace/name). Files and URLs are decoded according to their
// extension; ConfigMaps according to their stored format.
//
//	cfg, err := serializer.FromFile[config.Configuration](ctx, "cm://default/linearmouse",
//	    serializer.WithKubeconfig(kubeconfig))
func FromFile[T any](ctx context.Context, path string, opts ...Option) (*T, error) {
	data, format, err := ReadSource(ctx, path, opts...)
	if err != nil {
		return nil, err
	}

	out, err := Unmarshal[T](format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object", "path", path, "format", format)
	return out, nil
}

// ReadSource returns the raw bytes at path and the format to decode them with.
func ReadSource(ctx context.Context, path string, opts ...Option) ([]byte, Format, error) {
	o := newOptions(opts)

	switch {
	case strings.HasPrefix(path, ConfigMapURIScheme):
		namespace, name, err := ParseConfigMapURI(path)
		if err != nil {
			return nil, "", err
		}
		return readConfigMap(ctx, o, namespace, name)

	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		format := FormatFromPath(path)
		data, err := o.httpReader().Read(ctx, path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to download remote file: %w", err)
		}
		return data, format, nil

	default:
		format := FormatFromPath(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open file: %w", err)
		}
		return data, format, nil
	}
}
