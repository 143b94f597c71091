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
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Bidirectional holds a setting for the vertical and horizontal scroll
// directions. Either side may be unset.
//
// It decodes from a single value, which applies to both directions:
//
//	"distance": "12.5px"
//
// or from an object naming each direction:
//
//	"distance": {"vertical": 3, "horizontal": "12.5px"}
//
// and always encodes as the object form.
type Bidirectional[T any] struct {
	Vertical   *T `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Horizontal *T `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
}

// bidirectionalFields is the object form used on the wire.
type bidirectionalFields[T any] struct {
	Vertical   *T `json:"vertical,omitempty" yaml:"vertical,omitempty"`
	Horizontal *T `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
}

// Both returns a Bidirectional with v in both directions.
func Both[T any](v T) *Bidirectional[T] {
	vertical, horizontal := v, v
	return &Bidirectional[T]{Vertical: &vertical, Horizontal: &horizontal}
}

// IsEmpty reports whether neither direction is set.
func (b *Bidirectional[T]) IsEmpty() bool {
	return b == nil || (b.Vertical == nil && b.Horizontal == nil)
}

// Merge returns a new value where each direction set in other overrides b.
// Either side may be nil.
func (b *Bidirectional[T]) Merge(other *Bidirectional[T]) *Bidirectional[T] {
	if b.IsEmpty() && other.IsEmpty() {
		return nil
	}

	out := &Bidirectional[T]{}
	if b != nil {
		out.Vertical, out.Horizontal = b.Vertical, b.Horizontal
	}
	if other != nil {
		if other.Vertical != nil {
			out.Vertical = other.Vertical
		}
		if other.Horizontal != nil {
			out.Horizontal = other.Horizontal
		}
	}
	return out
}

func (b Bidirectional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(bidirectionalFields[T]{Vertical: b.Vertical, Horizontal: b.Horizontal})
}

func (b *Bidirectional[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields bidirectionalFields[T]
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		b.Vertical, b.Horizontal = fields.Vertical, fields.Horizontal
		return nil
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*b = *Both(v)
	return nil
}

func (b Bidirectional[T]) MarshalYAML() (any, error) {
	return bidirectionalFields[T]{Vertical: b.Vertical, Horizontal: b.Horizontal}, nil
}

func (b *Bidirectional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var fields bidirectionalFields[T]
		if err := node.Decode(&fields); err != nil {
			return err
		}
		b.Vertical, b.Horizontal = fields.Vertical, fields.Horizontal
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*b = *Both(v)
	return nil
}
