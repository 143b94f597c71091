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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/appinteractive/linearmouse/pkg/distance"
)

func TestBidirectionalUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		vertical   *distance.Distance
		horizontal *distance.Distance
		wantErr    bool
	}{
		{
			name:       "single lines value applies to both",
			input:      `3`,
			vertical:   ptr.To(distance.Lines(3)),
			horizontal: ptr.To(distance.Lines(3)),
		},
		{
			name:       "single pixel value applies to both",
			input:      `"12.5px"`,
			vertical:   ptr.To(distance.MustParse("12.5px")),
			horizontal: ptr.To(distance.MustParse("12.5px")),
		},
		{
			name:       "object with both directions",
			input:      `{"vertical": 3, "horizontal": "12.5px"}`,
			vertical:   ptr.To(distance.Lines(3)),
			horizontal: ptr.To(distance.MustParse("12.5px")),
		},
		{
			name:     "object with one direction",
			input:    `{"vertical": "2"}`,
			vertical: ptr.To(distance.Lines(2)),
		},
		{
			name:    "invalid distance",
			input:   `{"vertical": "12mm"}`,
			wantErr: true,
		},
		{
			name:    "wrong token type",
			input:   `true`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bidirectional[distance.Distance]
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertDistancePtr(t, tt.vertical, b.Vertical)
			assertDistancePtr(t, tt.horizontal, b.Horizontal)
		})
	}
}

func assertDistancePtr(t *testing.T, want, got *distance.Distance) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
}

func TestBidirectionalSingleValueIsNotShared(t *testing.T) {
	b := Both(true)
	*b.Vertical = false
	assert.True(t, *b.Horizontal)
}

func TestBidirectionalUnmarshalYAML(t *testing.T) {
	var doc struct {
		Single Bidirectional[distance.Distance] `yaml:"single"`
		Object Bidirectional[distance.Distance] `yaml:"object"`
		Bool   Bidirectional[bool]              `yaml:"bool"`
	}
	input := `
single: 12px
object:
  vertical: 3
  horizontal: 0.5px
bool:
  horizontal: true
`
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	assertDistancePtr(t, ptr.To(distance.MustParse("12px")), doc.Single.Vertical)
	assertDistancePtr(t, ptr.To(distance.MustParse("12px")), doc.Single.Horizontal)
	assertDistancePtr(t, ptr.To(distance.Lines(3)), doc.Object.Vertical)
	assertDistancePtr(t, ptr.To(distance.MustParse("0.5px")), doc.Object.Horizontal)
	assert.Nil(t, doc.Bool.Vertical)
	assert.Equal(t, ptr.To(true), doc.Bool.Horizontal)
}

func TestBidirectionalMarshal(t *testing.T) {
	b := Bidirectional[distance.Distance]{
		Vertical:   ptr.To(distance.Lines(3)),
		Horizontal: ptr.To(distance.MustParse("12.5px")),
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vertical": 3, "horizontal": "12.5px"}`, string(data))

	data, err = json.Marshal(Bidirectional[bool]{Vertical: ptr.To(true)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vertical": true}`, string(data))

	out, err := yaml.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, "vertical: 3\nhorizontal: 12.5px\n", string(out))
}

func TestBidirectionalMerge(t *testing.T) {
	base := &Bidirectional[bool]{Vertical: ptr.To(true), Horizontal: ptr.To(true)}
	over := &Bidirectional[bool]{Horizontal: ptr.To(false)}

	merged := base.Merge(over)
	require.NotNil(t, merged)
	assert.True(t, *merged.Vertical)
	assert.False(t, *merged.Horizontal)
	assert.True(t, *base.Horizontal, "receiver must not change")

	var empty *Bidirectional[bool]
	assert.Nil(t, empty.Merge(nil))
	assert.Equal(t, over.Horizontal, empty.Merge(over).Horizontal)
	assert.Equal(t, base.Vertical, base.Merge(nil).Vertical)
}
