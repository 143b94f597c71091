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

package distance

import (
	"encoding/json"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"3",
		"12px",
		"12.5px",
		"0.125px",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}

func BenchmarkParseLines(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("3")
	}
}

func BenchmarkParsePixels(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("12.5px")
	}
}

func BenchmarkParseInvalid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.2.3px")
	}
}

func BenchmarkString(b *testing.B) {
	d := MustParse("12.5px")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}

func BenchmarkUnmarshalJSONLines(b *testing.B) {
	data := []byte("3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var d Distance
		_ = json.Unmarshal(data, &d)
	}
}

func BenchmarkUnmarshalJSONPixels(b *testing.B) {
	data := []byte(`"12.5px"`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var d Distance
		_ = json.Unmarshal(data, &d)
	}
}

func BenchmarkEqual(b *testing.B) {
	d1 := MustParse("12.5px")
	d2 := MustParse("12.50px")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d1.Equal(d2)
	}
}
