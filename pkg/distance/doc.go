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

// Package distance provides the scrolling distance value used in linearmouse
// configuration documents.
//
// # Core Types
//
// A Distance holds exactly one of two variants:
//   - Lines: a signed whole number of text lines
//   - Pixels: an arbitrary-precision decimal pixel amount (gopkg.in/inf.v0)
//
// There is no empty state; the zero value is Lines(0).
//
// # Textual Form
//
//	Lines(3)        -> "3"
//	Pixels(12.5)    -> "12.5px"
//
// Parse accepts exactly the grammar ^([0-9.]+)(px)?$:
//
//	d, err := distance.Parse("12.5px")   // Pixels(12.5)
//	d, err := distance.Parse("3")        // Lines(3)
//	d, err := distance.Parse("12mm")     // ErrInvalidValue
//
// # Serialization
//
// Distances implement json.Marshaler/Unmarshaler and yaml.Marshaler/Unmarshaler.
// Line counts are written as native integers and pixel amounts as strings with
// the "px" suffix:
//
//	{"vertical": 3, "horizontal": "12.5px"}
//
// When decoding, a native integer always yields Lines; only when that fails
// is the token decoded as a string and parsed. Decode applies the same rules
// to generic tokens such as values from a map[string]any.
//
// # Errors
//
// Parse failures are *errors.StructuredError values (pkg/errors) with code
// INVALID_VALUE or UNKNOWN_UNIT wrapping ErrInvalidValue or ErrUnknownUnit:
//
//	if errors.Is(err, distance.ErrInvalidValue) {
//	    // show err to the user
//	}
//
// Tokens that are neither integers nor strings fail with the serialization
// format's own type error (or *TypeError from Decode).
package distance
