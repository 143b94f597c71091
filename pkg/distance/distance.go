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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"gopkg.in/inf.v0"
	"gopkg.in/yaml.v3"

	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
)

// UnitPixels is the only unit suffix accepted by Parse.
const UnitPixels = "px"

const yamlIntTag = "!!int"

// Error types for distance parsing failures
var (
	ErrInvalidValue = errors.New("value must be a number or a string representing value and unit")
	ErrUnknownUnit  = errors.New(`unit must be empty or "px"`)
)

// pattern is the accepted textual grammar: a run of digits and decimal
// points, optionally followed by the pixel unit. Whether the numeric part
// is a well-formed number is left to the per-unit parser.
var pattern = regexp.MustCompile(`^([0-9.]+)(px)?$`)

// Kind identifies which variant a Distance holds.
type Kind int

const (
	KindLines Kind = iota
	KindPixels
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLines:
		return "lines"
	case KindPixels:
		return "pixels"
	default:
		return "unknown"
	}
}

// Distance is a scrolling distance expressed either as a whole number of
// lines or as a decimal pixel amount. The zero value is Lines(0).
//
// A Distance is immutable: constructors copy their input and accessors
// return copies, so values may be shared between goroutines freely.
type Distance struct {
	kind   Kind
	lines  int64
	pixels *inf.Dec
}

// Lines returns a line-count distance.
func Lines(n int64) Distance {
	return Distance{kind: KindLines, lines: n}
}

// Pixels returns a pixel distance holding a copy of v. A nil v is treated as zero.
func Pixels(v *inf.Dec) Distance {
	amount := new(inf.Dec)
	if v != nil {
		amount.Set(v)
	}
	return Distance{kind: KindPixels, pixels: amount}
}

// ParsePixels parses a bare decimal (without the unit suffix) into a pixel distance.
func ParsePixels(s string) (Distance, error) {
	return Parse(s + UnitPixels)
}

// Parse parses the textual form of a distance.
// Supported formats: "3" (lines), "12px", "12.5px" (pixels).
// No surrounding whitespace, sign or exponent is accepted.
func Parse(s string) (Distance, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Distance{}, invalidValue(s, nil)
	}

	value, unit := m[1], m[2]
	switch unit {
	case "":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Distance{}, invalidValue(s, err)
		}
		return Lines(n), nil
	case UnitPixels:
		amount, ok := new(inf.Dec).SetString(value)
		if !ok {
			return Distance{}, invalidValue(s, nil)
		}
		return Distance{kind: KindPixels, pixels: amount}, nil
	default:
		return Distance{}, lmerrors.WrapWithContext(lmerrors.ErrCodeUnknownUnit,
			fmt.Sprintf("invalid distance %q", s), ErrUnknownUnit,
			map[string]any{"value": s, "unit": unit})
	}
}

// MustParse parses a distance and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Distance {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return d
}

func invalidValue(s string, reason error) error {
	ctx := map[string]any{"value": s}
	if reason != nil {
		ctx["reason"] = reason.Error()
	}
	return lmerrors.WrapWithContext(lmerrors.ErrCodeInvalidValue,
		fmt.Sprintf("invalid distance %q", s), ErrInvalidValue, ctx)
}

// TypeError is returned by Decode when the token is neither an integer nor a string.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot decode %T as a distance: expected an integer or a string", e.Value)
}

// Decode converts a generic serialized token into a Distance.
// Native integers (including json.Number holding an integer) always decode
// to Lines; strings go through Parse; anything else yields a *TypeError.
func Decode(token any) (Distance, error) {
	if n, ok := asInteger(token); ok {
		return Lines(n), nil
	}
	if s, ok := token.(string); ok {
		return Parse(s)
	}
	return Distance{}, &TypeError{Value: token}
}

func asInteger(token any) (int64, bool) {
	switch v := token.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return fitUint(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return fitUint(v)
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func fitUint(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Kind returns the variant held by d.
func (d Distance) Kind() Kind { return d.kind }

// IsLines reports whether d is a line count.
func (d Distance) IsLines() bool { return d.kind == KindLines }

// IsPixels reports whether d is a pixel amount.
func (d Distance) IsPixels() bool { return d.kind == KindPixels }

// LineCount returns the line count and true when d holds lines.
func (d Distance) LineCount() (int64, bool) {
	if d.kind != KindLines {
		return 0, false
	}
	return d.lines, true
}

// PixelAmount returns a copy of the pixel amount and true when d holds pixels.
func (d Distance) PixelAmount() (*inf.Dec, bool) {
	if d.kind != KindPixels {
		return nil, false
	}
	return new(inf.Dec).Set(d.amount()), true
}

func (d Distance) amount() *inf.Dec {
	if d.pixels == nil {
		return new(inf.Dec)
	}
	return d.pixels
}

// Equal reports whether d and other hold the same variant with numerically
// equal payloads. Pixel amounts are compared by value, so 12.50px equals 12.5px.
func (d Distance) Equal(other Distance) bool {
	if d.kind != other.kind {
		return false
	}
	if d.kind == KindPixels {
		return d.amount().Cmp(other.amount()) == 0
	}
	return d.lines == other.lines
}

// String returns the canonical textual form: the integer for lines, the
// decimal followed by "px" for pixels.
func (d Distance) String() string {
	if d.kind == KindPixels {
		return d.amount().String() + UnitPixels
	}
	return strconv.FormatInt(d.lines, 10)
}

// Encode returns the serialized token: an int64 for lines, the canonical
// string for pixels. Pixels are never encoded as numbers.
func (d Distance) Encode() any {
	if d.kind == KindPixels {
		return d.String()
	}
	return d.lines
}

// MarshalJSON makes the JSON value be the encoded token (not an object wrapper).
func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Encode())
}

// UnmarshalJSON decodes a JSON number as lines, or a JSON string through Parse.
// If the value is neither, the decoder's type error is returned unchanged.
func (d *Distance) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Lines(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML makes the YAML value be the encoded token.
func (d Distance) MarshalYAML() (any, error) {
	return d.Encode(), nil
}

// UnmarshalYAML decodes an !!int scalar as lines and any other scalar
// through Parse. Non-scalar nodes fail with the YAML decoder's type error.
func (d *Distance) UnmarshalYAML(node *yaml.Node) error {
	// Only resolved integers take the native path; yaml.v3 would otherwise
	// truncate floats such as 12.5 into an int64.
	if node.Kind == yaml.ScalarNode && node.ShortTag() == yamlIntTag {
		var n int64
		if err := node.Decode(&n); err == nil {
			*d = Lines(n)
			return nil
		}
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
