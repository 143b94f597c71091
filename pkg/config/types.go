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
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appinteractive/linearmouse/pkg/distance"
)

const (
	// SchemaURLPrefix is the location of the published configuration schemas.
	SchemaURLPrefix = "https://app.linearmouse.org/schema/"

	// SupportedSchemaVersion is the newest schema this package understands.
	SupportedSchemaVersion = "0.7.2"

	// MaxDeviceID bounds USB vendor and product identifiers.
	MaxDeviceID = 0xFFFF
)

// Configuration is a linearmouse configuration document.
type Configuration struct {
	Schema  string   `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Schemes []Scheme `json:"schemes,omitempty" yaml:"schemes,omitempty"`
}

// Scheme applies its settings to every device matched by If.
// A scheme without conditions applies to all devices.
type Scheme struct {
	If        Conditions `json:"if,omitempty" yaml:"if,omitempty"`
	Scrolling *Scrolling `json:"scrolling,omitempty" yaml:"scrolling,omitempty"`
}

// Scrolling holds the per-direction scrolling settings.
type Scrolling struct {
	Reverse  *Bidirectional[bool]              `json:"reverse,omitempty" yaml:"reverse,omitempty"`
	Distance *Bidirectional[distance.Distance] `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Condition restricts a scheme to matching devices.
type Condition struct {
	Device *DeviceMatcher `json:"device,omitempty" yaml:"device,omitempty"`
}

// DeviceMatcher selects devices by any combination of fields. Unset fields
// match every device.
type DeviceMatcher struct {
	VendorID     *DeviceID `json:"vendorID,omitempty" yaml:"vendorID,omitempty"`
	ProductID    *DeviceID `json:"productID,omitempty" yaml:"productID,omitempty"`
	ProductName  *string   `json:"productName,omitempty" yaml:"productName,omitempty"`
	SerialNumber *string   `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	Category     *Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// Device describes a connected pointing device.
type Device struct {
	VendorID     DeviceID `json:"vendorID" yaml:"vendorID"`
	ProductID    DeviceID `json:"productID" yaml:"productID"`
	ProductName  string   `json:"productName,omitempty" yaml:"productName,omitempty"`
	SerialNumber string   `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	Category     Category `json:"category" yaml:"category"`
}

// Category is the kind of pointing device.
type Category string

const (
	CategoryMouse    Category = "mouse"
	CategoryTrackpad Category = "trackpad"
)

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	return c == CategoryMouse || c == CategoryTrackpad
}

// ParseCategory converts a user supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown device category %q, supported: %s, %s", s, CategoryMouse, CategoryTrackpad)
	}
	return c, nil
}

// DeviceID is a USB vendor or product identifier. It decodes from a number
// or from a string in any base accepted by strconv ("0x046d", "1133") and
// encodes as a hexadecimal string.
type DeviceID int

// ParseDeviceID parses a decimal, hexadecimal (0x) or octal (0o) identifier.
func ParseDeviceID(s string) (DeviceID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid device id %q: %w", s, err)
	}
	return DeviceID(n), nil
}

func (id DeviceID) String() string {
	return fmt.Sprintf("0x%04x", int(id))
}

func (id DeviceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *DeviceID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = DeviceID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseDeviceID(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id DeviceID) MarshalYAML() (any, error) {
	return id.String(), nil
}

func (id *DeviceID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseDeviceID(s)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Conditions is the "if" clause of a scheme. It decodes from a single
// condition object or from a list of them and always encodes as a list.
type Conditions []Condition

func (c *Conditions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Condition
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*c = Conditions{single}
		return nil
	}

	var list []Condition
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

func (c *Conditions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var single Condition
		if err := node.Decode(&single); err != nil {
			return err
		}
		*c = Conditions{single}
		return nil
	}

	var list []Condition
	if err := node.Decode(&list); err != nil {
		return err
	}
	*c = list
	return nil
}
