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
	"fmt"

	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
	"github.com/appinteractive/linearmouse/pkg/version"
)

var supportedSchema = version.MustParseVersion(SupportedSchemaVersion)

// SchemaVersion returns the version named by the $schema URL.
// ok is false when the document does not declare a schema.
func (c *Configuration) SchemaVersion() (v version.Version, ok bool, err error) {
	if c.Schema == "" {
		return version.Version{}, false, nil
	}
	v, err = version.FromSchemaURL(c.Schema)
	if err != nil {
		return version.Version{}, true, err
	}
	return v, true, nil
}

// Validate checks the parts of the document that decoding alone does not:
// the declared schema version and the device matchers. All problems are
// reported, joined with errors.Join; each is a *errors.StructuredError.
func (c *Configuration) Validate() error {
	var errs []error

	v, declared, err := c.SchemaVersion()
	switch {
	case err != nil:
		errs = append(errs, lmerrors.WrapWithContext(lmerrors.ErrCodeInvalidValue,
			"invalid schema reference", err, map[string]any{"schema": c.Schema}))
	case declared && !supportedSchema.EqualsOrNewer(v):
		errs = append(errs, lmerrors.NewWithContext(lmerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("schema version %s is newer than supported version %s", v, supportedSchema),
			map[string]any{"schema": c.Schema, "supported": SupportedSchemaVersion}))
	}

	for i, scheme := range c.Schemes {
		for j, cond := range scheme.If {
			if cond.Device == nil {
				continue
			}
			errs = append(errs, cond.Device.validate(i, j)...)
		}
	}

	return errors.Join(errs...)
}

func (m *DeviceMatcher) validate(scheme, condition int) []error {
	var errs []error

	fieldErr := func(field string, value any, msg string) {
		errs = append(errs, lmerrors.NewWithContext(lmerrors.ErrCodeInvalidValue, msg, map[string]any{
			"scheme":    scheme,
			"condition": condition,
			"field":     field,
			"value":     value,
		}))
	}

	if m.Category != nil && !m.Category.IsValid() {
		fieldErr("category", string(*m.Category),
			fmt.Sprintf("unknown device category %q", *m.Category))
	}
	if m.VendorID != nil && (*m.VendorID < 0 || *m.VendorID > MaxDeviceID) {
		fieldErr("vendorID", int(*m.VendorID),
			fmt.Sprintf("vendor id %d is outside 0..%d", int(*m.VendorID), MaxDeviceID))
	}
	if m.ProductID != nil && (*m.ProductID < 0 || *m.ProductID > MaxDeviceID) {
		fieldErr("productID", int(*m.ProductID),
			fmt.Sprintf("product id %d is outside 0..%d", int(*m.ProductID), MaxDeviceID))
	}

	return errs
}
