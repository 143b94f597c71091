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

// Matches reports whether every field set in m equals the device's.
func (m *DeviceMatcher) Matches(d Device) bool {
	if m == nil {
		return true
	}
	if m.VendorID != nil && *m.VendorID != d.VendorID {
		return false
	}
	if m.ProductID != nil && *m.ProductID != d.ProductID {
		return false
	}
	if m.ProductName != nil && *m.ProductName != d.ProductName {
		return false
	}
	if m.SerialNumber != nil && *m.SerialNumber != d.SerialNumber {
		return false
	}
	if m.Category != nil && *m.Category != d.Category {
		return false
	}
	return true
}

// Matches reports whether the condition selects d.
func (c Condition) Matches(d Device) bool {
	return c.Device.Matches(d)
}

// Matches reports whether any condition selects d. A scheme without
// conditions matches every device.
func (s Scheme) Matches(d Device) bool {
	if len(s.If) == 0 {
		return true
	}
	for _, c := range s.If {
		if c.Matches(d) {
			return true
		}
	}
	return false
}

// Merge returns s overlaid with other: each setting other defines wins,
// per direction. The conditions of s are kept.
func (s Scheme) Merge(other Scheme) Scheme {
	out := Scheme{If: s.If, Scrolling: s.Scrolling}
	if other.Scrolling == nil {
		return out
	}

	var base Scrolling
	if s.Scrolling != nil {
		base = *s.Scrolling
	}
	out.Scrolling = &Scrolling{
		Reverse:  base.Reverse.Merge(other.Scrolling.Reverse),
		Distance: base.Distance.Merge(other.Scrolling.Distance),
	}
	return out
}

// Matching merges, in document order, every scheme that matches d.
// The result has no conditions and is empty when nothing matches.
func (c *Configuration) Matching(d Device) Scheme {
	var merged Scheme
	for _, s := range c.Schemes {
		if s.Matches(d) {
			merged = merged.Merge(Scheme{Scrolling: s.Scrolling})
		}
	}
	return merged
}
