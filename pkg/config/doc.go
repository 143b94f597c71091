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

// Package config models the scrolling part of a linearmouse configuration
// document and the operations the tools perform on it.
//
// # Document
//
//	{
//	  "$schema": "https://app.linearmouse.org/schema/0.7.2",
//	  "schemes": [
//	    {
//	      "if": {"device": {"category": "mouse", "vendorID": "0x046d"}},
//	      "scrolling": {
//	        "reverse": {"vertical": true},
//	        "distance": {"vertical": "12.5px", "horizontal": 3}
//	      }
//	    }
//	  ]
//	}
//
// Settings that differ per scroll direction are Bidirectional values: a
// single value applies to both directions, an object sets each one. The
// "if" clause accepts one condition or a list. Unknown fields are ignored.
//
// # Loading and Validation
//
//	cfg, err := config.Load(ctx, "cm://default/linearmouse",
//	    serializer.WithKubeconfig(kubeconfig))
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    // errors.Join of *errors.StructuredError values
//	}
//
// Distance tokens are checked while decoding, so an invalid distance fails
// Load with an INVALID_VALUE error.
//
// # Matching
//
// Matching merges every scheme whose conditions select a device, in
// document order, with later schemes overriding earlier ones per direction:
//
//	s := cfg.Matching(config.Device{VendorID: 0x046d, Category: config.CategoryMouse})
//
// # HTTP
//
// HandleDistance and HandleValidate are mounted by pkg/api.
package config
