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

	lmerrors "github.com/appinteractive/linearmouse/pkg/errors"
)

// ValidationResult reports the outcome of loading and validating one document.
type ValidationResult struct {
	Source        string            `json:"source,omitempty" yaml:"source,omitempty"`
	Valid         bool              `json:"valid" yaml:"valid"`
	SchemaVersion string            `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	Schemes       int               `json:"schemes" yaml:"schemes"`
	Issues        []ValidationIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// ValidationIssue is a single problem found in a document.
type ValidationIssue struct {
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Context map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewValidationResult describes cfg and err, where err is the error from
// loading or validating it. cfg may be nil when loading failed.
func NewValidationResult(source string, cfg *Configuration, err error) ValidationResult {
	res := ValidationResult{Source: source, Valid: err == nil}

	if cfg != nil {
		res.Schemes = len(cfg.Schemes)
		if v, ok, verr := cfg.SchemaVersion(); ok && verr == nil {
			res.SchemaVersion = v.String()
		}
	}

	for _, e := range flatten(err) {
		res.Issues = append(res.Issues, issueFrom(e))
	}
	return res
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

func issueFrom(err error) ValidationIssue {
	var se *lmerrors.StructuredError
	if errors.As(err, &se) {
		msg := err.Error()
		if error(se) == err {
			msg = se.Message
			if se.Cause != nil {
				msg += ": " + se.Cause.Error()
			}
		}
		return ValidationIssue{Code: string(se.Code), Message: msg, Context: se.Context}
	}
	return ValidationIssue{Code: string(lmerrors.ErrCodeInvalidRequest), Message: err.Error()}
}
