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

// Package cli implements lmconfig, the command-line tool for linearmouse
// scrolling configuration.
//
// # Commands
//
// parse - decode distance tokens:
//
//	lmconfig parse 3 12.5px [--native] [--format table|json|yaml]
//
// validate - check configuration documents concurrently:
//
//	lmconfig validate --config linearmouse.json [--config cm://ns/name] [--fail-on-error]
//
// format - rewrite a document in canonical form, optionally into a ConfigMap:
//
//	lmconfig format --config linearmouse.json --output cm://default/linearmouse --format yaml
//
// match - print the merged scrolling settings for a device:
//
//	lmconfig match --config linearmouse.json --category mouse --vendor-id 0x046d
//
// # Global Flags
//
//	--log-level, -l   Log level: debug, info, warn, error (env LOG_LEVEL)
//	--kubeconfig, -k  Kubeconfig for cm:// locations (env KUBECONFIG)
//
// Documents may be local paths, http(s) URLs or ConfigMap URIs. Output goes
// to stdout unless --output names a file or a ConfigMap. Logs are written to
// stderr as JSON.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, load failure, rejected tokens, or --fail-on-error with invalid documents
package cli
