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

// Package serializer reads and writes linearmouse configuration documents
// and command output.
//
// # Formats
//
//   - JSON: indented, used by the HTTP API and the default CLI output
//   - YAML: gopkg.in/yaml.v3, two-space indentation
//   - Table: FIELD/VALUE rows of flattened keys; write-only
//
// Table output treats fmt.Stringer values as leaves, so a scrolling distance
// prints as "12.5px" rather than as its internal fields. Keys follow json
// struct tags.
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer func() {
//	    if c, ok := w.(serializer.Closer); ok {
//	        _ = c.Close()
//	    }
//	}()
//	err = w.Serialize(ctx, cfg)
//
// An empty path writes to stdout and cm://namespace/name writes to a
// Kubernetes ConfigMap with server-side apply. The document is stored under
// data["config.json"] or data["config.yaml"] next to data["format"].
//
// # Reading
//
//	cfg, err := serializer.FromFile[config.Configuration](ctx, uri,
//	    serializer.WithKubeconfig(kubeconfig))
//
// Sources are local paths, http(s) URLs fetched with HttpReader, and
// ConfigMap URIs. Decoding errors wrap the underlying unmarshaler errors.
//
// # HTTP Responses
//
//	serializer.RespondJSON(w, http.StatusOK, result)
package serializer
