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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/appinteractive/linearmouse/pkg/defaults"
)

const (
	// ConfigMapDataPrefix is the data key prefix; the document lives under
	// config.json, config.yaml or config.txt.
	ConfigMapDataPrefix = "config"

	configMapFormatKey    = "format"
	configMapTimestampKey = "timestamp"
	configMapFieldManager = "lmconfig"
)

func dataKey(format Format) string {
	return ConfigMapDataPrefix + "." + format.Extension()
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap using
// server-side apply, so the ConfigMap is created or updated atomically.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	access    *options
}

// NewConfigMapWriter creates a writer for namespace/name. Unknown formats
// default to JSON.
func NewConfigMapWriter(namespace, name string, format Format, opts ...Option) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalize(format),
		access:    newOptions(opts),
	}
}

// Serialize stores v under data["config.<ext>"] together with the format
// and the write timestamp.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}

	c, err := w.access.kubeClient()
	if err != nil {
		return err
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "linearmouse",
			"app.kubernetes.io/component":  "config",
			"app.kubernetes.io/managed-by": configMapFieldManager,
		}).
		WithData(map[string]string{
			dataKey(w.format):     string(content),
			configMapFormatKey:    string(w.format),
			configMapTimestampKey: w.access.now().UTC().Format(time.RFC3339),
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format,
		"size", len(content))

	_, err = c.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op; it exists to satisfy Closer.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// readConfigMap returns the stored document and its format. The key named by
// data["format"] wins; otherwise config.yaml then config.json are tried.
func readConfigMap(ctx context.Context, o *options, namespace, name string) ([]byte, Format, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	c, err := o.kubeClient()
	if err != nil {
		return nil, "", err
	}

	cm, err := c.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	candidates := []Format{FormatYAML, FormatJSON}
	if f := Format(cm.Data[configMapFormatKey]); f == FormatJSON || f == FormatYAML {
		candidates = append([]Format{f}, candidates...)
	}
	for _, f := range candidates {
		if content, ok := cm.Data[dataKey(f)]; ok {
			slog.Debug("reading from ConfigMap",
				"namespace", namespace,
				"name", name,
				"format", f,
				"size", len(content))
			return []byte(content), f, nil
		}
	}

	return nil, "", fmt.Errorf("ConfigMap %s/%s has no %s.json or %s.yaml data",
		namespace, name, ConfigMapDataPrefix, ConfigMapDataPrefix)
}

// ParseConfigMapURI splits cm://namespace/name into its components.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	ns, n, ok := strings.Cut(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if !ok {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(ns)
	name = strings.TrimSpace(n)
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
