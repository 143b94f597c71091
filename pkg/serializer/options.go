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
	"fmt"
	"log/slog"
	"time"

	"github.com/appinteractive/linearmouse/pkg/k8s/client"
)

// Option configures how documents are fetched and stored.
type Option func(*options)

type options struct {
	client     client.Interface
	kubeconfig string
	http       *HttpReader
	now        func() time.Time
}

// WithKubeClient injects the Kubernetes client, bypassing kubeconfig discovery.
func WithKubeClient(c client.Interface) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithKubeconfig selects an explicit kubeconfig file for cm:// locations.
func WithKubeconfig(path string) Option {
	return func(o *options) {
		o.kubeconfig = path
	}
}

// WithHttpReader replaces the reader used for http(s) locations.
func WithHttpReader(r *HttpReader) Option {
	return func(o *options) {
		o.http = r
	}
}

func newOptions(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) kubeClient() (client.Interface, error) {
	if o.client != nil {
		return o.client, nil
	}
	c, cfg, err := client.ForKubeconfig(o.kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	slog.Debug("kubernetes client ready", "auth_method", client.AuthMethod(cfg))
	o.client = c
	return c, nil
}

func (o *options) httpReader() *HttpReader {
	if o.http == nil {
		o.http = NewHttpReader()
	}
	return o.http
}
