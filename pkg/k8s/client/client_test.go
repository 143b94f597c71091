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

package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/rest"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

func resetShared(t *testing.T) {
	t.Helper()
	reset := func() {
		clientOnce = sync.Once{}
		cachedClient = nil
		cachedConfig = nil
		clientErr = nil
	}
	reset()
	t.Cleanup(reset)
}

func TestBuildKubeClient_InvalidPaths(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
	}{
		{
			name:          "explicit invalid path",
			kubeconfigArg: "/nonexistent/path/to/kubeconfig",
		},
		{
			name:          "env var with invalid path",
			kubeconfigEnv: "/nonexistent/env/kubeconfig",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvVarKubeconfig, tt.kubeconfigEnv)

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to build kube config")
		})
	}
}

func TestBuildKubeClient_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte("invalid yaml content"), 0600))

	_, _, err := BuildKubeClient(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestBuildKubeClient_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	content := `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: test
  context:
    cluster: test
    user: test
current-context: test
users:
- name: test
  user:
    token: abc
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cs, cfg, err := BuildKubeClient(path)
	require.NoError(t, err)
	assert.NotNil(t, cs)
	assert.Equal(t, "https://127.0.0.1:6443", cfg.Host)
	assert.Equal(t, "bearer-token", AuthMethod(cfg))
}

func TestResolveKubeconfig(t *testing.T) {
	t.Setenv(EnvVarKubeconfig, "/from/env")
	assert.Equal(t, "/explicit", resolveKubeconfig("/explicit"))
	assert.Equal(t, "/from/env", resolveKubeconfig(""))
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetShared(t)

	client1, config1, err1 := GetKubeClient()
	client2, config2, err2 := GetKubeClient()

	// nolint:errorlint // pointer equality is the point
	assert.True(t, err1 == err2, "same error instance expected")
	assert.Equal(t, client1, client2)
	assert.True(t, config1 == config2, "same config instance expected")
}

func TestGetKubeClient_Concurrent(t *testing.T) {
	resetShared(t)

	const numGoroutines = 10
	results := make(chan bool, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			c, _, _ := GetKubeClient()
			results <- c != nil
		}()
	}

	successes := 0
	for i := 0; i < numGoroutines; i++ {
		if <-results {
			successes++
		}
	}
	assert.True(t, successes == 0 || successes == numGoroutines,
		"inconsistent results: %d of %d succeeded", successes, numGoroutines)
}

func TestForKubeconfig_Explicit(t *testing.T) {
	_, _, err := ForKubeconfig("/nonexistent/kubeconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/kubeconfig")
}

func TestAuthMethod(t *testing.T) {
	tests := []struct {
		name string
		cfg  *rest.Config
		want string
	}{
		{"nil", nil, "none"},
		{"provider", &rest.Config{AuthProvider: &clientcmdapi.AuthProviderConfig{Name: "oidc"}}, "oidc"},
		{"exec", &rest.Config{ExecProvider: &clientcmdapi.ExecConfig{Command: "aws"}}, "exec"},
		{"token", &rest.Config{BearerToken: "t"}, "bearer-token"},
		{"cert", &rest.Config{TLSClientConfig: rest.TLSClientConfig{CertData: []byte("c")}}, "cert"},
		{"default", &rest.Config{}, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthMethod(tt.cfg))
		})
	}
}
