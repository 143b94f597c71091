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

// Package client provides the Kubernetes client used for ConfigMap-backed
// linearmouse configuration storage.
//
// The shared client is built once with sync.Once from automatic discovery
// (KUBECONFIG, ~/.kube/config, then the in-cluster service account):
//
//	clientset, config, err := client.GetKubeClient()
//
// ForKubeconfig returns the shared client for an empty path and a new one
// otherwise, which is what the --kubeconfig CLI flag needs:
//
//	clientset, _, err := client.ForKubeconfig(cmd.String("kubeconfig"))
//	cm, err := clientset.CoreV1().ConfigMaps("default").Get(ctx, "linearmouse", metav1.GetOptions{})
//
// Tests inject k8s.io/client-go/kubernetes/fake clients through the
// Interface alias instead of building real ones.
package client
