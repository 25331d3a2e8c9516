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

// Package platform reports what kind of host a snapshot describes and
// provides platform-conditional selection and version gates.
//
// A Manager is built once from a host.Snapshot and is safe for concurrent
// use:
//
//	m := platform.New(snap)
//	if m.IsAtLeastIOS("15.0") {
//	    // ...
//	}
//	pad := platform.StyleProperty(m, 12.0, 8.0)
//
// On iOS the major and minor versions come from the dotted version string.
// On Android the version is an API level and the minor version is 0.
//
// Select and StyleProperty are package functions because Go methods cannot
// take type parameters.
package platform
