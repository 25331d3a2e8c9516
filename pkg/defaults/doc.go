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

// Package defaults provides centralized configuration constants for devicekit.
//
// This package defines timeout values for the HTTP server and the remote
// snapshot reader, plus the layout baseline, breakpoints and display insets
// used by the device, notch, scaling and dimensions packages. Centralizing
// these values ensures consistency and makes tuning easier.
//
// # Usage
//
//	import "github.com/NVIDIA/devicekit/pkg/defaults"
//
//	ratio := window.Width / defaults.BaseWidth
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProfileHandlerTimeout)
//	defer cancel()
package defaults
