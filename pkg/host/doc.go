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

// Package host models the host platform that devicekit reads from.
//
// A Snapshot is the one-time result of querying the host for its OS, version,
// idiom, window and screen sizes, pixel ratio, native device identity and
// safe-area insets. Callers take it once at startup (or receive it from a
// mobile client) and pass it explicitly to the platform, device, scaling and
// dimensions packages:
//
//	snap, err := host.Load(ctx, "device.yaml")
//	if err != nil {
//	    return err
//	}
//	info := platform.New(*snap).Info()
//
// Change notifications from the host (dimension changes, keyboard show and
// hide) are modeled with Emitter, a small observer registry whose
// subscriptions are removed explicitly on teardown, and Bus, which routes
// named events to emitters.
package host
