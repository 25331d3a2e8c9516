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

package version

import "slices"

// Sort orders version strings from oldest to newest in place.
// Strings that parse to the same Version keep their relative order.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// Max returns the newest of the given version strings, or "" when none are
// given. When several strings parse to the same Version the first one wins.
func Max(versions ...string) string {
	if len(versions) == 0 {
		return ""
	}
	newest := versions[0]
	for _, v := range versions[1:] {
		if Compare(v, newest) > 0 {
			newest = v
		}
	}
	return newest
}
