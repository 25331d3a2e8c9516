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

// Package version parses dotted version strings into a (major, minor, patch)
// triple and orders them.
//
// Parsing is permissive and never fails. Strings of the form "N", "N.N" or
// "N.N.N" are split on '.', and each of the first three segments is read as
// a non-negative integer. A missing, empty or non-numeric segment reads as 0:
//
//	version.Parse("1.2.3")  // 1.2.3
//	version.Parse("5")      // 5.0.0
//	version.Parse("12.x")   // 12.0.0
//	version.Parse("")       // 0.0.0
//	version.Parse("a.b.c")  // 0.0.0
//
// A segment is read from its leading digits, so build suffixes such as
// "3-beta" contribute their number ("1.2.3-beta" is 1.2.3). A degraded string
// compares as very old rather than producing an error. Callers that need to
// know whether a string was degraded can check it with Validate, which never
// influences Parse.
//
// # Comparison
//
//	version.Compare("2.0.0", "1.9.9")  // 1
//	version.Compare("1.2.0", "1.3.0")  // -1
//	version.IsAtLeast("12.0", "12.0")  // true: current 12.0 satisfies 12.0
//	version.IsAtLeast("12.1", "12.0")  // false
//
// Compare is a total order over (major, minor, patch). All functions are pure
// and safe for concurrent use.
package version
