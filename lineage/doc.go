/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package lineage describes where a Kind sits in its hierarchy.
//
// A Path lists Kind names from the outermost user-defined ancestor down to
// the Kind itself, e.g. ["ApiError", "NotFoundError"]. The root Kind is
// implicit and never part of a Path.
//
// A Pattern is the dot-separated textual form used by rules that target a
// whole branch of the hierarchy, e.g.:
//
//   - "ApiError"
//   - "ApiError.NotFoundError"
//   - "ApiError.*.Timeout"
//
// The "*" segment matches exactly one Kind name.
package lineage
