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

// Package apis defines the public Go-level contracts around errkind errors.
//
// Transport adapters (HTTP, gRPC), loggers and mappers target these small
// interfaces instead of the concrete *errkind.Instance, so they can be reused
// with any error type that can produce a friendly projection.
//
// This package must remain lightweight: interfaces and very small value
// types only.
package apis
