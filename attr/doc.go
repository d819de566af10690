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

// Package attr names the attribute keys errkind instances understand.
//
// An attribute is a key/value default declared on a Kind and copied onto every
// instance of that Kind. A handful of keys are well known (code, statusCode,
// message, description) and get typed accessors on the instance; any other
// non-empty key is a custom attribute.
//
// Some keys are structural: they describe how a Kind is built (its
// constructor, its methods, its exclusion list) rather than data carried by
// an error. These reserved keys are never copied onto instances and never
// appear in a friendly projection, whatever the declaration says.
package attr
