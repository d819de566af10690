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

// Package catalog declares errkind Kind trees from configuration files.
//
// A catalog is a YAML (or JSON) document listing Kinds. Children nest under
// their parent, or name an earlier Kind through "parent":
//
//	kinds:
//	  - name: ApiError
//	    code: 5005
//	    statusCode: 500
//	    message: api error
//	    exclude: [qs]
//	    children:
//	      - name: NotFoundError
//	        code: 4004
//	        statusCode: 404
//	        message: not found
//	  - name: ConflictError
//	    parent: ApiError
//	    statusCode: 409
//	    exclude: etag,version
//
// Every key other than name, parent, exclude and children is an attribute
// default. Methods and constructors are code; they cannot be declared in a
// catalog, and the reserved keys are dropped like in errkind.Define.
//
// Kind names must be unique within a catalog so they can be looked up, and
// may not contain ".".
package catalog
