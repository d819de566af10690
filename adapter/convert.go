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

// Package adapter converts errkind instances into transport-neutral shapes:
// protobuf structs for the friendly projection and flat descriptors for logs.
package adapter

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errkind"
	"dirpx.dev/errkind/apis"
)

// ToStruct converts a friendly projection into a protobuf Struct.
//
// The conversion is total: values structpb cannot represent (custom types,
// typed slices, ...) are rendered with fmt.Sprint instead of failing, so a
// projection always reaches the client. A nil map yields an empty Struct.
func ToStruct(m map[string]any) *structpb.Struct {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(m))}
	for k, v := range m {
		s.Fields[k] = toValue(v)
	}
	return s
}

// FromStruct converts a protobuf Struct back into a plain map. Numbers come
// back as float64, as with encoding/json.
func FromStruct(s *structpb.Struct) map[string]any {
	if s == nil {
		return nil
	}
	return s.AsMap()
}

func toValue(v any) *structpb.Value {
	switch t := v.(type) {
	case map[string]any:
		return structpb.NewStructValue(ToStruct(t))
	case []any:
		vals := make([]*structpb.Value, 0, len(t))
		for _, e := range t {
			vals = append(vals, toValue(e))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals})
	case []string:
		vals := make([]*structpb.Value, 0, len(t))
		for _, e := range t {
			vals = append(vals, structpb.NewStringValue(e))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals})
	case float64:
		return numberValue(t)
	case float32:
		return numberValue(float64(t))
	case error:
		return structpb.NewStringValue(t.Error())
	case fmt.Stringer:
		return structpb.NewStringValue(t.String())
	}
	if pv, err := structpb.NewValue(v); err == nil {
		return pv
	}
	return structpb.NewStringValue(fmt.Sprint(v))
}

// numberValue keeps finite floats numeric. NaN and infinities have no JSON
// representation, so they travel as "NaN", "+Inf" and "-Inf".
func numberValue(f float64) *structpb.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return structpb.NewStringValue(fmt.Sprint(f))
	}
	return structpb.NewNumberValue(f)
}

// ToDescriptor summarizes an instance together with its resolved transport
// status. The descriptor is intended for structured logging and tracing.
func ToDescriptor(e *errkind.Instance, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       e.Kind().Name(),
		Lineage:    e.Kind().Lineage().String(),
		Code:       e.Code(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
}
