// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package rtypes

import (
	"github.com/stoffelc/imagej-omero/core/utils"
	protos "github.com/stoffelc/imagej-omero/generated-protos"
)

// ToProto - builds the wire message for an RType. nil (the null value)
// becomes a WSValue with no variant set.
func ToProto(v RType) *protos.WSValue {
	if v == nil {
		return &protos.WSValue{}
	}

	switch val := v.(type) {
	case RBool:
		return &protos.WSValue{Value: &protos.WSValue_BoolValue{BoolValue: val.Value}}
	case RInt:
		return &protos.WSValue{Value: &protos.WSValue_IntValue{IntValue: val.Value}}
	case RLong:
		return &protos.WSValue{Value: &protos.WSValue_LongValue{LongValue: val.Value}}
	case RFloat:
		return &protos.WSValue{Value: &protos.WSValue_FloatValue{FloatValue: val.Value}}
	case RDouble:
		return &protos.WSValue{Value: &protos.WSValue_DoubleValue{DoubleValue: val.Value}}
	case RString:
		return &protos.WSValue{Value: &protos.WSValue_StringValue{StringValue: val.Value}}
	case RArray:
		return &protos.WSValue{Value: &protos.WSValue_ArrayValue{ArrayValue: itemsToProto(val.Values)}}
	case RList:
		return &protos.WSValue{Value: &protos.WSValue_ListValue{ListValue: itemsToProto(val.Values)}}
	case RSet:
		return &protos.WSValue{Value: &protos.WSValue_SetValue{SetValue: itemsToProto(val.Values)}}
	case RMap:
		entries := []*protos.WSMapEntry{}
		for _, key := range utils.GetOrderedMapKeys(val.Values) {
			entries = append(entries, &protos.WSMapEntry{Key: key, Value: ToProto(val.Values[key])})
		}
		return &protos.WSValue{Value: &protos.WSValue_MapValue{MapValue: &protos.WSValueMap{Entries: entries}}}
	case RObjectRef:
		ref := &protos.WSObjectRef{Kind: string(val.ObjectKind), Id: val.ID}
		return &protos.WSValue{Value: &protos.WSValue_ObjectRef{ObjectRef: ref}}
	}

	// The switch is exhaustive over the sealed variants
	return &protos.WSValue{}
}

// FromProto - the inverse of ToProto. An unset variant is the null value.
func FromProto(w *protos.WSValue) RType {
	if w == nil {
		return nil
	}

	switch val := w.Value.(type) {
	case *protos.WSValue_BoolValue:
		return Bool(val.BoolValue)
	case *protos.WSValue_IntValue:
		return Int(val.IntValue)
	case *protos.WSValue_LongValue:
		return Long(val.LongValue)
	case *protos.WSValue_FloatValue:
		return Float(val.FloatValue)
	case *protos.WSValue_DoubleValue:
		return Double(val.DoubleValue)
	case *protos.WSValue_StringValue:
		return String(val.StringValue)
	case *protos.WSValue_ArrayValue:
		return Array(itemsFromProto(val.ArrayValue)...)
	case *protos.WSValue_ListValue:
		return List(itemsFromProto(val.ListValue)...)
	case *protos.WSValue_SetValue:
		return Set(itemsFromProto(val.SetValue)...)
	case *protos.WSValue_MapValue:
		values := map[string]RType{}
		for _, entry := range val.MapValue.GetEntries() {
			values[entry.GetKey()] = FromProto(entry.GetValue())
		}
		return Map(values)
	case *protos.WSValue_ObjectRef:
		return ObjectRef(ObjectKind(val.ObjectRef.GetKind()), val.ObjectRef.GetId())
	}

	return nil
}

func itemsToProto(values []RType) *protos.WSValueList {
	items := []*protos.WSValue{}
	for _, item := range values {
		items = append(items, ToProto(item))
	}
	return &protos.WSValueList{Items: items}
}

func itemsFromProto(list *protos.WSValueList) []RType {
	items := []RType{}
	for _, item := range list.GetItems() {
		items = append(items, FromProto(item))
	}
	return items
}
