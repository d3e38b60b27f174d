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

package converter

import (
	"fmt"
	"reflect"

	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/rtypes"
	"github.com/stoffelc/imagej-omero/core/utils"
)

// ToImageJ - converts a remote tagged value to a local value of the expected
// type (expected may be nil, meaning "whatever falls out naturally").
// Composite kinds recurse with no expected element type - the remote model
// does not track one. Coercion misses are logged and yield nil; only
// image/table download failures return an error.
func (s *Service) ToImageJ(sess client.Session, value rtypes.RType, expected reflect.Type) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case rtypes.RArray:
		elements, first, err := s.convertElements(sess, v.Values)
		if err != nil {
			return nil, err
		}
		return typedSlice(elements, first), nil
	case rtypes.RList:
		elements, _, err := s.convertElements(sess, v.Values)
		if err != nil {
			return nil, err
		}
		return elements, nil
	case rtypes.RSet:
		elements, _, err := s.convertElements(sess, v.Values)
		if err != nil {
			return nil, err
		}
		set := map[interface{}]bool{}
		utils.AddItemsToSet(elements, set)
		return set, nil
	case rtypes.RMap:
		result := map[string]interface{}{}
		for key, entry := range v.Values {
			converted, err := s.ToImageJ(sess, entry, nil)
			if err != nil {
				return nil, err
			}
			result[key] = converted
		}
		return result, nil
	case rtypes.RBool:
		return s.convert(sess, v.Value, expected)
	case rtypes.RInt:
		return s.convert(sess, v.Value, expected)
	case rtypes.RLong:
		return s.convert(sess, v.Value, expected)
	case rtypes.RFloat:
		return s.convert(sess, v.Value, expected)
	case rtypes.RDouble:
		return s.convert(sess, v.Value, expected)
	case rtypes.RString:
		return s.convert(sess, v.Value, expected)
	case rtypes.RObjectRef:
		// references are conversed about as their id
		return s.convert(sess, v.ID, expected)
	}

	// a kind outside the union - log, never abort the batch
	s.log.Errorf("Unsupported type: %v", value.Kind())
	return nil, nil
}

// convertElements - recursively converts a composite's members, remembering
// the first non-nil result so array reconstruction can pick an element type
func (s *Service) convertElements(sess client.Session, values []rtypes.RType) ([]interface{}, interface{}, error) {
	elements := []interface{}{}
	var first interface{}

	for _, value := range values {
		converted, err := s.ToImageJ(sess, value, nil)
		if err != nil {
			return nil, nil, err
		}
		if first == nil {
			first = converted
		}
		elements = append(elements, converted)
	}
	return elements, first, nil
}

// typedSlice - rebuilds a slice typed on the first non-nil element. If every
// element was nil there is nothing to type it on, so it stays []interface{}.
func typedSlice(elements []interface{}, first interface{}) interface{} {
	if first == nil {
		return elements
	}

	elemType := reflect.TypeOf(first)
	out := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(elements))
	for _, element := range elements {
		if element == nil || !reflect.TypeOf(element).AssignableTo(elemType) {
			// mixed content, fall back to untyped
			return elements
		}
		out = reflect.Append(out, reflect.ValueOf(element))
	}
	return out.Interface()
}

// convert - the inbound coercion step. Unwrapped scalar in, local value of
// the expected type out. Priority order:
//  1. a registered singleton-style object whose string form equals the text
//  2. a numeric id for a resource type, downloaded from the server
//  3. the general coercion fallback - a miss logs and returns nil
func (s *Service) convert(sess client.Session, value interface{}, expected reflect.Type) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	if expected == nil {
		// no type requested, hand back what we have
		return value, nil
	}

	// Known sorts of objects can be requested by name - match the string
	// against each registered instance's natural string form
	if text, ok := value.(string); ok {
		for _, obj := range s.registry.Lookup(expected) {
			if text == fmt.Sprintf("%v", obj) {
				return obj, nil
			}
		}
	}

	// special case for converting an OMERO object id to a resource type
	if id, isNumber := asID(value); isNumber && IsResourceType(expected) {
		return s.downloadResource(sess, id, expected)
	}

	converted := Coerce(value, expected)
	if converted == nil {
		s.log.Errorf("Cannot convert: %T to %v", value, expected)
	}
	return converted, nil
}

// downloadResource - the sole inbound side-effecting path: materialise a
// server-side object locally from its id
func (s *Service) downloadResource(sess client.Session, id int64, expected reflect.Type) (interface{}, error) {
	if expected == tableType {
		credentials := client.MakeCredentials(sess)
		return s.transfer.DownloadTable(credentials, id)
	}

	img, err := s.transfer.DownloadImage(sess, id)
	if err != nil {
		return nil, err
	}

	switch expected {
	case viewType:
		return dataset.NewView(img), nil
	case displayType:
		return dataset.NewDisplay(img), nil
	}
	return img, nil
}

// asID - is the value one of the numeric kinds, widened to an id
func asID(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}
