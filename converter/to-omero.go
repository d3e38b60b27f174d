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
)

// ToOMERO - converts a local value to its remote tagged form. Total and free
// of side effects: composites are walked recursively, scalars map to their
// tagged kind, and anything else falls back to its string form. Resource
// types cannot be expressed without a session - use ToOMEROSession for those.
func (s *Service) ToOMERO(value interface{}) rtypes.RType {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		// boxed primitives convert as their element, other pointers fall
		// through to the string default below
		if rv.Type().Elem().Kind() != reflect.Struct {
			return s.ToOMERO(rv.Elem().Interface())
		}
	case reflect.Array:
		val := []rtypes.RType{}
		for i := 0; i < rv.Len(); i++ {
			val = append(val, s.ToOMERO(rv.Index(i).Interface()))
		}
		return rtypes.Array(val...)
	case reflect.Slice:
		val := []rtypes.RType{}
		for i := 0; i < rv.Len(); i++ {
			val = append(val, s.ToOMERO(rv.Index(i).Interface()))
		}
		return rtypes.List(val...)
	case reflect.Map:
		if rv.Type().Elem().Kind() == reflect.Bool {
			// Go set convention: members are the keys flagged true
			val := []rtypes.RType{}
			iter := rv.MapRange()
			for iter.Next() {
				if iter.Value().Bool() {
					val = append(val, s.ToOMERO(iter.Key().Interface()))
				}
			}
			return rtypes.Set(val...)
		}

		// NOTE: keys are stringified via their natural print form. Two keys
		// printing identically collide, last write wins.
		val := map[string]rtypes.RType{}
		iter := rv.MapRange()
		for iter.Next() {
			val[fmt.Sprintf("%v", iter.Key().Interface())] = s.ToOMERO(iter.Value().Interface())
		}
		return rtypes.Map(val)
	}

	// try the direct scalar mappings
	if tagged := taggedScalar(value); tagged != nil {
		return tagged
	}

	// default case: convert to string
	return rtypes.String(fmt.Sprintf("%v", value))
}

// taggedScalar - the generic primitive-to-tagged-value coercion, nil if the
// value has no direct tagged kind
func taggedScalar(value interface{}) rtypes.RType {
	switch v := value.(type) {
	case bool:
		return rtypes.Bool(v)
	case int:
		// platform-width, may not fit a tagged int, so it rides the long kind
		return rtypes.Long(int64(v))
	case int8:
		return rtypes.Int(int32(v))
	case int16:
		return rtypes.Int(int32(v))
	case int32:
		return rtypes.Int(v)
	case int64:
		return rtypes.Long(v)
	case uint:
		return rtypes.Long(int64(v))
	case uint8:
		return rtypes.Int(int32(v))
	case uint16:
		return rtypes.Int(int32(v))
	case uint32:
		return rtypes.Long(int64(v))
	case uint64:
		return rtypes.Long(int64(v))
	case float32:
		return rtypes.Float(v)
	case float64:
		return rtypes.Double(v)
	case string:
		return rtypes.String(v)
	}
	return nil
}

// ToOMEROSession - like ToOMERO, but threads a live session so resource
// values can be expressed: images and tables are uploaded and replaced by
// their new server-side id. Upload failures propagate - a script output
// silently referencing a missing image would corrupt the caller's result.
func (s *Service) ToOMEROSession(sess client.Session, value interface{}) (rtypes.RType, error) {
	switch v := value.(type) {
	case *dataset.Dataset:
		if v == nil {
			return nil, nil
		}
		// upload image to OMERO, referring to it by the resultant id
		imageID, err := s.transfer.UploadImage(sess, v)
		if err != nil {
			return nil, err
		}
		return s.ToOMEROSession(sess, imageID)
	case *dataset.DatasetView:
		if v == nil {
			return nil, nil
		}
		return s.ToOMEROSession(sess, v.Data)
	case *dataset.ImageDisplay:
		if v == nil {
			return nil, nil
		}
		return s.ToOMEROSession(sess, v.ActiveDataset())
	case *dataset.Table:
		if v == nil {
			return nil, nil
		}
		cred := client.MakeCredentials(sess)
		tableID, err := s.transfer.UploadTable(cred, "table", v)
		if err != nil {
			return nil, err
		}
		return s.ToOMEROSession(sess, tableID)
	}

	return s.ToOMERO(value), nil
}
