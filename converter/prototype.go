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
	"math"
	"reflect"

	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/rtypes"
)

var (
	datasetType = reflect.TypeOf(&dataset.Dataset{})
	viewType    = reflect.TypeOf(&dataset.DatasetView{})
	displayType = reflect.TypeOf(&dataset.ImageDisplay{})
	tableType   = reflect.TypeOf(&dataset.Table{})
)

// IsImageType - true for the three image resource types
func IsImageType(t reflect.Type) bool {
	return t == datasetType || t == viewType || t == displayType
}

// IsResourceType - true for types whose remote representation is an object id
func IsResourceType(t reflect.Type) bool {
	return IsImageType(t) || t == tableType
}

// Prototype - given a local type, returns an empty/sentinel instance of the
// remote value kind a parameter of that type expects. Pure and total: unknown
// types fall through to a string prototype, there is no error path.
//
// The check order matters. Resource types are pointers to structs, so they
// must be recognised before the pointer unwrap below would misfile them.
func Prototype(t reflect.Type) rtypes.RType {
	if t == nil {
		return rtypes.String("")
	}

	// image and table types are spoken about as object ids
	if IsResourceType(t) {
		return rtypes.Long(0)
	}

	// primitive types - unwrap the boxed (pointer) form first so *float64 and
	// float64 produce the same prototype
	saneType := t
	if saneType.Kind() == reflect.Ptr {
		saneType = saneType.Elem()
	}
	switch saneType.Kind() {
	case reflect.Bool:
		return rtypes.Bool(false)
	case reflect.Float64:
		return rtypes.Double(math.NaN())
	case reflect.Float32:
		return rtypes.Float(float32(math.NaN()))
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16:
		return rtypes.Int(0)
	case reflect.Int, reflect.Uint, reflect.Uint32,
		reflect.Int64, reflect.Uint64:
		// widths that can exceed a tagged int take the long kind, matching
		// how values of these types convert
		return rtypes.Long(0)
	}

	// data structure types
	switch saneType.Kind() {
	case reflect.Array:
		return rtypes.Array()
	case reflect.Slice:
		return rtypes.List()
	case reflect.Map:
		// map[K]bool is the Go set convention, any other map is a mapping
		if saneType.Elem().Kind() == reflect.Bool {
			return rtypes.Set()
		}
		return rtypes.Map(nil)
	}

	// default case: convert to string
	// works for many types, including but not limited to:
	// - rune
	// - time.Time
	// - anything with a String() method
	return rtypes.String("")
}
