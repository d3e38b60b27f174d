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
	"strconv"
)

// Coerce - general purpose "convert value to target type" fallback. Returns
// nil on failure, never panics or errors - callers decide whether a miss is
// fatal. Handles: assignability, numeric kind changes (int to float etc),
// string to number/bool parsing, and anything to string.
func Coerce(value interface{}, target reflect.Type) interface{} {
	if value == nil || target == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(target) {
		return value
	}

	// Boxed form: coerce to the element type, return a pointer to it
	if target.Kind() == reflect.Ptr {
		inner := Coerce(value, target.Elem())
		if inner == nil {
			return nil
		}
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(reflect.ValueOf(inner))
		return ptr.Interface()
	}

	// Unwrap boxed sources
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return Coerce(rv.Elem().Interface(), target)
	}

	if isNumericKind(rv.Kind()) && isNumericKind(target.Kind()) {
		return rv.Convert(target).Interface()
	}

	if rv.Kind() == reflect.String {
		s := rv.String()
		switch target.Kind() {
		case reflect.Bool:
			if b, err := strconv.ParseBool(s); err == nil {
				return coerceKind(reflect.ValueOf(b), target)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return coerceKind(reflect.ValueOf(n), target)
			}
		case reflect.Float32, reflect.Float64:
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return coerceKind(reflect.ValueOf(f), target)
			}
		case reflect.String:
			return coerceKind(rv, target)
		}
		return nil
	}

	if target.Kind() == reflect.String {
		return coerceKind(reflect.ValueOf(fmt.Sprintf("%v", value)), target)
	}

	if rv.Kind() == reflect.Bool && target.Kind() == reflect.Bool {
		return coerceKind(rv, target)
	}

	return nil
}

// coerceKind - converts across named types of the same kind, eg int64 to a
// "type ImageID int64"
func coerceKind(rv reflect.Value, target reflect.Type) interface{} {
	if !rv.Type().ConvertibleTo(target) {
		return nil
	}
	return rv.Convert(target).Interface()
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
