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
	"reflect"
)

// ObjectRegistry - lookup of live singleton-style instances by type. OMERO
// can only carry such objects as their string form, so inbound conversion
// matches the string against each registered instance's natural string form
// to recover the live object.
type ObjectRegistry interface {
	Lookup(t reflect.Type) []interface{}
}

// SimpleRegistry - ObjectRegistry over a plain slice
type SimpleRegistry struct {
	objects []interface{}
}

func (r *SimpleRegistry) Register(obj interface{}) {
	r.objects = append(r.objects, obj)
}

func (r *SimpleRegistry) Lookup(t reflect.Type) []interface{} {
	result := []interface{}{}
	for _, obj := range r.objects {
		objType := reflect.TypeOf(obj)
		if objType == t || (t.Kind() == reflect.Interface && objType.Implements(t)) {
			result = append(result, obj)
		}
	}
	return result
}
