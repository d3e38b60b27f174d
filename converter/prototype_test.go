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
	"testing"
	"time"

	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/rtypes"
)

func TestPrototypeResourceTypes(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(&dataset.Dataset{}),
		reflect.TypeOf(&dataset.DatasetView{}),
		reflect.TypeOf(&dataset.ImageDisplay{}),
		reflect.TypeOf(&dataset.Table{}),
	}

	for _, typ := range types {
		got := Prototype(typ)
		if got != rtypes.Long(0) {
			t.Errorf("%v: got %v, want long 0", typ, got)
		}
	}
}

func TestPrototypePrimitives(t *testing.T) {
	cases := []struct {
		value interface{}
		want  rtypes.RType
	}{
		{true, rtypes.Bool(false)},
		{int8(1), rtypes.Int(0)},
		{int16(1), rtypes.Int(0)},
		{int32(1), rtypes.Int(0)},
		{uint8(1), rtypes.Int(0)},
		// widths that can hold more than 31 bits prototype as long
		{int(1), rtypes.Long(0)},
		{uint(1), rtypes.Long(0)},
		{uint32(1), rtypes.Long(0)},
		{int64(1), rtypes.Long(0)},
		{uint64(1), rtypes.Long(0)},
	}

	for _, c := range cases {
		got := Prototype(reflect.TypeOf(c.value))
		if got != c.want {
			t.Errorf("%T: got %v, want %v", c.value, got, c.want)
		}
	}
}

func TestPrototypeFloatsAreNaN(t *testing.T) {
	double, ok := Prototype(reflect.TypeOf(float64(0))).(rtypes.RDouble)
	if !ok || !math.IsNaN(double.Value) {
		t.Errorf("float64: got %v, want NaN double", Prototype(reflect.TypeOf(float64(0))))
	}

	float, ok := Prototype(reflect.TypeOf(float32(0))).(rtypes.RFloat)
	if !ok || !math.IsNaN(float64(float.Value)) {
		t.Errorf("float32: got %v, want NaN float", Prototype(reflect.TypeOf(float32(0))))
	}

	// boxed primitives share the unboxed prototype
	if _, ok := Prototype(reflect.TypeOf((*float64)(nil))).(rtypes.RDouble); !ok {
		t.Error("*float64: expected a double prototype")
	}
}

func TestPrototypeComposites(t *testing.T) {
	if got := Prototype(reflect.TypeOf([]int{})); got.Kind() != rtypes.KindList {
		t.Errorf("slice: got kind %v, want list", got.Kind())
	}
	if got := Prototype(reflect.TypeOf([2]int{})); got.Kind() != rtypes.KindArray {
		t.Errorf("array: got kind %v, want array", got.Kind())
	}
	if got := Prototype(reflect.TypeOf(map[string]bool{})); got.Kind() != rtypes.KindSet {
		t.Errorf("bool-valued map: got kind %v, want set", got.Kind())
	}
	if got := Prototype(reflect.TypeOf(map[string]int{})); got.Kind() != rtypes.KindMap {
		t.Errorf("map: got kind %v, want map", got.Kind())
	}

	// boxed composites share the unboxed prototype, like boxed primitives do
	if got := Prototype(reflect.TypeOf(&[]int{})); got.Kind() != rtypes.KindList {
		t.Errorf("boxed slice: got kind %v, want list", got.Kind())
	}
	if got := Prototype(reflect.TypeOf(&map[string]int{})); got.Kind() != rtypes.KindMap {
		t.Errorf("boxed map: got kind %v, want map", got.Kind())
	}
}

func TestPrototypeFallsBackToString(t *testing.T) {
	unknowns := []reflect.Type{
		reflect.TypeOf(time.Time{}),
		reflect.TypeOf(struct{ X int }{}),
		nil,
	}

	for _, typ := range unknowns {
		if got := Prototype(typ); got != rtypes.String("") {
			t.Errorf("%v: got %v, want empty string prototype", typ, got)
		}
	}
}
