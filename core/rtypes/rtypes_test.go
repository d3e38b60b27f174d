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
	"fmt"
	"math"
	"reflect"
	"testing"

	"google.golang.org/protobuf/proto"

	protos "github.com/stoffelc/imagej-omero/generated-protos"
)

func Example_string() {
	fmt.Println(Bool(true))
	fmt.Println(Int(42))
	fmt.Println(Long(1234567890123))
	fmt.Println(Double(3.5))
	fmt.Println(String("hello"))
	fmt.Println(List(Int(1), Int(2), nil))
	fmt.Println(Map(map[string]RType{"b": Int(2), "a": Int(1)}))
	fmt.Println(ObjectRef(ObjectImage, 7))

	// Output:
	// true
	// 42
	// 1234567890123
	// 3.5
	// hello
	// list(1, 2, null)
	// map(a=1, b=2)
	// Image:7
}

func TestWireRoundTrip(t *testing.T) {
	values := []RType{
		nil,
		Bool(true),
		Bool(false),
		Int(-5),
		Long(1 << 40),
		Float(1.5),
		Double(-2.25),
		String(""),
		String("with spaces & symbols"),
		Array(Int(1), String("two")),
		List(Bool(true), nil, Double(0.5)),
		Set(String("a"), String("b")),
		Map(map[string]RType{"x": Long(9), "y": nil}),
		ObjectRef(ObjectTable, 31),
		List(List(Int(1)), Map(map[string]RType{"deep": Set(Int(2))})),
	}

	for _, value := range values {
		encoded, err := proto.Marshal(ToProto(value))
		if err != nil {
			t.Errorf("Marshal of %v failed: %v", value, err)
			continue
		}

		w := &protos.WSValue{}
		if err := proto.Unmarshal(encoded, w); err != nil {
			t.Errorf("Unmarshal of %v failed: %v", value, err)
			continue
		}

		if decoded := FromProto(w); !reflect.DeepEqual(decoded, value) {
			t.Errorf("Round trip mismatch: got %#v, want %#v", decoded, value)
		}
	}
}

func TestWireRoundTripNaN(t *testing.T) {
	for _, value := range []RType{Double(math.NaN()), Float(float32(math.NaN()))} {
		encoded, err := proto.Marshal(ToProto(value))
		if err != nil {
			t.Fatalf("Marshal of %v failed: %v", value, err)
		}

		w := &protos.WSValue{}
		if err := proto.Unmarshal(encoded, w); err != nil {
			t.Fatalf("Unmarshal of %v failed: %v", value, err)
		}

		switch d := FromProto(w).(type) {
		case RDouble:
			if !math.IsNaN(d.Value) {
				t.Errorf("Expected NaN double, got %v", d.Value)
			}
		case RFloat:
			if !math.IsNaN(float64(d.Value)) {
				t.Errorf("Expected NaN float, got %v", d.Value)
			}
		default:
			t.Errorf("Unexpected decoded type: %T", d)
		}
	}
}

func TestProtoNullValue(t *testing.T) {
	if got := FromProto(nil); got != nil {
		t.Errorf("Got %v for a missing message, want nil", got)
	}
	if got := FromProto(&protos.WSValue{}); got != nil {
		t.Errorf("Got %v for an unset variant, want nil", got)
	}
	if w := ToProto(nil); w == nil || w.Value != nil {
		t.Errorf("Got %v encoding nil, want an empty message", w)
	}
}

func TestKindStrings(t *testing.T) {
	expected := map[Kind]string{
		KindBool:      "bool",
		KindString:    "string",
		KindObjectRef: "objectref",
	}
	for kind, want := range expected {
		if got := kind.String(); got != want {
			t.Errorf("Kind %v: got %v, want %v", int(kind), got, want)
		}
	}
}
