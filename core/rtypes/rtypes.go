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

// The OMERO RType tagged value union. OMERO scripts communicate parameter
// values as a closed set of tagged kinds: bool, int, long, float, double,
// string, array, list, set, string-keyed map and object reference. Each
// variant here carries its own typed accessor, so consumers switch on the
// concrete type rather than reflecting for a getValue method.
//
// A nil RType represents OMERO's null.
package rtypes

import (
	"fmt"
	"strings"

	"github.com/stoffelc/imagej-omero/core/utils"
)

// Kind - which variant of the union an RType is
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindArray
	KindList
	KindSet
	KindMap
	KindObjectRef
)

var kindName = map[Kind]string{
	KindBool:      "bool",
	KindInt:       "int",
	KindLong:      "long",
	KindFloat:     "float",
	KindDouble:    "double",
	KindString:    "string",
	KindArray:     "array",
	KindList:      "list",
	KindSet:       "set",
	KindMap:       "map",
	KindObjectRef: "objectref",
}

func (k Kind) String() string {
	return kindName[k]
}

// RType - one tagged OMERO value. The union is closed: only the types in this
// package implement it.
type RType interface {
	Kind() Kind
	String() string

	isRType()
}

// ObjectKind - what kind of server-side resource an RObjectRef points at
type ObjectKind string

const (
	ObjectImage ObjectKind = "Image"
	ObjectTable ObjectKind = "Table"
	ObjectROI   ObjectKind = "Roi"
)

type RBool struct {
	Value bool
}

type RInt struct {
	Value int32
}

type RLong struct {
	Value int64
}

type RFloat struct {
	Value float32
}

type RDouble struct {
	Value float64
}

type RString struct {
	Value string
}

type RArray struct {
	Values []RType
}

type RList struct {
	Values []RType
}

type RSet struct {
	Values []RType
}

// RMap - keys are always strings, OMERO has no other map key type
type RMap struct {
	Values map[string]RType
}

// RObjectRef - reference to a server-side object by id
type RObjectRef struct {
	ObjectKind ObjectKind
	ID         int64
}

func (RBool) Kind() Kind      { return KindBool }
func (RInt) Kind() Kind       { return KindInt }
func (RLong) Kind() Kind      { return KindLong }
func (RFloat) Kind() Kind     { return KindFloat }
func (RDouble) Kind() Kind    { return KindDouble }
func (RString) Kind() Kind    { return KindString }
func (RArray) Kind() Kind     { return KindArray }
func (RList) Kind() Kind      { return KindList }
func (RSet) Kind() Kind       { return KindSet }
func (RMap) Kind() Kind       { return KindMap }
func (RObjectRef) Kind() Kind { return KindObjectRef }

func (RBool) isRType()      {}
func (RInt) isRType()       {}
func (RLong) isRType()      {}
func (RFloat) isRType()     {}
func (RDouble) isRType()    {}
func (RString) isRType()    {}
func (RArray) isRType()     {}
func (RList) isRType()      {}
func (RSet) isRType()       {}
func (RMap) isRType()       {}
func (RObjectRef) isRType() {}

func (v RBool) String() string   { return fmt.Sprintf("%v", v.Value) }
func (v RInt) String() string    { return fmt.Sprintf("%v", v.Value) }
func (v RLong) String() string   { return fmt.Sprintf("%v", v.Value) }
func (v RFloat) String() string  { return fmt.Sprintf("%v", v.Value) }
func (v RDouble) String() string { return fmt.Sprintf("%v", v.Value) }
func (v RString) String() string { return v.Value }

func (v RArray) String() string { return formatSeq("array", v.Values) }
func (v RList) String() string  { return formatSeq("list", v.Values) }
func (v RSet) String() string   { return formatSeq("set", v.Values) }

func (v RMap) String() string {
	items := []string{}
	for _, key := range utils.GetOrderedMapKeys(v.Values) {
		items = append(items, key+"="+formatItem(v.Values[key]))
	}
	return "map(" + strings.Join(items, ", ") + ")"
}

func (v RObjectRef) String() string {
	return fmt.Sprintf("%v:%v", v.ObjectKind, v.ID)
}

func formatSeq(name string, values []RType) string {
	items := []string{}
	for _, item := range values {
		items = append(items, formatItem(item))
	}
	return name + "(" + strings.Join(items, ", ") + ")"
}

func formatItem(v RType) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// Constructors, in the manner of omero.rtypes

func Bool(v bool) RType {
	return RBool{Value: v}
}
func Int(v int32) RType {
	return RInt{Value: v}
}
func Long(v int64) RType {
	return RLong{Value: v}
}
func Float(v float32) RType {
	return RFloat{Value: v}
}
func Double(v float64) RType {
	return RDouble{Value: v}
}
func String(v string) RType {
	return RString{Value: v}
}
func Array(values ...RType) RType {
	return RArray{Values: values}
}
func List(values ...RType) RType {
	return RList{Values: values}
}
func Set(values ...RType) RType {
	return RSet{Values: values}
}
func Map(values map[string]RType) RType {
	if values == nil {
		values = map[string]RType{}
	}
	return RMap{Values: values}
}
func ObjectRef(kind ObjectKind, id int64) RType {
	return RObjectRef{ObjectKind: kind, ID: id}
}
