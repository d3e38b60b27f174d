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
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/logger"
	"github.com/stoffelc/imagej-omero/core/rtypes"
)

func makeTestService() (*Service, *client.MockSession, *client.MockTransfer) {
	transfer := client.MakeMockTransfer()
	svc := NewService(&logger.NullLogger{}, transfer, nil)
	return svc, client.MakeMockSession(), transfer
}

func TestPrimitiveRoundTrip(t *testing.T) {
	svc, sess, _ := makeTestService()

	values := []interface{}{
		true,
		false,
		int(42),
		int64(1 << 40),
		float32(1.5),
		float64(-2.25),
		"round and round",
	}

	for _, value := range values {
		remote := svc.ToOMERO(value)

		local, err := svc.ToImageJ(sess, remote, reflect.TypeOf(value))
		if err != nil {
			t.Errorf("ToImageJ(%v) failed: %v", remote, err)
			continue
		}
		if local != value {
			t.Errorf("Round trip mismatch: got %v (%T), want %v (%T)", local, local, value, value)
		}
	}
}

func TestIntsBeyond32BitsSurviveRoundTrip(t *testing.T) {
	svc, sess, _ := makeTestService()

	big := int(1 << 40)
	remote := svc.ToOMERO(big)
	if remote != rtypes.Long(1<<40) {
		t.Fatalf("Got %v, want long %v", remote, big)
	}

	local, err := svc.ToImageJ(sess, remote, reflect.TypeOf(big))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != big {
		t.Errorf("Got %v (%T), want %v", local, local, big)
	}
}

func TestToOMEROScalars(t *testing.T) {
	svc, _, _ := makeTestService()

	cases := []struct {
		value interface{}
		want  rtypes.RType
	}{
		{nil, nil},
		{true, rtypes.Bool(true)},
		{int16(3), rtypes.Int(3)},
		{uint16(3), rtypes.Int(3)},
		// platform-width ints ride the long kind, they may not fit 32 bits
		{int(3), rtypes.Long(3)},
		{uint(3), rtypes.Long(3)},
		{int64(3), rtypes.Long(3)},
		{uint64(3), rtypes.Long(3)},
		{uint32(3), rtypes.Long(3)},
		{float32(1.5), rtypes.Float(1.5)},
		{2.5, rtypes.Double(2.5)},
		{"text", rtypes.String("text")},
	}

	for _, c := range cases {
		if got := svc.ToOMERO(c.value); got != c.want {
			t.Errorf("%T %v: got %v, want %v", c.value, c.value, got, c.want)
		}
	}
}

func TestToOMEROBoxedPrimitive(t *testing.T) {
	svc, _, _ := makeTestService()

	f := 4.5
	if got := svc.ToOMERO(&f); got != rtypes.Double(4.5) {
		t.Errorf("Got %v, want double 4.5", got)
	}

	var nilPtr *float64
	if got := svc.ToOMERO(nilPtr); got != nil {
		t.Errorf("Got %v, want nil for nil pointer", got)
	}
}

func TestListRoundTripPreservesOrder(t *testing.T) {
	svc, sess, _ := makeTestService()

	remote := svc.ToOMERO([]int{5, 4, 3, 2, 1})
	list, ok := remote.(rtypes.RList)
	if !ok {
		t.Fatalf("Expected list, got %T", remote)
	}
	if len(list.Values) != 5 {
		t.Fatalf("Got %v elements, want 5", len(list.Values))
	}

	local, err := svc.ToImageJ(sess, remote, nil)
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}

	elements, ok := local.([]interface{})
	if !ok {
		t.Fatalf("Expected []interface{}, got %T", local)
	}
	for i, want := range []int64{5, 4, 3, 2, 1} {
		if elements[i] != want {
			t.Errorf("Element %v: got %v, want %v", i, elements[i], want)
		}
	}
}

func TestArrayRoundTripTypesSlice(t *testing.T) {
	svc, sess, _ := makeTestService()

	remote := svc.ToOMERO([2]string{"a", "b"})
	if remote.Kind() != rtypes.KindArray {
		t.Fatalf("Expected array, got %v", remote.Kind())
	}

	local, err := svc.ToImageJ(sess, remote, nil)
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}

	typed, ok := local.([]string)
	if !ok {
		t.Fatalf("Expected []string, got %T", local)
	}
	if !reflect.DeepEqual(typed, []string{"a", "b"}) {
		t.Errorf("Got %v", typed)
	}
}

func TestMapRoundTripPreservesAssociation(t *testing.T) {
	svc, sess, _ := makeTestService()

	remote := svc.ToOMERO(map[string]string{"alpha": "a", "beta": "b"})

	local, err := svc.ToImageJ(sess, remote, nil)
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}

	mapping, ok := local.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map[string]interface{}, got %T", local)
	}
	if mapping["alpha"] != "a" || mapping["beta"] != "b" {
		t.Errorf("Got %v", mapping)
	}
}

func TestSetConversion(t *testing.T) {
	svc, sess, _ := makeTestService()

	// map[K]bool is the set convention: only keys flagged true are members
	remote := svc.ToOMERO(map[string]bool{"in": true, "out": false})
	set, ok := remote.(rtypes.RSet)
	if !ok {
		t.Fatalf("Expected set, got %T", remote)
	}
	if len(set.Values) != 1 || set.Values[0] != rtypes.String("in") {
		t.Errorf("Got %v", set.Values)
	}

	local, err := svc.ToImageJ(sess, remote, nil)
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	members, ok := local.(map[interface{}]bool)
	if !ok {
		t.Fatalf("Expected map[interface{}]bool, got %T", local)
	}
	if !members["in"] || len(members) != 1 {
		t.Errorf("Got %v", members)
	}
}

func TestToOMEROFallsBackToString(t *testing.T) {
	svc, _, _ := makeTestService()

	type weird struct{ X int }
	got := svc.ToOMERO(weird{X: 3})
	if got.Kind() != rtypes.KindString {
		t.Errorf("Got kind %v, want string", got.Kind())
	}
}

func TestUploadImageOnConversion(t *testing.T) {
	svc, sess, transfer := makeTestService()

	img := &dataset.Dataset{Name: "out", SizeX: 1, SizeY: 1, SizeZ: 1, SizeC: 1, SizeT: 1}
	remote, err := svc.ToOMEROSession(sess, img)
	if err != nil {
		t.Fatalf("ToOMEROSession failed: %v", err)
	}

	long, ok := remote.(rtypes.RLong)
	if !ok {
		t.Fatalf("Expected long id, got %T", remote)
	}
	if len(transfer.UploadedImages) != 1 || transfer.UploadedImages[0] != long.Value {
		t.Errorf("Uploads %v do not match id %v", transfer.UploadedImages, long.Value)
	}

	// views and displays resolve through to their dataset
	viewRemote, err := svc.ToOMEROSession(sess, dataset.NewView(img))
	if err != nil {
		t.Fatalf("ToOMEROSession of view failed: %v", err)
	}
	if _, ok := viewRemote.(rtypes.RLong); !ok {
		t.Errorf("Expected long id for view, got %T", viewRemote)
	}

	displayRemote, err := svc.ToOMEROSession(sess, dataset.NewDisplay(img))
	if err != nil {
		t.Fatalf("ToOMEROSession of display failed: %v", err)
	}
	if _, ok := displayRemote.(rtypes.RLong); !ok {
		t.Errorf("Expected long id for display, got %T", displayRemote)
	}
}

func TestUploadTableOnConversion(t *testing.T) {
	svc, sess, transfer := makeTestService()

	table := &dataset.Table{Name: "results", Headers: []string{"area"}}
	remote, err := svc.ToOMEROSession(sess, table)
	if err != nil {
		t.Fatalf("ToOMEROSession failed: %v", err)
	}

	long, ok := remote.(rtypes.RLong)
	if !ok {
		t.Fatalf("Expected long id, got %T", remote)
	}
	if len(transfer.UploadedTables) != 1 || transfer.UploadedTables[0] != long.Value {
		t.Errorf("Uploads %v do not match id %v", transfer.UploadedTables, long.Value)
	}
}

func TestUploadFailurePropagates(t *testing.T) {
	svc, sess, transfer := makeTestService()
	transfer.Err = errors.New("upload refused")

	if _, err := svc.ToOMEROSession(sess, &dataset.Dataset{}); err == nil {
		t.Error("Expected upload failure to propagate")
	}
}

func TestDownloadImageOnConversion(t *testing.T) {
	svc, sess, transfer := makeTestService()

	img := &dataset.Dataset{ID: 7, Name: "stored"}
	transfer.Images[7] = img

	local, err := svc.ToImageJ(sess, rtypes.Long(7), reflect.TypeOf(&dataset.Dataset{}))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != img {
		t.Errorf("Got %v, want the stored dataset", local)
	}

	// requesting a view or display wraps the downloaded dataset
	local, err = svc.ToImageJ(sess, rtypes.Long(7), reflect.TypeOf(&dataset.DatasetView{}))
	if err != nil {
		t.Fatalf("ToImageJ as view failed: %v", err)
	}
	view, ok := local.(*dataset.DatasetView)
	if !ok || view.Data != img {
		t.Errorf("Got %v (%T), want view over stored dataset", local, local)
	}

	local, err = svc.ToImageJ(sess, rtypes.Long(7), reflect.TypeOf(&dataset.ImageDisplay{}))
	if err != nil {
		t.Fatalf("ToImageJ as display failed: %v", err)
	}
	display, ok := local.(*dataset.ImageDisplay)
	if !ok || display.ActiveDataset() != img {
		t.Errorf("Got %v (%T), want display over stored dataset", local, local)
	}
}

func TestDownloadTableOnConversion(t *testing.T) {
	svc, sess, transfer := makeTestService()

	table := &dataset.Table{ID: 8, Name: "stored"}
	transfer.Tables[8] = table

	local, err := svc.ToImageJ(sess, rtypes.Long(8), reflect.TypeOf(&dataset.Table{}))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != table {
		t.Errorf("Got %v, want the stored table", local)
	}
}

func TestDownloadFailurePropagates(t *testing.T) {
	svc, sess, _ := makeTestService()

	// id 404 was never stored in the mock
	if _, err := svc.ToImageJ(sess, rtypes.Long(404), reflect.TypeOf(&dataset.Dataset{})); err == nil {
		t.Error("Expected download failure to propagate")
	}
}

func TestObjectRefDownloads(t *testing.T) {
	svc, sess, transfer := makeTestService()

	img := &dataset.Dataset{ID: 11}
	transfer.Images[11] = img

	local, err := svc.ToImageJ(sess, rtypes.ObjectRef(rtypes.ObjectImage, 11), reflect.TypeOf(&dataset.Dataset{}))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != img {
		t.Errorf("Got %v, want the stored dataset", local)
	}
}

func TestCoercionMissLogsAndReturnsNil(t *testing.T) {
	transfer := client.MakeMockTransfer()
	collector := &logger.CollectorLogger{}
	svc := NewService(collector, transfer, nil)
	sess := client.MakeMockSession()

	local, err := svc.ToImageJ(sess, rtypes.String("not a struct"), reflect.TypeOf(struct{ X int }{}))
	if err != nil {
		t.Fatalf("Expected coercion miss to not error, got %v", err)
	}
	if local != nil {
		t.Errorf("Got %v, want nil", local)
	}

	if len(collector.Lines) != 1 || !strings.Contains(collector.Lines[0], "Cannot convert") {
		t.Errorf("Expected a logged conversion miss, got %v", collector.Lines)
	}
}

func TestTargetKindGovernsCoercion(t *testing.T) {
	svc, sess, _ := makeTestService()

	// an int carried on the wire, bound to a float parameter, arrives as the
	// parameter's kind
	local, err := svc.ToImageJ(sess, rtypes.Int(3), reflect.TypeOf(float32(0)))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != float32(3) {
		t.Errorf("Got %v (%T), want float32 3", local, local)
	}
}

type namedGradient struct {
	name string
}

func (g *namedGradient) String() string {
	return g.name
}

func TestRegistryStringMatch(t *testing.T) {
	registry := &SimpleRegistry{}
	alpha := &namedGradient{name: "alpha"}
	beta := &namedGradient{name: "beta"}
	registry.Register(alpha)
	registry.Register(beta)

	transfer := client.MakeMockTransfer()
	svc := NewService(&logger.NullLogger{}, transfer, registry)
	sess := client.MakeMockSession()

	local, err := svc.ToImageJ(sess, rtypes.String("beta"), reflect.TypeOf(&namedGradient{}))
	if err != nil {
		t.Fatalf("ToImageJ failed: %v", err)
	}
	if local != beta {
		t.Errorf("Got %v, want the registered beta instance", local)
	}
}
