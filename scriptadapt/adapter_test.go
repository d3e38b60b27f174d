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

package scriptadapt

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/stoffelc/imagej-omero/converter"
	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/logger"
	"github.com/stoffelc/imagej-omero/core/rtypes"
	protos "github.com/stoffelc/imagej-omero/generated-protos"
)

type runnerFunc func(inputs map[string]interface{}) (map[string]interface{}, error)

func (f runnerFunc) Run(inputs map[string]interface{}) (map[string]interface{}, error) {
	return f(inputs)
}

func makeTestAdapter(info ModuleInfo, log logger.ILogger) (*Adapter, *client.MockSession, *client.MockTransfer) {
	sess := client.MakeMockSession()
	transfer := client.MakeMockTransfer()
	conv := converter.NewService(log, transfer, nil)
	return NewAdapter(log, conv, info, sess), sess, transfer
}

// wireParam mirrors JobParam's marshalled form so tests can pull the RType
// fields back out of the published JSON
type wireParam struct {
	Optional  bool            `json:"optional"`
	Prototype json.RawMessage `json:"prototype"`
	Values    json.RawMessage `json:"values"`
	Min       json.RawMessage `json:"min"`
	Max       json.RawMessage `json:"max"`
	Grouping  string          `json:"grouping"`
}

func decodeParamValue(data json.RawMessage) (rtypes.RType, error) {
	w := &protos.WSValue{}
	if err := protojson.Unmarshal(data, w); err != nil {
		return nil, err
	}
	return rtypes.FromProto(w), nil
}

func TestParamsPublishesJobInfo(t *testing.T) {
	info := ModuleInfo{
		Title:   "Crop Image",
		Version: "2.0.0",
		Inputs: []ModuleItem{
			{Name: "heading", Type: reflect.TypeOf(""), Visibility: VisibilityMessage},
			{Name: "region", Type: reflect.TypeOf(""), Required: true, Choices: []interface{}{"top", "bottom"}},
			{Name: "sigma", Type: reflect.TypeOf(float32(0)), Min: 3},
		},
		Outputs: []ModuleItem{
			{Name: "cropped", Type: reflect.TypeOf(&dataset.Dataset{}), Required: true},
		},
	}
	adapter, sess, _ := makeTestAdapter(info, &logger.NullLogger{})

	if err := adapter.Params(); err != nil {
		t.Fatalf("Params failed: %v", err)
	}

	published, ok := sess.Outputs[ParseOutputKey].(rtypes.RString)
	if !ok {
		t.Fatalf("Expected string parse output, got %T", sess.Outputs[ParseOutputKey])
	}

	job := struct {
		Name         string               `json:"name"`
		Version      string               `json:"version"`
		StdoutFormat string               `json:"stdoutFormat"`
		StderrFormat string               `json:"stderrFormat"`
		Inputs       map[string]wireParam `json:"inputs"`
		Outputs      map[string]wireParam `json:"outputs"`
	}{}
	if err := json.Unmarshal([]byte(published.Value), &job); err != nil {
		t.Fatalf("Bad parse output JSON: %v", err)
	}

	if job.Name != "[ImageJ] Crop Image" {
		t.Errorf("Got job name %v", job.Name)
	}
	if job.Version != "2.0.0" {
		t.Errorf("Got job version %v", job.Version)
	}
	if job.StdoutFormat != "text/plain" || job.StderrFormat != "text/plain" {
		t.Errorf("Got stream formats %v, %v", job.StdoutFormat, job.StderrFormat)
	}

	if _, exists := job.Inputs["heading"]; exists {
		t.Error("Message items must not become parameters")
	}
	if len(job.Inputs) != 2 || len(job.Outputs) != 1 {
		t.Fatalf("Got %v inputs, %v outputs", len(job.Inputs), len(job.Outputs))
	}

	region := job.Inputs["region"]
	if region.Optional {
		t.Error("Required item published as optional")
	}
	if region.Grouping != "0" {
		t.Errorf("Got region grouping %v", region.Grouping)
	}
	proto, err := decodeParamValue(region.Prototype)
	if err != nil {
		t.Fatalf("Bad region prototype: %v", err)
	}
	if proto != rtypes.String("") {
		t.Errorf("Got region prototype %v", proto)
	}
	values, err := decodeParamValue(region.Values)
	if err != nil {
		t.Fatalf("Bad region values: %v", err)
	}
	list, ok := values.(rtypes.RList)
	if !ok || len(list.Values) != 2 || list.Values[0] != rtypes.String("top") {
		t.Errorf("Got region values %v", values)
	}

	sigma := job.Inputs["sigma"]
	if !sigma.Optional {
		t.Error("Non-required item published as required")
	}
	if sigma.Grouping != "1" {
		t.Errorf("Got sigma grouping %v", sigma.Grouping)
	}
	// the int bound goes out with the parameter's own kind
	minimum, err := decodeParamValue(sigma.Min)
	if err != nil {
		t.Fatalf("Bad sigma min: %v", err)
	}
	if minimum != rtypes.Float(3) {
		t.Errorf("Got sigma min %v (%T)", minimum, minimum)
	}
	if sigma.Max != nil {
		t.Errorf("Got unexpected sigma max %v", string(sigma.Max))
	}

	cropped := job.Outputs["cropped"]
	proto, err = decodeParamValue(cropped.Prototype)
	if err != nil {
		t.Fatalf("Bad output prototype: %v", err)
	}
	if proto != rtypes.Long(0) {
		t.Errorf("Got output prototype %v", proto)
	}
}

func makeEchoInfo() ModuleInfo {
	return ModuleInfo{
		Title: "Echo",
		Inputs: []ModuleItem{
			{Name: "message", Type: reflect.TypeOf(""), Required: true},
			{Name: "repeats", Type: reflect.TypeOf(int(0)), Required: true},
		},
		Outputs: []ModuleItem{
			{Name: "reply", Type: reflect.TypeOf("")},
			{Name: "image", Type: reflect.TypeOf(&dataset.Dataset{})},
		},
	}
}

func TestLaunchConvertsInputsAndOutputs(t *testing.T) {
	adapter, sess, transfer := makeTestAdapter(makeEchoInfo(), &logger.NullLogger{})
	sess.Inputs["message"] = rtypes.String("hi")
	sess.Inputs["repeats"] = rtypes.Int(4)

	err := adapter.Launch(runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
		message, ok := inputs["message"].(string)
		if !ok || message != "hi" {
			t.Errorf("Got message input %v (%T)", inputs["message"], inputs["message"])
		}
		repeats, ok := inputs["repeats"].(int)
		if !ok || repeats != 4 {
			t.Errorf("Got repeats input %v (%T)", inputs["repeats"], inputs["repeats"])
		}
		return map[string]interface{}{
			"reply": fmt.Sprintf("%v x%v", message, repeats),
			"image": &dataset.Dataset{Name: "echoed", SizeX: 1, SizeY: 1, SizeZ: 1, SizeC: 1, SizeT: 1},
		}, nil
	}))
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	if sess.Outputs["reply"] != rtypes.String("hi x4") {
		t.Errorf("Got reply output %v", sess.Outputs["reply"])
	}

	// image outputs upload and go back as the new remote id
	if len(transfer.UploadedImages) != 1 {
		t.Fatalf("Expected one uploaded image, got %v", len(transfer.UploadedImages))
	}
	if sess.Outputs["image"] != rtypes.Long(transfer.UploadedImages[0]) {
		t.Errorf("Got image output %v", sess.Outputs["image"])
	}
}

func TestLaunchSkipsUnknownInputs(t *testing.T) {
	log := &logger.CollectorLogger{}
	adapter, sess, _ := makeTestAdapter(makeEchoInfo(), log)
	sess.Inputs["message"] = rtypes.String("hi")
	sess.Inputs["repeats"] = rtypes.Int(1)
	sess.Inputs["stray"] = rtypes.Long(9)

	err := adapter.Launch(runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
		if _, exists := inputs["stray"]; exists {
			t.Error("Unknown input passed through to the module")
		}
		return map[string]interface{}{"reply": "ok"}, nil
	}))
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	found := false
	for _, line := range log.Lines {
		if strings.Contains(line, "unknown input") && strings.Contains(line, "stray") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected unknown input logged, got %v", log.Lines)
	}
}

func TestLaunchErrorPaths(t *testing.T) {
	runErr := errors.New("module blew up")
	adapter, sess, _ := makeTestAdapter(makeEchoInfo(), &logger.NullLogger{})
	sess.Inputs["message"] = rtypes.String("hi")
	sess.Inputs["repeats"] = rtypes.Int(1)

	err := adapter.Launch(runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
		return nil, runErr
	}))
	if !errors.Is(err, runErr) {
		t.Errorf("Expected module error back, got %v", err)
	}

	// session failures surface before the module runs
	adapter, sess, _ = makeTestAdapter(makeEchoInfo(), &logger.NullLogger{})
	sess.CallErr = errors.New("session gone")
	err = adapter.Launch(runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
		t.Error("Module ran despite session failure")
		return nil, nil
	}))
	if err == nil {
		t.Error("Expected session failure to propagate")
	}
}
