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
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/stoffelc/imagej-omero/converter"
	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/logger"
	"github.com/stoffelc/imagej-omero/core/rtypes"
	"github.com/stoffelc/imagej-omero/core/utils"
)

// ParseOutputKey - the session output the server reads job parameters from
const ParseOutputKey = "omero.scripts.parse"

// TitlePrefix - marks adapted modules apart from native scripts in server
// script listings
const TitlePrefix = "[ImageJ] "

// JobParam - one script parameter as the server expects to see it
type JobParam struct {
	Optional    bool
	Prototype   rtypes.RType
	Description string
	Values      rtypes.RType
	Min         rtypes.RType
	Max         rtypes.RType
	Grouping    string
}

// MarshalJSON - the value fields are tagged-union values, so each goes out
// in its protojson rendering rather than as a bare Go struct. protojson
// spells non-finite doubles as strings, so NaN defaults survive the trip.
func (p JobParam) MarshalJSON() ([]byte, error) {
	wire := struct {
		Optional    bool            `json:"optional"`
		Prototype   json.RawMessage `json:"prototype"`
		Description string          `json:"description,omitempty"`
		Values      json.RawMessage `json:"values,omitempty"`
		Min         json.RawMessage `json:"min,omitempty"`
		Max         json.RawMessage `json:"max,omitempty"`
		Grouping    string          `json:"grouping"`
	}{
		Optional:    p.Optional,
		Description: p.Description,
		Grouping:    p.Grouping,
	}

	var err error
	if wire.Prototype, err = protojson.Marshal(rtypes.ToProto(p.Prototype)); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		value rtypes.RType
		dest  *json.RawMessage
	}{{p.Values, &wire.Values}, {p.Min, &wire.Min}, {p.Max, &wire.Max}} {
		if field.value == nil {
			continue
		}
		if *field.dest, err = protojson.Marshal(rtypes.ToProto(field.value)); err != nil {
			return nil, err
		}
	}

	return json.Marshal(wire)
}

// JobParams - the full job description published for one module
type JobParams struct {
	Name         string              `json:"name"`
	Version      string              `json:"version,omitempty"`
	Description  string              `json:"description,omitempty"`
	StdoutFormat string              `json:"stdoutFormat"`
	StderrFormat string              `json:"stderrFormat"`
	Inputs       map[string]JobParam `json:"inputs"`
	Outputs      map[string]JobParam `json:"outputs"`
}

// Adapter - binds one module to one script session
type Adapter struct {
	log  logger.ILogger
	conv *converter.Service
	info ModuleInfo
	sess client.Session
}

func NewAdapter(log logger.ILogger, conv *converter.Service, info ModuleInfo, sess client.Session) *Adapter {
	return &Adapter{
		log:  log,
		conv: conv,
		info: info,
		sess: sess,
	}
}

// Params - publishes the module's metadata as job parameters, via the
// well-known parse output key
func (a *Adapter) Params() error {
	encoded, err := json.Marshal(a.JobInfo())
	if err != nil {
		return err
	}

	return a.sess.SetOutput(ParseOutputKey, rtypes.String(string(encoded)))
}

// Launch - runs the module as a script: reads the session's inputs,
// converts them to local values, executes the module, then converts and
// writes back its outputs.
func (a *Adapter) Launch(runner ModuleRunner) error {
	a.log.Debugf("%v: populating inputs", a.info.Title)

	keys, err := a.sess.GetInputKeys()
	if err != nil {
		return err
	}

	inputs := map[string]interface{}{}
	for _, name := range keys {
		item := a.info.Input(name)
		if item == nil {
			a.log.Errorf("%v: ignoring unknown input: %v", a.info.Title, name)
			continue
		}

		remote, err := a.sess.GetInput(name)
		if err != nil {
			return err
		}

		value, err := a.conv.ToImageJ(a.sess, remote, item.Type)
		if err != nil {
			return err
		}
		inputs[name] = value
	}

	a.log.Debugf("%v: executing module", a.info.Title)
	outputs, err := runner.Run(inputs)
	if err != nil {
		return err
	}

	a.log.Debugf("%v: populating outputs", a.info.Title)
	for _, item := range a.info.Outputs {
		value, err := a.conv.ToOMEROSession(a.sess, outputs[item.Name])
		if err != nil {
			return err
		}
		if err := a.sess.SetOutput(item.Name, value); err != nil {
			return err
		}
	}

	a.log.Debugf("%v: completed execution", a.info.Title)
	return nil
}

// JobInfo - converts the module's metadata to the job description the
// server expects. Message items are presentation only and are skipped.
func (a *Adapter) JobInfo() JobParams {
	params := JobParams{
		Name:         TitlePrefix + a.info.Title,
		Version:      a.info.Version,
		Description:  a.info.Description,
		StdoutFormat: "text/plain",
		StderrFormat: "text/plain",
		Inputs:       map[string]JobParam{},
		Outputs:      map[string]JobParam{},
	}

	inputDigits := len(strconv.Itoa(len(a.info.Inputs)))
	inputIndex := 0
	for _, item := range a.info.Inputs {
		if item.Visibility == VisibilityMessage {
			continue
		}
		param := a.jobParam(item)
		param.Grouping = utils.ZeroPad(inputIndex, inputDigits)
		inputIndex++
		params.Inputs[item.Name] = param
	}

	outputDigits := len(strconv.Itoa(len(a.info.Outputs)))
	for outputIndex, item := range a.info.Outputs {
		param := a.jobParam(item)
		param.Grouping = utils.ZeroPad(outputIndex, outputDigits)
		params.Outputs[item.Name] = param
	}

	return params
}

// jobParam - converts one module item. Min/max bounds are coerced to the
// item's declared type first, so an int bound on a float parameter goes out
// with the parameter's kind, matching its prototype.
func (a *Adapter) jobParam(item ModuleItem) JobParam {
	param := JobParam{
		Optional:    !item.Required,
		Prototype:   converter.Prototype(item.Type),
		Description: item.Description,
	}

	if len(item.Choices) > 0 {
		param.Values = a.conv.ToOMERO(item.Choices)
	}
	if item.Min != nil {
		param.Min = a.conv.ToOMERO(converter.Coerce(item.Min, item.Type))
	}
	if item.Max != nil {
		param.Max = a.conv.ToOMERO(converter.Coerce(item.Max, item.Type))
	}

	return param
}
