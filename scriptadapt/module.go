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

// Adapts a local processing module so an OMERO server can drive it as a
// script: module metadata is published as job parameters, and script inputs
// and outputs are converted between the local and remote value models around
// each run.
package scriptadapt

import (
	"reflect"
)

// Visibility - how a module item is presented. Message items are
// informational labels and never become script parameters.
type Visibility int

const (
	VisibilityNormal Visibility = iota
	VisibilityMessage
)

// ModuleItem - one declared input or output of a module
type ModuleItem struct {
	Name        string
	Type        reflect.Type
	Required    bool
	Description string
	Choices     []interface{}
	Min         interface{}
	Max         interface{}
	Visibility  Visibility
}

// ModuleInfo - metadata describing a runnable module
type ModuleInfo struct {
	Title       string
	Description string
	Version     string
	Inputs      []ModuleItem
	Outputs     []ModuleItem
}

// Input - looks up a declared input by name, nil if the module has no
// input with that name
func (m *ModuleInfo) Input(name string) *ModuleItem {
	for i := range m.Inputs {
		if m.Inputs[i].Name == name {
			return &m.Inputs[i]
		}
	}
	return nil
}

// ModuleRunner - executes the module with resolved inputs, returning its
// outputs keyed by output name. Blocks until the module completes.
type ModuleRunner interface {
	Run(inputs map[string]interface{}) (map[string]interface{}, error)
}
