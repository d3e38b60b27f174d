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

package main

import (
	"fmt"
	"reflect"

	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/imageedit"
	"github.com/stoffelc/imagej-omero/scriptadapt"
)

type builtinModule struct {
	info   scriptadapt.ModuleInfo
	runner scriptadapt.ModuleRunner
}

type runnerFunc func(inputs map[string]interface{}) (map[string]interface{}, error)

func (f runnerFunc) Run(inputs map[string]interface{}) (map[string]interface{}, error) {
	return f(inputs)
}

var builtinModules = map[string]builtinModule{
	"Echo": {
		info: scriptadapt.ModuleInfo{
			Title:       "Echo",
			Description: "Returns its inputs unchanged, for testing the script plumbing end to end",
			Version:     toolVersion,
			Inputs: []scriptadapt.ModuleItem{
				{Name: "message", Type: reflect.TypeOf(""), Required: true, Description: "Text to echo back"},
			},
			Outputs: []scriptadapt.ModuleItem{
				{Name: "message", Type: reflect.TypeOf(""), Description: "The same text"},
			},
		},
		runner: runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{"message": inputs["message"]}, nil
		}),
	},
	"Plane Statistics": {
		info: scriptadapt.ModuleInfo{
			Title:       "Plane Statistics",
			Description: "Computes min, max and mean sample value of one plane of an image",
			Version:     toolVersion,
			Inputs: []scriptadapt.ModuleItem{
				{Name: "image", Type: reflect.TypeOf(&dataset.Dataset{}), Required: true, Description: "Image to measure"},
				{Name: "plane", Type: reflect.TypeOf(int(0)), Description: "Plane index to measure", Min: 0},
			},
			Outputs: []scriptadapt.ModuleItem{
				{Name: "minimum", Type: reflect.TypeOf(float64(0))},
				{Name: "maximum", Type: reflect.TypeOf(float64(0))},
				{Name: "mean", Type: reflect.TypeOf(float64(0))},
			},
		},
		runner: runnerFunc(func(inputs map[string]interface{}) (map[string]interface{}, error) {
			img, ok := inputs["image"].(*dataset.Dataset)
			if !ok || img == nil {
				return nil, fmt.Errorf("no image input")
			}

			plane := 0
			if p, ok := inputs["plane"].(int); ok {
				plane = p
			}

			minVal, maxVal, mean, err := imageedit.PlaneStats(img, plane)
			if err != nil {
				return nil, err
			}

			return map[string]interface{}{
				"minimum": minVal,
				"maximum": maxVal,
				"mean":    mean,
			}, nil
		}),
	},
}
