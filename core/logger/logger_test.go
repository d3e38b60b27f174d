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

package logger

import (
	"reflect"
	"testing"
)

func TestCollectorLogger(t *testing.T) {
	l := &CollectorLogger{}
	l.Debugf("debug %v", 1)
	l.Infof("info %v", "two")
	l.Errorf("error %v", 3.0)

	want := []string{
		"DEBUG: debug 1",
		"INFO: info two",
		"ERROR: error 3",
	}
	if !reflect.DeepEqual(l.Lines, want) {
		t.Errorf("Got %v, want %v", l.Lines, want)
	}
}

func TestNullLogger(t *testing.T) {
	// Exists so converters can be constructed without log output
	var l ILogger = &NullLogger{}
	l.Debugf("ignored")
	l.Infof("ignored")
	l.Errorf("ignored")
}
