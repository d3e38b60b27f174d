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

package omeroformat

import (
	"encoding/json"
	"testing"

	"github.com/stoffelc/imagej-omero/core/client"
)

func TestParserFillsMetadata(t *testing.T) {
	sess := client.MakeMockSession()
	sess.CallResults["pixels.info"] = json.RawMessage(
		`{"pixelsId": 12, "sizeX": 64, "sizeY": 32, "sizeZ": 1, "sizeC": 3, "sizeT": 1, "pixelType": "uint16"}`)

	p := &Parser{Connect: func(info client.ConnectInfo) (client.Session, error) {
		if info.Host != "h" {
			t.Errorf("Got host %v", info.Host)
		}
		return sess, nil
	}}

	meta, err := p.Parse("img&server=h&imageID=9.omero")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if meta.PixelsID != 12 || meta.SizeX != 64 || meta.SizeC != 3 || meta.PixelType != "uint16" {
		t.Errorf("Got %+v", meta)
	}
	if !sess.Closed {
		t.Error("Expected the metadata session closed after parse")
	}
}

func TestParserBadSource(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("img&nosuchkey=1.omero"); err == nil {
		t.Error("Expected error for bad source string")
	}
}
