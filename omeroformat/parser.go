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
	"github.com/stoffelc/imagej-omero/core/client"
)

// ConnectFunc - how the format layer opens sessions. Swapped for a mock in
// tests.
type ConnectFunc func(info client.ConnectInfo) (client.Session, error)

// OpenStoreFunc - how the format layer opens a pixels store on a session
type OpenStoreFunc func(sess client.Session, pixelsID int64) (client.RawPixelsStore, error)

// Parser - fills Metadata for a source string by asking the server about
// the image's pixels
type Parser struct {
	Connect ConnectFunc
}

func NewParser() *Parser {
	return &Parser{Connect: client.Connect}
}

// Parse - parses credentials from the source string, then opens a short
// lived session to fetch the dimensional metadata
func (p *Parser) Parse(source string) (Metadata, error) {
	meta, err := ParseSource(source)
	if err != nil {
		return meta, err
	}

	sess, err := p.Connect(meta.ConnectInfo())
	if err != nil {
		return meta, err
	}
	defer sess.Close()

	info, err := client.GetPixelsInfo(sess, meta.ImageID)
	if err != nil {
		return meta, err
	}

	meta.PopulateFromPixels(info)
	return meta, nil
}
