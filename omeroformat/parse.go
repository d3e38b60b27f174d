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
	"fmt"
	"strconv"
	"strings"
)

// Suffix - the pseudo extension that marks a source string as an OMERO image
const Suffix = ".omero"

// ParseSource - reads connection fields out of an OMERO source string. The
// format is name&key=value&key=value...ext, eg:
//
//	myImage&server=omero.example.org&port=4064&user=jane&password=s3cret&imageID=42.omero
//
// Unknown keys are an error, a typo in a credential field should not be
// silently dropped. The extension (anything after the last dot) is stripped
// first.
func ParseSource(source string) (Metadata, error) {
	meta := Metadata{}

	// strip extension
	noExt := source
	if idx := strings.LastIndex(source, "."); idx >= 0 {
		noExt = source[:idx]
	}

	fields := strings.Split(noExt, "&")
	meta.Name = fields[0]

	for _, field := range fields[1:] {
		eq := strings.Index(field, "=")
		if eq < 0 {
			return meta, fmt.Errorf("malformed source field: %v", field)
		}
		key := field[:eq]
		value := field[eq+1:]

		var err error
		switch key {
		case "server":
			meta.Server = value
		case "port":
			meta.Port, err = strconv.Atoi(value)
		case "user":
			meta.User = value
		case "password", "pass":
			meta.Password = value
		case "sessionID":
			meta.SessionID = value
		case "encrypted":
			meta.Encrypted, err = strconv.ParseBool(value)
		case "imageID":
			meta.ImageID, err = strconv.ParseInt(value, 10, 64)
		case "pixelsID":
			meta.PixelsID, err = strconv.ParseInt(value, 10, 64)
		default:
			return meta, fmt.Errorf("unknown source field: %v", key)
		}
		if err != nil {
			return meta, fmt.Errorf("bad value for source field %v: %v", key, err)
		}
	}

	return meta, nil
}
