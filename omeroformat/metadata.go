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

// Read/write access to pixels on an OMERO server, presented like a local
// image format: a source string carries the connection details, a parser
// fills in dimensional metadata from the server, and reader/writer move
// planes through a raw pixels store.
package omeroformat

import (
	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/dataset"
)

// Metadata - everything needed to locate and describe one remote image
type Metadata struct {
	Name      string
	Server    string
	Port      int
	SessionID string
	User      string
	Password  string
	Encrypted bool

	ImageID  int64
	PixelsID int64

	SizeX int
	SizeY int
	SizeZ int
	SizeC int
	SizeT int

	PhysSizeX *float64
	PhysSizeY *float64
	PhysSizeZ *float64
	PhysSizeC *int
	PhysSizeT *float64

	PixelType dataset.PixelType

	populated bool
}

// ConnectInfo - connection parameters for this metadata's server
func (m *Metadata) ConnectInfo() client.ConnectInfo {
	port := m.Port
	if port == 0 {
		port = client.DefaultPort
	}
	return client.ConnectInfo{
		Host:      m.Server,
		Port:      port,
		User:      m.User,
		Pass:      m.Password,
		SessionID: m.SessionID,
		Encrypted: m.Encrypted,
	}
}

// PopulateFromPixels - copies dimensional metadata from a fetched pixels
// info record. Does nothing if already populated, so writer-set fields are
// not clobbered.
func (m *Metadata) PopulateFromPixels(info client.PixelsInfo) {
	if m.populated {
		return
	}

	m.PixelsID = info.PixelsID
	m.SizeX = info.SizeX
	m.SizeY = info.SizeY
	m.SizeZ = info.SizeZ
	m.SizeC = info.SizeC
	m.SizeT = info.SizeT
	m.PhysSizeX = info.PhysSizeX
	m.PhysSizeY = info.PhysSizeY
	m.PhysSizeZ = info.PhysSizeZ
	m.PhysSizeC = info.PhysSizeC
	m.PhysSizeT = info.PhysSizeT
	m.PixelType = dataset.PixelType(info.PixelType)
	m.populated = true
}

// PixelsInfo - the inverse of PopulateFromPixels, for creating pixels on
// the server when writing
func (m *Metadata) PixelsInfo() client.PixelsInfo {
	return client.PixelsInfo{
		PixelsID:  m.PixelsID,
		SizeX:     m.SizeX,
		SizeY:     m.SizeY,
		SizeZ:     m.SizeZ,
		SizeC:     m.SizeC,
		SizeT:     m.SizeT,
		PhysSizeX: m.PhysSizeX,
		PhysSizeY: m.PhysSizeY,
		PhysSizeZ: m.PhysSizeZ,
		PhysSizeC: m.PhysSizeC,
		PhysSizeT: m.PhysSizeT,
		PixelType: string(m.PixelType),
	}
}

// PlaneCount - number of XY planes the image holds
func (m *Metadata) PlaneCount() int {
	return m.SizeZ * m.SizeC * m.SizeT
}
