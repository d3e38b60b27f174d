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

package client

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/omeroerr"
	"github.com/stoffelc/imagej-omero/core/rtypes"
)

// MockSession - in-memory Session for tests. Inputs are what GetInput serves,
// Outputs collects what SetOutput wrote.
type MockSession struct {
	Props   map[string]string
	Inputs  map[string]rtypes.RType
	Outputs map[string]rtypes.RType

	// CallResults maps op name to a canned JSON result, CallErr fails every Call
	CallResults map[string]json.RawMessage
	CallErr     error
	Calls       []string

	Closed bool
}

func MakeMockSession() *MockSession {
	return &MockSession{
		Props:       map[string]string{},
		Inputs:      map[string]rtypes.RType{},
		Outputs:     map[string]rtypes.RType{},
		CallResults: map[string]json.RawMessage{},
	}
}

func (s *MockSession) Property(name string) string {
	return s.Props[name]
}

func (s *MockSession) GetInputKeys() ([]string, error) {
	if s.CallErr != nil {
		return nil, s.CallErr
	}
	keys := []string{}
	for key := range s.Inputs {
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *MockSession) GetInput(name string) (rtypes.RType, error) {
	if s.CallErr != nil {
		return nil, s.CallErr
	}
	return s.Inputs[name], nil
}

func (s *MockSession) SetOutput(name string, value rtypes.RType) error {
	if s.CallErr != nil {
		return s.CallErr
	}
	s.Outputs[name] = value
	return nil
}

func (s *MockSession) Call(op string, params map[string]interface{}) (json.RawMessage, error) {
	s.Calls = append(s.Calls, op)
	if s.CallErr != nil {
		return nil, s.CallErr
	}
	if result, ok := s.CallResults[op]; ok {
		return result, nil
	}
	return json.RawMessage(`{}`), nil
}

func (s *MockSession) Close() {
	s.Closed = true
}

// MockTransfer - in-memory TransferService. Uploads assign sequential ids and
// remember what was sent, downloads serve what was stored with MakeMock* or
// uploaded earlier.
type MockTransfer struct {
	Images map[int64]*dataset.Dataset
	Tables map[int64]*dataset.Table

	UploadedImages []int64
	UploadedTables []int64

	// Err fails every operation with a CommunicationError
	Err error

	nextID int64
}

func MakeMockTransfer() *MockTransfer {
	return &MockTransfer{
		Images: map[int64]*dataset.Dataset{},
		Tables: map[int64]*dataset.Table{},
		nextID: 100,
	}
}

func (t *MockTransfer) UploadImage(sess Session, img *dataset.Dataset) (int64, error) {
	if t.Err != nil {
		return 0, t.Err
	}
	t.nextID++
	img.ID = t.nextID
	t.Images[t.nextID] = img
	t.UploadedImages = append(t.UploadedImages, t.nextID)
	return t.nextID, nil
}

func (t *MockTransfer) DownloadImage(sess Session, imageID int64) (*dataset.Dataset, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	if img, ok := t.Images[imageID]; ok {
		return img, nil
	}
	return nil, omeroerr.MakeCommunicationError("image.download", fmt.Errorf("no image %v", imageID))
}

func (t *MockTransfer) UploadTable(cred Credentials, name string, table *dataset.Table) (int64, error) {
	if t.Err != nil {
		return 0, t.Err
	}
	t.nextID++
	table.ID = t.nextID
	t.Tables[t.nextID] = table
	t.UploadedTables = append(t.UploadedTables, t.nextID)
	return t.nextID, nil
}

func (t *MockTransfer) DownloadTable(cred Credentials, tableID int64) (*dataset.Table, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	if table, ok := t.Tables[tableID]; ok {
		return table, nil
	}
	return nil, omeroerr.MakeCommunicationError("table.download", fmt.Errorf("no table %v", tableID))
}

func (t *MockTransfer) DownloadThumbnail(sess Session, imageID int64, maxWidth int) (image.Image, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	return image.NewGray(image.Rect(0, 0, maxWidth, maxWidth)), nil
}

// MockPixelsStore - in-memory RawPixelsStore keyed by (z,c,t)
type MockPixelsStore struct {
	SizeX  int
	SizeY  int
	Bpp    int
	Planes map[string][]byte
	Saved  bool
	Closed bool
}

func MakeMockPixelsStore(sizeX int, sizeY int, bpp int) *MockPixelsStore {
	return &MockPixelsStore{
		SizeX:  sizeX,
		SizeY:  sizeY,
		Bpp:    bpp,
		Planes: map[string][]byte{},
	}
}

func planeKey(z int, c int, t int) string {
	return fmt.Sprintf("%v-%v-%v", z, c, t)
}

func (s *MockPixelsStore) GetTile(z int, c int, t int, x int, y int, w int, h int) ([]byte, error) {
	plane, ok := s.Planes[planeKey(z, c, t)]
	if !ok {
		return nil, omeroerr.MakeCommunicationError("pixels.getTile", fmt.Errorf("no plane z=%v c=%v t=%v", z, c, t))
	}

	tile := make([]byte, 0, w*h*s.Bpp)
	for row := y; row < y+h; row++ {
		start := (row*s.SizeX + x) * s.Bpp
		tile = append(tile, plane[start:start+w*s.Bpp]...)
	}
	return tile, nil
}

func (s *MockPixelsStore) SetPlane(plane []byte, z int, c int, t int) error {
	s.Planes[planeKey(z, c, t)] = plane
	return nil
}

func (s *MockPixelsStore) Save() error {
	s.Saved = true
	return nil
}

func (s *MockPixelsStore) Close() error {
	s.Closed = true
	return nil
}
