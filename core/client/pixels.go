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

	"github.com/pkg/errors"

	"github.com/stoffelc/imagej-omero/core/omeroerr"
)

// PixelsInfo - dimensional metadata for one remote pixels object
type PixelsInfo struct {
	PixelsID  int64    `json:"pixelsId"`
	SizeX     int      `json:"sizeX"`
	SizeY     int      `json:"sizeY"`
	SizeZ     int      `json:"sizeZ"`
	SizeC     int      `json:"sizeC"`
	SizeT     int      `json:"sizeT"`
	PhysSizeX *float64 `json:"physSizeX,omitempty"`
	PhysSizeY *float64 `json:"physSizeY,omitempty"`
	PhysSizeZ *float64 `json:"physSizeZ,omitempty"`
	PhysSizeC *int     `json:"physSizeC,omitempty"`
	PhysSizeT *float64 `json:"physSizeT,omitempty"`
	PixelType string   `json:"pixelType"`
}

// RawPixelsStore - tile-level access to one pixels object on the server.
// GetTile/SetPlane block for the round trip. Writers must call Save before
// Close or the server discards the written planes.
type RawPixelsStore interface {
	GetTile(z int, c int, t int, x int, y int, w int, h int) ([]byte, error)
	SetPlane(plane []byte, z int, c int, t int) error
	Save() error
	Close() error
}

// GetPixelsInfo - fetches dimensional metadata for an image's pixels
func GetPixelsInfo(sess Session, imageID int64) (PixelsInfo, error) {
	info := PixelsInfo{}

	result, err := sess.Call("pixels.info", map[string]interface{}{"imageId": imageID})
	if err != nil {
		return info, err
	}

	if err := json.Unmarshal(result, &info); err != nil {
		return info, omeroerr.MakeCommunicationError("pixels.info", errors.Wrap(err, "bad pixels.info response"))
	}
	return info, nil
}

// OpenPixels - opens a raw pixels store for reading an existing pixels object
func OpenPixels(sess Session, pixelsID int64) (RawPixelsStore, error) {
	_, err := sess.Call("pixels.open", map[string]interface{}{"pixelsId": pixelsID})
	if err != nil {
		return nil, err
	}
	return &remotePixelsStore{sess: sess, pixelsID: pixelsID}, nil
}

// CreatePixels - creates a new pixels object to write planes into, returning
// a store bound to it
func CreatePixels(sess Session, info PixelsInfo) (RawPixelsStore, error) {
	result, err := sess.Call("pixels.create", map[string]interface{}{"info": info})
	if err != nil {
		return nil, err
	}

	created := struct {
		PixelsID int64 `json:"pixelsId"`
	}{}
	if err := json.Unmarshal(result, &created); err != nil {
		return nil, omeroerr.MakeCommunicationError("pixels.create", errors.Wrap(err, "bad pixels.create response"))
	}

	return &remotePixelsStore{sess: sess, pixelsID: created.PixelsID}, nil
}

type remotePixelsStore struct {
	sess     Session
	pixelsID int64
}

func (s *remotePixelsStore) GetTile(z int, c int, t int, x int, y int, w int, h int) ([]byte, error) {
	result, err := s.sess.Call("pixels.getTile", map[string]interface{}{
		"pixelsId": s.pixelsID,
		"z":        z, "c": c, "t": t,
		"x": x, "y": y, "w": w, "h": h,
	})
	if err != nil {
		return nil, err
	}

	tile := struct {
		Bytes []byte `json:"bytes"`
	}{}
	if err := json.Unmarshal(result, &tile); err != nil {
		return nil, omeroerr.MakeCommunicationError("pixels.getTile", errors.Wrap(err, "bad tile response"))
	}
	return tile.Bytes, nil
}

func (s *remotePixelsStore) SetPlane(plane []byte, z int, c int, t int) error {
	_, err := s.sess.Call("pixels.setPlane", map[string]interface{}{
		"pixelsId": s.pixelsID,
		"z":        z, "c": c, "t": t,
		"bytes": plane,
	})
	return err
}

func (s *remotePixelsStore) Save() error {
	_, err := s.sess.Call("pixels.save", map[string]interface{}{"pixelsId": s.pixelsID})
	return err
}

func (s *remotePixelsStore) Close() error {
	_, err := s.sess.Call("pixels.close", map[string]interface{}{"pixelsId": s.pixelsID})
	return err
}
