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

	"github.com/stoffelc/imagej-omero/core/client"
)

// Reader - reads image planes from a remote pixels object. The session and
// pixels store are opened lazily on the first plane access, so constructing
// a Reader is free and metadata-only callers never touch the network.
type Reader struct {
	Meta      Metadata
	Connect   ConnectFunc
	OpenStore OpenStoreFunc

	sess  client.Session
	store client.RawPixelsStore
}

func NewReader(meta Metadata) *Reader {
	return &Reader{Meta: meta, Connect: client.Connect, OpenStore: client.OpenPixels}
}

func (r *Reader) init() error {
	if r.store != nil {
		return nil
	}

	sess, err := r.Connect(r.Meta.ConnectInfo())
	if err != nil {
		return err
	}

	if !r.Meta.populated {
		info, err := client.GetPixelsInfo(sess, r.Meta.ImageID)
		if err != nil {
			sess.Close()
			return err
		}
		r.Meta.PopulateFromPixels(info)
	}

	store, err := r.OpenStore(sess, r.Meta.PixelsID)
	if err != nil {
		sess.Close()
		return err
	}

	r.sess = sess
	r.store = store
	return nil
}

// OpenPlane - reads a w*h tile at (x, y) from the given plane. Pass
// x=0, y=0, w=SizeX, h=SizeY for the whole plane.
func (r *Reader) OpenPlane(planeIndex int, x int, y int, w int, h int) ([]byte, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	z, c, t, err := r.Meta.RasterToPosition(planeIndex)
	if err != nil {
		return nil, err
	}

	if x < 0 || y < 0 || x+w > r.Meta.SizeX || y+h > r.Meta.SizeY {
		return nil, fmt.Errorf("tile %vx%v at (%v,%v) outside %vx%v plane", w, h, x, y, r.Meta.SizeX, r.Meta.SizeY)
	}

	return r.store.GetTile(z, c, t, x, y, w, h)
}

// Close - closes the pixels store and session if they were ever opened
func (r *Reader) Close() error {
	if r.store == nil {
		return nil
	}

	err := r.store.Close()
	r.sess.Close()

	r.store = nil
	r.sess = nil
	return err
}
