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
	"github.com/stoffelc/imagej-omero/core/logger"
)

// CreateStoreFunc - how the writer creates a pixels object on a session
type CreateStoreFunc func(sess client.Session, info client.PixelsInfo) (client.RawPixelsStore, error)

// Writer - writes image planes to a new pixels object on the server. The
// session and pixels object are created lazily on the first plane written.
// Nothing is committed until Close, which saves the written planes before
// tearing the store down.
type Writer struct {
	Meta        Metadata
	Connect     ConnectFunc
	CreateStore CreateStoreFunc

	log logger.ILogger

	sess  client.Session
	store client.RawPixelsStore
	wrote bool
}

func NewWriter(meta Metadata, log logger.ILogger) *Writer {
	meta.populated = true
	return &Writer{
		Meta:        meta,
		Connect:     client.Connect,
		CreateStore: client.CreatePixels,
		log:         log,
	}
}

func (w *Writer) init() error {
	if w.store != nil {
		return nil
	}

	sess, err := w.Connect(w.Meta.ConnectInfo())
	if err != nil {
		return err
	}

	store, err := w.CreateStore(sess, w.Meta.PixelsInfo())
	if err != nil {
		sess.Close()
		return err
	}

	w.sess = sess
	w.store = store
	return nil
}

// WritePlane - sends one full XY plane to the server. The plane must be
// exactly SizeX*SizeY pixels of the metadata's pixel type.
func (w *Writer) WritePlane(plane []byte, planeIndex int) error {
	if err := w.init(); err != nil {
		return err
	}

	z, c, t, err := w.Meta.RasterToPosition(planeIndex)
	if err != nil {
		return err
	}

	bpp, err := w.Meta.PixelType.BytesPerPixel()
	if err != nil {
		return err
	}

	expected := w.Meta.SizeX * w.Meta.SizeY * bpp
	if len(plane) != expected {
		return fmt.Errorf("plane %v is %v bytes, expected %v", planeIndex, len(plane), expected)
	}

	if err := w.store.SetPlane(plane, z, c, t); err != nil {
		return err
	}

	w.wrote = true
	return nil
}

// Close - saves the written planes, then closes the store and session. A
// failed save is still followed by teardown so the session is not leaked.
func (w *Writer) Close() error {
	if w.store == nil {
		return nil
	}

	var err error
	if w.wrote {
		if err = w.store.Save(); err != nil {
			w.log.Errorf("Failed to save written planes: %v", err)
		}
	}

	if closeErr := w.store.Close(); err == nil {
		err = closeErr
	}
	w.sess.Close()

	w.store = nil
	w.sess = nil
	return err
}
