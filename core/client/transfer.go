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
	"image"
	"strconv"

	"github.com/pkg/errors"

	"github.com/stoffelc/imagej-omero/core/dataset"
	"github.com/stoffelc/imagej-omero/core/imageedit"
	"github.com/stoffelc/imagej-omero/core/omeroerr"
)

// Credentials - a derived credentials record for table transfer, built from
// a live session's connection properties. Table reads/writes go through a
// separate gateway connection on the server, hence the separate record.
type Credentials struct {
	Server   string
	Port     int
	User     string
	Password string
}

// MakeCredentials - builds a Credentials record matching the given session
func MakeCredentials(sess Session) Credentials {
	port := DefaultPort
	if p := sess.Property("omero.port"); len(p) > 0 {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		}
	}
	return Credentials{
		Server:   sess.Property("omero.host"),
		Port:     port,
		User:     sess.Property("omero.user"),
		Password: sess.Property("omero.pass"),
	}
}

// TransferService - blocking upload/download of the two resource types.
// Every method is a network round trip, fallible with a CommunicationError.
type TransferService interface {
	UploadImage(sess Session, image *dataset.Dataset) (int64, error)
	DownloadImage(sess Session, imageID int64) (*dataset.Dataset, error)
	UploadTable(cred Credentials, name string, table *dataset.Table) (int64, error)
	DownloadTable(cred Credentials, tableID int64) (*dataset.Table, error)
	DownloadThumbnail(sess Session, imageID int64, maxWidth int) (image.Image, error)
}

// DialFunc - opens a fresh session from a credentials record. Table transfer
// needs one because the table gateway lives on its own connection.
type DialFunc func(cred Credentials) (Session, error)

// DialCredentials - the default DialFunc, connecting over websocket
func DialCredentials(cred Credentials) (Session, error) {
	return Connect(ConnectInfo{
		Host: cred.Server,
		Port: cred.Port,
		User: cred.User,
		Pass: cred.Password,
	})
}

type remoteTransfer struct {
	dial DialFunc
}

// NewTransferService - the production TransferService. dial may be nil, in
// which case table transfer dials websocket sessions itself.
func NewTransferService(dial DialFunc) TransferService {
	if dial == nil {
		dial = DialCredentials
	}
	return &remoteTransfer{dial: dial}
}

// Wire forms. json encodes the plane byte slices as base64.
type wireImage struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
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
	Planes    [][]byte `json:"planes"`
}

type wireTable struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Headers []string    `json:"headers"`
	Rows    [][]float64 `json:"rows"`
}

type wireID struct {
	ID int64 `json:"id"`
}

func (t *remoteTransfer) UploadImage(sess Session, img *dataset.Dataset) (int64, error) {
	payload := wireImage{
		Name:      img.Name,
		SizeX:     img.SizeX,
		SizeY:     img.SizeY,
		SizeZ:     img.SizeZ,
		SizeC:     img.SizeC,
		SizeT:     img.SizeT,
		PhysSizeX: img.PhysSizeX,
		PhysSizeY: img.PhysSizeY,
		PhysSizeZ: img.PhysSizeZ,
		PhysSizeC: img.PhysSizeC,
		PhysSizeT: img.PhysSizeT,
		PixelType: string(img.PixelType),
		Planes:    img.Planes,
	}

	result, err := sess.Call("image.upload", map[string]interface{}{"image": payload})
	if err != nil {
		return 0, err
	}

	id := wireID{}
	if err := json.Unmarshal(result, &id); err != nil {
		return 0, omeroerr.MakeCommunicationError("image.upload", errors.Wrap(err, "bad upload response"))
	}

	img.ID = id.ID
	return id.ID, nil
}

func (t *remoteTransfer) DownloadImage(sess Session, imageID int64) (*dataset.Dataset, error) {
	result, err := sess.Call("image.download", map[string]interface{}{"id": imageID})
	if err != nil {
		return nil, err
	}

	w := wireImage{}
	if err := json.Unmarshal(result, &w); err != nil {
		return nil, omeroerr.MakeCommunicationError("image.download", errors.Wrap(err, "bad download response"))
	}

	return &dataset.Dataset{
		ID:        w.ID,
		Name:      w.Name,
		SizeX:     w.SizeX,
		SizeY:     w.SizeY,
		SizeZ:     w.SizeZ,
		SizeC:     w.SizeC,
		SizeT:     w.SizeT,
		PhysSizeX: w.PhysSizeX,
		PhysSizeY: w.PhysSizeY,
		PhysSizeZ: w.PhysSizeZ,
		PhysSizeC: w.PhysSizeC,
		PhysSizeT: w.PhysSizeT,
		PixelType: dataset.PixelType(w.PixelType),
		Planes:    w.Planes,
	}, nil
}

func (t *remoteTransfer) UploadTable(cred Credentials, name string, table *dataset.Table) (int64, error) {
	sess, err := t.dial(cred)
	if err != nil {
		return 0, err
	}
	defer sess.Close()

	payload := wireTable{
		Name:    name,
		Headers: table.Headers,
		Rows:    table.Rows,
	}

	result, err := sess.Call("table.upload", map[string]interface{}{"table": payload})
	if err != nil {
		return 0, err
	}

	id := wireID{}
	if err := json.Unmarshal(result, &id); err != nil {
		return 0, omeroerr.MakeCommunicationError("table.upload", errors.Wrap(err, "bad upload response"))
	}

	table.ID = id.ID
	return id.ID, nil
}

func (t *remoteTransfer) DownloadTable(cred Credentials, tableID int64) (*dataset.Table, error) {
	sess, err := t.dial(cred)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	result, err := sess.Call("table.download", map[string]interface{}{"id": tableID})
	if err != nil {
		return nil, err
	}

	w := wireTable{}
	if err := json.Unmarshal(result, &w); err != nil {
		return nil, omeroerr.MakeCommunicationError("table.download", errors.Wrap(err, "bad download response"))
	}

	return &dataset.Table{
		ID:      w.ID,
		Name:    w.Name,
		Headers: w.Headers,
		Rows:    w.Rows,
	}, nil
}

// DownloadThumbnail - downloads the image and scales its first plane down to
// a preview no wider than maxWidth
func (t *remoteTransfer) DownloadThumbnail(sess Session, imageID int64, maxWidth int) (image.Image, error) {
	img, err := t.DownloadImage(sess, imageID)
	if err != nil {
		return nil, err
	}

	preview, err := imageedit.GrayImageFromPlane(img, 0)
	if err != nil {
		return nil, err
	}

	if preview.Bounds().Dx() <= maxWidth {
		return preview, nil
	}
	return imageedit.ScaleImage(preview, maxWidth), nil
}
