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

// The local (ImageJ-side) object model the converters produce and consume.
// Four resource types exist: Dataset (an image), DatasetView and ImageDisplay
// (views composed over a Dataset), and Table. A resource's canonical remote
// representation is an integer id, which is 0 until the resource has been
// uploaded.
package dataset

import (
	"fmt"
)

// PixelType - string form of pixel storage types, matching OMERO's PixelsType
// enumeration values
type PixelType string

const (
	PixelUInt8  PixelType = "uint8"
	PixelInt8   PixelType = "int8"
	PixelUInt16 PixelType = "uint16"
	PixelInt16  PixelType = "int16"
	PixelUInt32 PixelType = "uint32"
	PixelInt32  PixelType = "int32"
	PixelFloat  PixelType = "float"
	PixelDouble PixelType = "double"
)

var pixelBytes = map[PixelType]int{
	PixelUInt8:  1,
	PixelInt8:   1,
	PixelUInt16: 2,
	PixelInt16:  2,
	PixelUInt32: 4,
	PixelInt32:  4,
	PixelFloat:  4,
	PixelDouble: 8,
}

// BytesPerPixel - storage size for a pixel type, error for unknown types
func (p PixelType) BytesPerPixel() (int, error) {
	if b, ok := pixelBytes[p]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("unknown pixel type: %v", p)
}

// Dataset - an image: 5 dimensional pixel data (X, Y, Z, channel, time) plus
// calibration. Planes are stored XY-plane-major in ZCT raster order.
type Dataset struct {
	ID   int64 // 0 until uploaded
	Name string

	SizeX int
	SizeY int
	SizeZ int
	SizeC int
	SizeT int

	// Physical pixel sizes. nil means uncalibrated on that axis.
	PhysSizeX *float64
	PhysSizeY *float64
	PhysSizeZ *float64
	PhysSizeC *int
	PhysSizeT *float64

	PixelType PixelType

	// One byte slice per XY plane, len(Planes) == SizeZ*SizeC*SizeT
	Planes [][]byte
}

// PlaneCount - how many XY planes this dataset holds
func (d *Dataset) PlaneCount() int {
	return d.SizeZ * d.SizeC * d.SizeT
}

// PlaneSize - bytes per XY plane
func (d *Dataset) PlaneSize() (int, error) {
	bpp, err := d.PixelType.BytesPerPixel()
	if err != nil {
		return 0, err
	}
	return d.SizeX * d.SizeY * bpp, nil
}

func (d *Dataset) String() string {
	return fmt.Sprintf("%v [%vx%vx%vx%vx%v %v]", d.Name, d.SizeX, d.SizeY, d.SizeZ, d.SizeC, d.SizeT, d.PixelType)
}

// DatasetView - a view composed over a Dataset. Carries no pixel data of its
// own, conversion always resolves through to the underlying Dataset.
type DatasetView struct {
	Data *Dataset
}

// ImageDisplay - a display composed over a DatasetView
type ImageDisplay struct {
	View *DatasetView
}

// ActiveDataset - the Dataset shown by this display, nil if empty
func (d *ImageDisplay) ActiveDataset() *Dataset {
	if d.View == nil {
		return nil
	}
	return d.View.Data
}

// NewView - wraps a dataset in a view
func NewView(d *Dataset) *DatasetView {
	return &DatasetView{Data: d}
}

// NewDisplay - wraps a dataset in a view and a display over it
func NewDisplay(d *Dataset) *ImageDisplay {
	return &ImageDisplay{View: NewView(d)}
}
