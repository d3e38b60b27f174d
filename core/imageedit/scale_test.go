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

package imageedit

import (
	"encoding/binary"
	"image"
	"math"
	"testing"

	"github.com/stoffelc/imagej-omero/core/dataset"
)

func TestScaleImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 4))

	dst := ScaleImage(src, 2)
	if dst.Bounds().Dx() != 2 {
		t.Errorf("Got width %v, want 2", dst.Bounds().Dx())
	}
	if dst.Bounds().Dy() != 1 {
		t.Errorf("Got height %v, want 1", dst.Bounds().Dy())
	}
}

func TestGrayImageFromPlane(t *testing.T) {
	img := &dataset.Dataset{
		SizeX: 2, SizeY: 1, SizeZ: 1, SizeC: 1, SizeT: 1,
		PixelType: dataset.PixelUInt16,
		Planes:    [][]byte{make([]byte, 4)},
	}
	binary.BigEndian.PutUint16(img.Planes[0][0:], 100)
	binary.BigEndian.PutUint16(img.Planes[0][2:], 300)

	preview, err := GrayImageFromPlane(img, 0)
	if err != nil {
		t.Fatalf("GrayImageFromPlane failed: %v", err)
	}

	gray, ok := preview.(*image.Gray)
	if !ok {
		t.Fatalf("Expected gray image, got %T", preview)
	}

	// min maps to 0, max to 255
	if gray.Pix[0] != 0 {
		t.Errorf("Got %v at min pixel, want 0", gray.Pix[0])
	}
	if gray.Pix[1] != 255 {
		t.Errorf("Got %v at max pixel, want 255", gray.Pix[1])
	}

	if _, err := GrayImageFromPlane(img, 5); err == nil {
		t.Error("Expected error for plane out of range")
	}
}

func TestPlaneStats(t *testing.T) {
	img := &dataset.Dataset{
		SizeX: 2, SizeY: 2, SizeZ: 1, SizeC: 1, SizeT: 1,
		PixelType: dataset.PixelDouble,
		Planes:    [][]byte{make([]byte, 32)},
	}
	for i, v := range []float64{1.0, 2.0, 3.0, 6.0} {
		binary.BigEndian.PutUint64(img.Planes[0][i*8:], math.Float64bits(v))
	}

	minVal, maxVal, mean, err := PlaneStats(img, 0)
	if err != nil {
		t.Fatalf("PlaneStats failed: %v", err)
	}
	if minVal != 1.0 || maxVal != 6.0 || mean != 3.0 {
		t.Errorf("Got min=%v max=%v mean=%v, want 1, 6, 3", minVal, maxVal, mean)
	}

	if _, _, _, err := PlaneStats(img, -1); err == nil {
		t.Error("Expected error for negative plane index")
	}

	short := &dataset.Dataset{SizeX: 4, SizeY: 4, PixelType: dataset.PixelUInt8, Planes: [][]byte{{1, 2}}}
	if _, _, _, err := PlaneStats(short, 0); err == nil {
		t.Error("Expected error for truncated plane")
	}
}
