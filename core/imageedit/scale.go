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

// Helpers for turning downloaded pixel planes into preview images
package imageedit

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/stoffelc/imagej-omero/core/dataset"
)

func ScaleImage(img image.Image, newWidth int) image.Image {
	bounds := img.Bounds()

	// We want it to be a max of newWidth across, preserving the aspect ratio
	// we calculate the height here
	w := newWidth
	h := int(float32(bounds.Max.Y) / float32(bounds.Max.X) * float32(w))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img, img.Bounds(), draw.Over, nil)

	return dst
}

// GrayImageFromPlane - renders one XY plane of a dataset as an 8 bit
// grayscale image. Wider pixel types are windowed to the plane's own
// min/max range.
func GrayImageFromPlane(img *dataset.Dataset, planeIdx int) (image.Image, error) {
	if planeIdx < 0 || planeIdx >= len(img.Planes) {
		return nil, fmt.Errorf("plane %v out of range, image has %v", planeIdx, len(img.Planes))
	}

	values, err := planeValues(img, planeIdx)
	if err != nil {
		return nil, err
	}

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	scale := maxVal - minVal
	if scale <= 0 {
		scale = 1
	}

	out := image.NewGray(image.Rect(0, 0, img.SizeX, img.SizeY))
	for i, v := range values {
		out.Pix[i] = uint8((v - minVal) / scale * 255)
	}
	return out, nil
}

// planeValues - decodes a raw plane into float64 samples, pixel type aware
func planeValues(img *dataset.Dataset, planeIdx int) ([]float64, error) {
	raw := img.Planes[planeIdx]
	count := img.SizeX * img.SizeY
	values := make([]float64, count)

	bpp, err := img.PixelType.BytesPerPixel()
	if err != nil {
		return nil, err
	}
	if len(raw) < count*bpp {
		return nil, fmt.Errorf("plane %v has %v bytes, need %v", planeIdx, len(raw), count*bpp)
	}

	for i := 0; i < count; i++ {
		b := raw[i*bpp:]
		switch img.PixelType {
		case dataset.PixelUInt8:
			values[i] = float64(b[0])
		case dataset.PixelInt8:
			values[i] = float64(int8(b[0]))
		case dataset.PixelUInt16:
			values[i] = float64(binary.BigEndian.Uint16(b))
		case dataset.PixelInt16:
			values[i] = float64(int16(binary.BigEndian.Uint16(b)))
		case dataset.PixelUInt32:
			values[i] = float64(binary.BigEndian.Uint32(b))
		case dataset.PixelInt32:
			values[i] = float64(int32(binary.BigEndian.Uint32(b)))
		case dataset.PixelFloat:
			values[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(b)))
		case dataset.PixelDouble:
			values[i] = math.Float64frombits(binary.BigEndian.Uint64(b))
		default:
			return nil, fmt.Errorf("unknown pixel type: %v", img.PixelType)
		}
	}

	return values, nil
}
