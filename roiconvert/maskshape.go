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

package roiconvert

import (
	"math"

	"github.com/stoffelc/imagej-omero/core/omeromodel"
)

// BitMask - pixel mask region. Membership is per pixel, there is no
// continuous boundary, so the boundary mode is always unspecified.
type BitMask struct {
	shape *omeromodel.MaskData
}

func NewBitMask(shape *omeromodel.MaskData) *BitMask {
	return &BitMask{shape: shape}
}

func (m *BitMask) Test(x float64, y float64) bool {
	px := int(math.Floor(x - m.shape.X))
	py := int(math.Floor(y - m.shape.Y))
	return m.shape.BitAt(px, py)
}

func (m *BitMask) Boundary() BoundaryType { return BoundaryUnspecified }

func (m *BitMask) Shape() omeromodel.ShapeData { return m.shape }

func (m *BitMask) Center() *MaskPoint {
	shape := m.shape
	return makeMaskPoint(
		shape.X+float64(shape.Width)/2,
		shape.Y+float64(shape.Height)/2,
		func(x float64, y float64) {
			shape.X = x - float64(shape.Width)/2
			shape.Y = y - float64(shape.Height)/2
		})
}
