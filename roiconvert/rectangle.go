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
	"github.com/stoffelc/imagej-omero/core/omeromodel"
)

// OpenRectangle - rectangle region excluding its edges
type OpenRectangle struct {
	shape *omeromodel.RectangleData
}

// ClosedRectangle - rectangle region including its edges
type ClosedRectangle struct {
	shape *omeromodel.RectangleData
}

func NewOpenRectangle(shape *omeromodel.RectangleData) *OpenRectangle {
	return &OpenRectangle{shape: shape}
}

func NewClosedRectangle(shape *omeromodel.RectangleData) *ClosedRectangle {
	return &ClosedRectangle{shape: shape}
}

func (r *OpenRectangle) Test(x float64, y float64) bool {
	minX := r.shape.X
	minY := r.shape.Y
	maxX := minX + r.shape.Width
	maxY := minY + r.shape.Height

	return x > minX && x < maxX && y > minY && y < maxY
}

func (r *ClosedRectangle) Test(x float64, y float64) bool {
	minX := r.shape.X
	minY := r.shape.Y
	maxX := minX + r.shape.Width
	maxY := minY + r.shape.Height

	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

func (r *OpenRectangle) Boundary() BoundaryType   { return BoundaryOpen }
func (r *ClosedRectangle) Boundary() BoundaryType { return BoundaryClosed }

func (r *OpenRectangle) Shape() omeromodel.ShapeData   { return r.shape }
func (r *ClosedRectangle) Shape() omeromodel.ShapeData { return r.shape }

func (r *OpenRectangle) Center() *MaskPoint {
	return rectangleCenter(r.shape)
}

func (r *ClosedRectangle) Center() *MaskPoint {
	return rectangleCenter(r.shape)
}

func rectangleCenter(shape *omeromodel.RectangleData) *MaskPoint {
	return makeMaskPoint(
		shape.X+shape.Width/2,
		shape.Y+shape.Height/2,
		func(x float64, y float64) {
			// position state lives in the wrapped OMERO shape, so moving the
			// centre means moving the shape
			shape.X = x - shape.Width/2
			shape.Y = y - shape.Height/2
		})
}
