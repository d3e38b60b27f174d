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

// OpenEllipse - elliptical region excluding its boundary curve
type OpenEllipse struct {
	shape *omeromodel.EllipseData
}

// ClosedEllipse - elliptical region including its boundary curve
type ClosedEllipse struct {
	shape *omeromodel.EllipseData
}

func NewOpenEllipse(shape *omeromodel.EllipseData) *OpenEllipse {
	return &OpenEllipse{shape: shape}
}

func NewClosedEllipse(shape *omeromodel.EllipseData) *ClosedEllipse {
	return &ClosedEllipse{shape: shape}
}

func (e *OpenEllipse) Test(x float64, y float64) bool {
	distanceX := (x - e.shape.X) / e.shape.RadiusX
	distanceY := (y - e.shape.Y) / e.shape.RadiusY

	return distanceX*distanceX+distanceY*distanceY < 1.0
}

func (e *ClosedEllipse) Test(x float64, y float64) bool {
	distanceX := (x - e.shape.X) / e.shape.RadiusX
	distanceY := (y - e.shape.Y) / e.shape.RadiusY

	return distanceX*distanceX+distanceY*distanceY <= 1.0
}

func (e *OpenEllipse) Boundary() BoundaryType   { return BoundaryOpen }
func (e *ClosedEllipse) Boundary() BoundaryType { return BoundaryClosed }

func (e *OpenEllipse) Shape() omeromodel.ShapeData   { return e.shape }
func (e *ClosedEllipse) Shape() omeromodel.ShapeData { return e.shape }

func (e *OpenEllipse) Center() *MaskPoint {
	return ellipseCenter(e.shape)
}

func (e *ClosedEllipse) Center() *MaskPoint {
	return ellipseCenter(e.shape)
}

func ellipseCenter(shape *omeromodel.EllipseData) *MaskPoint {
	return makeMaskPoint(shape.X, shape.Y, func(x float64, y float64) {
		shape.X = x
		shape.Y = y
	})
}
