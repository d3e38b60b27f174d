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

// A point or line region IS its boundary, so the open variants of these
// contain nothing (a point) or exclude the endpoints (a line).

// ClosedPoint - region containing exactly one point
type ClosedPoint struct {
	shape *omeromodel.PointData
}

// OpenPoint - the open variant, which is empty
type OpenPoint struct {
	shape *omeromodel.PointData
}

func NewClosedPoint(shape *omeromodel.PointData) *ClosedPoint {
	return &ClosedPoint{shape: shape}
}

func NewOpenPoint(shape *omeromodel.PointData) *OpenPoint {
	return &OpenPoint{shape: shape}
}

func (p *ClosedPoint) Test(x float64, y float64) bool {
	return x == p.shape.X && y == p.shape.Y
}

func (p *OpenPoint) Test(x float64, y float64) bool {
	return false
}

func (p *ClosedPoint) Boundary() BoundaryType { return BoundaryClosed }
func (p *OpenPoint) Boundary() BoundaryType   { return BoundaryOpen }

func (p *ClosedPoint) Shape() omeromodel.ShapeData { return p.shape }
func (p *OpenPoint) Shape() omeromodel.ShapeData   { return p.shape }

func (p *ClosedPoint) Center() *MaskPoint {
	return pointCenter(p.shape)
}

func (p *OpenPoint) Center() *MaskPoint {
	return pointCenter(p.shape)
}

func pointCenter(shape *omeromodel.PointData) *MaskPoint {
	return makeMaskPoint(shape.X, shape.Y, func(x float64, y float64) {
		shape.X = x
		shape.Y = y
	})
}

// ClosedLine - line segment including both endpoints
type ClosedLine struct {
	shape *omeromodel.LineData
}

// OpenLine - line segment excluding its endpoints
type OpenLine struct {
	shape *omeromodel.LineData
}

func NewClosedLine(shape *omeromodel.LineData) *ClosedLine {
	return &ClosedLine{shape: shape}
}

func NewOpenLine(shape *omeromodel.LineData) *OpenLine {
	return &OpenLine{shape: shape}
}

// how far off the infinite line a point may sit and still count as on it
const lineEpsilon = 1e-9

func onSegment(shape *omeromodel.LineData, x float64, y float64) bool {
	dx := shape.X2 - shape.X1
	dy := shape.Y2 - shape.Y1

	// cross product of (point - p1) with the direction: 0 means collinear
	cross := (x-shape.X1)*dy - (y-shape.Y1)*dx
	if math.Abs(cross) > lineEpsilon {
		return false
	}

	// projection parameter along the segment must be in [0, 1]
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return x == shape.X1 && y == shape.Y1
	}
	t := ((x-shape.X1)*dx + (y-shape.Y1)*dy) / lenSq
	return t >= 0 && t <= 1
}

func isEndpoint(shape *omeromodel.LineData, x float64, y float64) bool {
	return (x == shape.X1 && y == shape.Y1) || (x == shape.X2 && y == shape.Y2)
}

func (l *ClosedLine) Test(x float64, y float64) bool {
	return onSegment(l.shape, x, y)
}

func (l *OpenLine) Test(x float64, y float64) bool {
	return onSegment(l.shape, x, y) && !isEndpoint(l.shape, x, y)
}

func (l *ClosedLine) Boundary() BoundaryType { return BoundaryClosed }
func (l *OpenLine) Boundary() BoundaryType   { return BoundaryOpen }

func (l *ClosedLine) Shape() omeromodel.ShapeData { return l.shape }
func (l *OpenLine) Shape() omeromodel.ShapeData   { return l.shape }

func (l *ClosedLine) Center() *MaskPoint {
	return lineCenter(l.shape)
}

func (l *OpenLine) Center() *MaskPoint {
	return lineCenter(l.shape)
}

func lineCenter(shape *omeromodel.LineData) *MaskPoint {
	cx := (shape.X1 + shape.X2) / 2
	cy := (shape.Y1 + shape.Y2) / 2
	return makeMaskPoint(cx, cy, func(x float64, y float64) {
		// translate both endpoints so the midpoint lands on the new position
		dx := x - (shape.X1+shape.X2)/2
		dy := y - (shape.Y1+shape.Y2)/2
		shape.X1 += dx
		shape.Y1 += dy
		shape.X2 += dx
		shape.Y2 += dy
	})
}
