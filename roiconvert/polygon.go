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

// ClosedPolygon - polygon region, edges and vertices included
type ClosedPolygon struct {
	shape *omeromodel.PolygonData
}

// OpenPolygon - polygon region, interior only
type OpenPolygon struct {
	shape *omeromodel.PolygonData
}

func NewClosedPolygon(shape *omeromodel.PolygonData) *ClosedPolygon {
	return &ClosedPolygon{shape: shape}
}

func NewOpenPolygon(shape *omeromodel.PolygonData) *OpenPolygon {
	return &OpenPolygon{shape: shape}
}

// insidePolygon - even-odd ray cast, boundary points excluded (resolved
// separately by onPolygonEdge)
func insidePolygon(points []omeromodel.Point2D, x float64, y float64) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := points[i]
		pj := points[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

func onPolygonEdge(points []omeromodel.Point2D, x float64, y float64) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		edge := omeromodel.LineData{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
		if onSegment(&edge, x, y) {
			return true
		}
	}
	return false
}

func (p *ClosedPolygon) Test(x float64, y float64) bool {
	return insidePolygon(p.shape.Points, x, y) || onPolygonEdge(p.shape.Points, x, y)
}

func (p *OpenPolygon) Test(x float64, y float64) bool {
	return insidePolygon(p.shape.Points, x, y) && !onPolygonEdge(p.shape.Points, x, y)
}

func (p *ClosedPolygon) Boundary() BoundaryType { return BoundaryClosed }
func (p *OpenPolygon) Boundary() BoundaryType   { return BoundaryOpen }

func (p *ClosedPolygon) Shape() omeromodel.ShapeData { return p.shape }
func (p *OpenPolygon) Shape() omeromodel.ShapeData   { return p.shape }

func (p *ClosedPolygon) Center() *MaskPoint {
	return vertexCenter(p.shape.Points, func(dx float64, dy float64) {
		translatePoints(p.shape.Points, dx, dy)
	})
}

func (p *OpenPolygon) Center() *MaskPoint {
	return vertexCenter(p.shape.Points, func(dx float64, dy float64) {
		translatePoints(p.shape.Points, dx, dy)
	})
}

// vertexCenter - the vertex mean, with write-through translating every vertex
func vertexCenter(points []omeromodel.Point2D, translate func(dx float64, dy float64)) *MaskPoint {
	cx, cy := vertexMean(points)
	return makeMaskPoint(cx, cy, func(x float64, y float64) {
		curX, curY := vertexMean(points)
		translate(x-curX, y-curY)
	})
}

func vertexMean(points []omeromodel.Point2D) (float64, float64) {
	if len(points) == 0 {
		return math.NaN(), math.NaN()
	}
	sumX := 0.0
	sumY := 0.0
	for _, pt := range points {
		sumX += pt.X
		sumY += pt.Y
	}
	return sumX / float64(len(points)), sumY / float64(len(points))
}

func translatePoints(points []omeromodel.Point2D, dx float64, dy float64) {
	for i := range points {
		points[i].X += dx
		points[i].Y += dy
	}
}

// ClosedPolyline - polyline, every segment point included
type ClosedPolyline struct {
	shape *omeromodel.PolylineData
}

// OpenPolyline - polyline excluding its two terminal endpoints
type OpenPolyline struct {
	shape *omeromodel.PolylineData
}

func NewClosedPolyline(shape *omeromodel.PolylineData) *ClosedPolyline {
	return &ClosedPolyline{shape: shape}
}

func NewOpenPolyline(shape *omeromodel.PolylineData) *OpenPolyline {
	return &OpenPolyline{shape: shape}
}

func onPolyline(points []omeromodel.Point2D, x float64, y float64) bool {
	for i := 0; i+1 < len(points); i++ {
		seg := omeromodel.LineData{X1: points[i].X, Y1: points[i].Y, X2: points[i+1].X, Y2: points[i+1].Y}
		if onSegment(&seg, x, y) {
			return true
		}
	}
	return false
}

func (p *ClosedPolyline) Test(x float64, y float64) bool {
	return onPolyline(p.shape.Points, x, y)
}

func (p *OpenPolyline) Test(x float64, y float64) bool {
	if len(p.shape.Points) == 0 {
		return false
	}
	first := p.shape.Points[0]
	last := p.shape.Points[len(p.shape.Points)-1]
	if (x == first.X && y == first.Y) || (x == last.X && y == last.Y) {
		return false
	}
	return onPolyline(p.shape.Points, x, y)
}

func (p *ClosedPolyline) Boundary() BoundaryType { return BoundaryClosed }
func (p *OpenPolyline) Boundary() BoundaryType   { return BoundaryOpen }

func (p *ClosedPolyline) Shape() omeromodel.ShapeData { return p.shape }
func (p *OpenPolyline) Shape() omeromodel.ShapeData   { return p.shape }

func (p *ClosedPolyline) Center() *MaskPoint {
	return vertexCenter(p.shape.Points, func(dx float64, dy float64) {
		translatePoints(p.shape.Points, dx, dy)
	})
}

func (p *OpenPolyline) Center() *MaskPoint {
	return vertexCenter(p.shape.Points, func(dx float64, dy float64) {
		translatePoints(p.shape.Points, dx, dy)
	})
}
