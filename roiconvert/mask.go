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

// RealMask - a local geometric view over one remote shape record. The view
// holds a non-owning reference to the shape: it has no position state of its
// own, so moving the centroid mutates the remote record in place.
type RealMask interface {
	// Test - point membership under this mask's boundary convention
	Test(x float64, y float64) bool

	Boundary() BoundaryType

	// Center - the centroid. Writes to the returned point go through to the
	// underlying shape's position fields.
	Center() *MaskPoint

	// Shape - the wrapped remote record, shared not copied
	Shape() omeromodel.ShapeData
}

// MaskPoint - a mutable point whose position writes back to the shape that
// produced it
type MaskPoint struct {
	pos    [2]float64
	update func(x float64, y float64)
}

func makeMaskPoint(x float64, y float64, update func(x float64, y float64)) *MaskPoint {
	return &MaskPoint{pos: [2]float64{x, y}, update: update}
}

func (p *MaskPoint) X() float64 {
	return p.pos[0]
}

func (p *MaskPoint) Y() float64 {
	return p.pos[1]
}

// SetPosition - moves the point, and with it the shape it views
func (p *MaskPoint) SetPosition(x float64, y float64) {
	p.pos[0] = x
	p.pos[1] = y
	p.update(x, y)
}

// Move - relative form of SetPosition
func (p *MaskPoint) Move(dx float64, dy float64) {
	p.SetPosition(p.pos[0]+dx, p.pos[1]+dy)
}
