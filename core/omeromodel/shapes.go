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

// Wire-side records for OMERO ROIs and their shapes. These mirror what the
// server stores: position/size fields per shape kind plus a free-text field
// shared by every kind. The text field is where the bridge records boundary
// semantics, since the remote schema has no native boundary attribute.
package omeromodel

import "fmt"

// Point2D - a 2D coordinate
type Point2D struct {
	X float64
	Y float64
}

// ShapeAttrs - fields common to every shape kind. Embedded by each concrete
// shape, which is what makes the ShapeData interface below work.
type ShapeAttrs struct {
	ID   int64
	Text string

	// Plane attachment, -1 means all planes
	TheZ int
	TheC int
	TheT int
}

func (a *ShapeAttrs) Attrs() *ShapeAttrs {
	return a
}

// ShapeData - any remote shape record. Only shapes in this package
// implement it.
type ShapeData interface {
	Attrs() *ShapeAttrs
	ShapeKind() string
}

type RectangleData struct {
	ShapeAttrs
	X      float64
	Y      float64
	Width  float64
	Height float64
}

type EllipseData struct {
	ShapeAttrs
	// X, Y is the centre, not a corner
	X       float64
	Y       float64
	RadiusX float64
	RadiusY float64
}

type PointData struct {
	ShapeAttrs
	X float64
	Y float64
}

type LineData struct {
	ShapeAttrs
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

type PolygonData struct {
	ShapeAttrs
	Points []Point2D
}

type PolylineData struct {
	ShapeAttrs
	Points []Point2D
}

// MaskData - a rectangular bitmask anchored at X, Y. Bit set = pixel is in
// the region. Bits are stored row major, one bit per pixel, rows padded to
// whole bytes.
type MaskData struct {
	ShapeAttrs
	X      float64
	Y      float64
	Width  int
	Height int
	Bits   []byte
}

func (RectangleData) ShapeKind() string { return "Rectangle" }
func (EllipseData) ShapeKind() string   { return "Ellipse" }
func (PointData) ShapeKind() string     { return "Point" }
func (LineData) ShapeKind() string      { return "Line" }
func (PolygonData) ShapeKind() string   { return "Polygon" }
func (PolylineData) ShapeKind() string  { return "Polyline" }
func (MaskData) ShapeKind() string      { return "Mask" }

// BitAt - reads the mask bit for pixel column px, row py (mask-local
// coordinates). Out of range reads false.
func (m *MaskData) BitAt(px int, py int) bool {
	if px < 0 || py < 0 || px >= m.Width || py >= m.Height {
		return false
	}
	bytesPerRow := (m.Width + 7) / 8
	idx := py*bytesPerRow + px/8
	if idx >= len(m.Bits) {
		return false
	}
	return m.Bits[idx]&(1<<(7-uint(px%8))) != 0
}

// SetBit - sets the mask bit for pixel column px, row py
func (m *MaskData) SetBit(px int, py int, on bool) error {
	if px < 0 || py < 0 || px >= m.Width || py >= m.Height {
		return fmt.Errorf("mask bit (%v,%v) outside %vx%v", px, py, m.Width, m.Height)
	}
	bytesPerRow := (m.Width + 7) / 8
	needed := bytesPerRow * m.Height
	for len(m.Bits) < needed {
		m.Bits = append(m.Bits, 0)
	}
	idx := py*bytesPerRow + px/8
	bit := byte(1 << (7 - uint(px%8)))
	if on {
		m.Bits[idx] |= bit
	} else {
		m.Bits[idx] &= ^bit
	}
	return nil
}
