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

// Conversion between local geometric regions (point-membership predicates
// with an explicit open/closed boundary convention) and OMERO's shape
// records. OMERO's schema has no boundary attribute, so the convention is
// recorded as a marker substring in each shape's free-text field.
package roiconvert

import (
	"strings"

	"github.com/stoffelc/imagej-omero/core/omeromodel"
)

// BoundaryType - whether points exactly on a shape's boundary count as
// contained
type BoundaryType int

const (
	// BoundaryUnspecified - containment at the boundary is undefined (masks)
	BoundaryUnspecified BoundaryType = iota

	// BoundaryOpen - strict inequality, boundary points are outside
	BoundaryOpen

	// BoundaryClosed - inclusive inequality, boundary points are inside
	BoundaryClosed
)

func (b BoundaryType) String() string {
	switch b {
	case BoundaryOpen:
		return "open"
	case BoundaryClosed:
		return "closed"
	}
	return "unspecified"
}

// The marker substrings recorded in a shape's text field. Exactly one must
// appear after conversion.
const (
	ClosedBoundaryText      = "[boundary:closed]"
	OpenBoundaryText        = "[boundary:open]"
	UnspecifiedBoundaryText = "[boundary:unspecified]"
)

var boundaryMarker = map[BoundaryType]string{
	BoundaryClosed:      ClosedBoundaryText,
	BoundaryOpen:        OpenBoundaryText,
	BoundaryUnspecified: UnspecifiedBoundaryText,
}

// HasBoundaryMarker - true if any of the three markers is already present
func HasBoundaryMarker(text string) bool {
	return strings.Contains(text, ClosedBoundaryText) ||
		strings.Contains(text, OpenBoundaryText) ||
		strings.Contains(text, UnspecifiedBoundaryText)
}

// StampBoundaryText - appends the marker for the given boundary mode to the
// shape's text, unless a marker is already there. Idempotent.
func StampBoundaryText(shape omeromodel.ShapeData, boundary BoundaryType) {
	attrs := shape.Attrs()
	if HasBoundaryMarker(attrs.Text) {
		return
	}
	attrs.Text = attrs.Text + boundaryMarker[boundary]
}

// BoundaryFromText - reads the boundary mode a shape's text declares.
// Unmarked shapes read as closed, the stamping default.
func BoundaryFromText(text string) BoundaryType {
	if strings.Contains(text, OpenBoundaryText) {
		return BoundaryOpen
	}
	if strings.Contains(text, UnspecifiedBoundaryText) {
		return BoundaryUnspecified
	}
	return BoundaryClosed
}
