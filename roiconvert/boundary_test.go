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
	"testing"

	"github.com/stoffelc/imagej-omero/core/omeromodel"
)

func TestStampBoundaryTextIdempotent(t *testing.T) {
	shape := &omeromodel.RectangleData{}
	shape.Attrs().Text = "my region "

	StampBoundaryText(shape, BoundaryOpen)
	once := shape.Attrs().Text
	if once != "my region "+OpenBoundaryText {
		t.Errorf("Got %v", once)
	}

	// stamping again must not change anything, even with a different mode
	StampBoundaryText(shape, BoundaryClosed)
	if shape.Attrs().Text != once {
		t.Errorf("Second stamp changed text: %v", shape.Attrs().Text)
	}
}

func TestBoundaryFromText(t *testing.T) {
	cases := []struct {
		text string
		want BoundaryType
	}{
		{"region " + OpenBoundaryText, BoundaryOpen},
		{"region " + ClosedBoundaryText, BoundaryClosed},
		{"region " + UnspecifiedBoundaryText, BoundaryUnspecified},
		{"no marker at all", BoundaryClosed},
		{"", BoundaryClosed},
	}

	for _, c := range cases {
		if got := BoundaryFromText(c.text); got != c.want {
			t.Errorf("%q: got %v, want %v", c.text, got, c.want)
		}
	}
}

func TestHasBoundaryMarker(t *testing.T) {
	if HasBoundaryMarker("plain text") {
		t.Error("Did not expect a marker in plain text")
	}
	for _, marker := range []string{ClosedBoundaryText, OpenBoundaryText, UnspecifiedBoundaryText} {
		if !HasBoundaryMarker("prefix " + marker + " suffix") {
			t.Errorf("Expected marker %v to be found", marker)
		}
	}
}
