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
	"encoding/json"

	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/logger"
	"github.com/stoffelc/imagej-omero/core/omeromodel"
)

// VersionTagDescription - description field of the tag recording which bridge
// version produced an ROI
const VersionTagDescription = "imagej-omero:version"

// WrapShape - builds the geometry view for a remote shape under the given
// boundary mode. Masks always come back as BitMask, they have no boundary.
// Unknown shape kinds return nil.
func WrapShape(shape omeromodel.ShapeData, boundary BoundaryType) RealMask {
	switch s := shape.(type) {
	case *omeromodel.RectangleData:
		if boundary == BoundaryOpen {
			return NewOpenRectangle(s)
		}
		return NewClosedRectangle(s)
	case *omeromodel.EllipseData:
		if boundary == BoundaryOpen {
			return NewOpenEllipse(s)
		}
		return NewClosedEllipse(s)
	case *omeromodel.PointData:
		if boundary == BoundaryOpen {
			return NewOpenPoint(s)
		}
		return NewClosedPoint(s)
	case *omeromodel.LineData:
		if boundary == BoundaryOpen {
			return NewOpenLine(s)
		}
		return NewClosedLine(s)
	case *omeromodel.PolygonData:
		if boundary == BoundaryOpen {
			return NewOpenPolygon(s)
		}
		return NewClosedPolygon(s)
	case *omeromodel.PolylineData:
		if boundary == BoundaryOpen {
			return NewOpenPolyline(s)
		}
		return NewClosedPolyline(s)
	case *omeromodel.MaskData:
		return NewBitMask(s)
	}
	return nil
}

// ROICollection - local view over one remote ROI and its shapes
type ROICollection struct {
	Data *omeromodel.ROIData
}

// Masks - geometry views for every shape, boundary mode read from each
// shape's text marker (unmarked shapes default to closed)
func (rc *ROICollection) Masks() []RealMask {
	masks := []RealMask{}
	for _, shape := range rc.Data.Shapes {
		if mask := WrapShape(shape, BoundaryFromText(shape.Attrs().Text)); mask != nil {
			masks = append(masks, mask)
		}
	}
	return masks
}

// Converter - collection-level ROI conversion
type Converter struct {
	log     logger.ILogger
	version string
}

func NewConverter(log logger.ILogger, version string) *Converter {
	return &Converter{
		log:     log,
		version: version,
	}
}

// MaskToShape - local geometry to remote shape. The view already shares the
// remote record, so this only has to record the boundary convention.
func (c *Converter) MaskToShape(mask RealMask) omeromodel.ShapeData {
	shape := mask.Shape()
	StampBoundaryText(shape, mask.Boundary())
	return shape
}

// ToROIData - prepares a local collection's remote object for upload:
// every shape gets a boundary marker (closed default for unmarked shapes,
// matching ImageJ's convention), and the collection's remote object gets the
// bridge version tag. The tagging is best effort - a failure is logged,
// never propagated, an untagged ROI is still a valid ROI.
func (c *Converter) ToROIData(sess client.Session, rc *ROICollection) *omeromodel.ROIData {
	r := rc.Data

	for _, shape := range r.Shapes {
		StampBoundaryText(shape, BoundaryClosed)
	}

	c.linkVersionAnnotation(sess, r)

	return r
}

// FromROIData - wraps a downloaded remote ROI as a local collection
func FromROIData(r *omeromodel.ROIData) *ROICollection {
	return &ROICollection{Data: r}
}

func (c *Converter) linkVersionAnnotation(sess client.Session, r *omeromodel.ROIData) {
	tag, err := ensureAnnotation(sess, VersionTagDescription, c.version)
	if err != nil {
		c.log.Errorf("Cannot create/retrieve version tag: %v", err)
		return
	}

	// The server lazily loads annotation links. Linking against an unloaded
	// list makes the update fail, so reload first.
	if !r.AnnotationLinksLoaded {
		if err := reloadAnnotationLinks(sess, r); err != nil {
			c.log.Errorf("Cannot reload ROI %v annotation links: %v", r.ID, err)
			return
		}
	}

	r.LinkAnnotation(tag)
}

// ensureAnnotation - finds or creates the tag annotation on the server
func ensureAnnotation(sess client.Session, description string, value string) (omeromodel.TagAnnotation, error) {
	tag := omeromodel.TagAnnotation{Description: description, Value: value}

	result, err := sess.Call("annotation.ensure", map[string]interface{}{
		"description": description,
		"value":       value,
	})
	if err != nil {
		return tag, err
	}

	created := struct {
		ID int64 `json:"id"`
	}{}
	if err := json.Unmarshal(result, &created); err != nil {
		return tag, err
	}

	tag.ID = created.ID
	return tag, nil
}

func reloadAnnotationLinks(sess client.Session, r *omeromodel.ROIData) error {
	result, err := sess.Call("roi.annotationLinks", map[string]interface{}{"id": r.ID})
	if err != nil {
		return err
	}

	links := []omeromodel.TagAnnotation{}
	if err := json.Unmarshal(result, &links); err != nil {
		return err
	}

	r.Annotations = links
	r.AnnotationLinksLoaded = true
	return nil
}
