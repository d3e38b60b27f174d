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

package omeromodel

// TagAnnotation - a named tag attached to a remote object
type TagAnnotation struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// ROIData - a remote region-of-interest: an ordered collection of shapes
// plus its annotation links. The server lazily loads annotation links, so
// AnnotationLinksLoaded can be false on a freshly fetched ROI - linking a new
// annotation then requires reloading the links first or the server rejects
// the update.
type ROIData struct {
	ID                    int64
	Name                  string
	ImageID               int64
	Shapes                []ShapeData
	AnnotationLinksLoaded bool
	Annotations           []TagAnnotation
}

// LinkAnnotation - attaches a tag to this ROI. Caller must ensure annotation
// links are loaded first.
func (r *ROIData) LinkAnnotation(tag TagAnnotation) {
	r.Annotations = append(r.Annotations, tag)
}
