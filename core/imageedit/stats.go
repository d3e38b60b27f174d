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

package imageedit

import (
	"fmt"
	"math"

	"github.com/stoffelc/imagej-omero/core/dataset"
)

// PlaneStats - min, max and mean sample value of one XY plane
func PlaneStats(img *dataset.Dataset, planeIdx int) (float64, float64, float64, error) {
	if planeIdx < 0 || planeIdx >= len(img.Planes) {
		return 0, 0, 0, fmt.Errorf("plane %v out of range, image has %v", planeIdx, len(img.Planes))
	}

	values, err := planeValues(img, planeIdx)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(values) == 0 {
		return 0, 0, 0, fmt.Errorf("plane %v is empty", planeIdx)
	}

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	sum := 0.0
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
		sum += v
	}

	return minVal, maxVal, sum / float64(len(values)), nil
}
