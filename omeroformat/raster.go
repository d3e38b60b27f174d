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

package omeroformat

import "fmt"

// Plane indexes run in ZCT raster order: Z fastest, then C, then T.

// RasterToPosition - plane index to (z, c, t)
func (m *Metadata) RasterToPosition(planeIndex int) (int, int, int, error) {
	if planeIndex < 0 || planeIndex >= m.PlaneCount() {
		return 0, 0, 0, fmt.Errorf("plane index %v out of range, image has %v planes", planeIndex, m.PlaneCount())
	}

	z := planeIndex % m.SizeZ
	c := (planeIndex / m.SizeZ) % m.SizeC
	t := planeIndex / (m.SizeZ * m.SizeC)
	return z, c, t, nil
}

// PositionToRaster - (z, c, t) to plane index
func (m *Metadata) PositionToRaster(z int, c int, t int) int {
	return t*m.SizeZ*m.SizeC + c*m.SizeZ + z
}
