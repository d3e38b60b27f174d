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

package dataset

import "fmt"

// Table - results table resource: named columns of float64 cells. OMERO
// stores these server-side like images, referenced by an integer id.
type Table struct {
	ID      int64 // 0 until uploaded
	Name    string
	Headers []string
	Rows    [][]float64
}

// AddRow - appends a row, which must match the column count
func (t *Table) AddRow(cells []float64) error {
	if len(cells) != len(t.Headers) {
		return fmt.Errorf("row has %v cells, table has %v columns", len(cells), len(t.Headers))
	}
	t.Rows = append(t.Rows, cells)
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("%v [%v cols, %v rows]", t.Name, len(t.Headers), len(t.Rows))
}
