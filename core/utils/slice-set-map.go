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

// Small generic helpers used by the conversion and ROI layers
package utils

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

func ItemInSlice[T comparable](a T, list []T) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

func GetMapKeys[K comparable, V any](theMap map[K]V) []K {
	result := []K{}

	for key := range theMap {
		result = append(result, key)
	}

	return result
}

// GetOrderedMapKeys - like GetMapKeys but sorted, so callers iterating a map
// produce deterministic output that can be tested
func GetOrderedMapKeys[K constraints.Ordered, V any](theMap map[K]V) []K {
	result := GetMapKeys(theMap)
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func AddItemsToSet[K comparable](keys []K, theSet map[K]bool) {
	for _, key := range keys {
		theSet[key] = true
	}
}

// ZeroPad - prints num with enough leading zeros to fill digits characters.
// Parameter groupings sent to OMERO are ordered lexically, so "10" must not
// sort before "2".
func ZeroPad(num int, digits int) string {
	return fmt.Sprintf("%0*d", digits, num)
}
