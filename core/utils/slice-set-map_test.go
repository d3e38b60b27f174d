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

package utils

import (
	"fmt"
	"reflect"
	"testing"
)

func Example_zeroPad() {
	fmt.Println(ZeroPad(0, 1))
	fmt.Println(ZeroPad(3, 2))
	fmt.Println(ZeroPad(10, 2))
	fmt.Println(ZeroPad(7, 4))

	// Output:
	// 0
	// 03
	// 10
	// 0007
}

func TestItemInSlice(t *testing.T) {
	list := []string{"one", "two", "three"}
	if !ItemInSlice("two", list) {
		t.Error("Expected two in list")
	}
	if ItemInSlice("four", list) {
		t.Error("Did not expect four in list")
	}
	if ItemInSlice(1, []int{}) {
		t.Error("Did not expect anything in empty list")
	}
}

func TestGetOrderedMapKeys(t *testing.T) {
	got := GetOrderedMapKeys(map[string]int{"zebra": 1, "apple": 2, "mango": 3})
	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestAddItemsToSet(t *testing.T) {
	set := map[int]bool{1: true}
	AddItemsToSet([]int{2, 3, 1}, set)

	want := map[int]bool{1: true, 2: true, 3: true}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("Got %v, want %v", set, want)
	}
}
