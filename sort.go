/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package darray

import "sort"

// Sort reorders the live elements in place according to less. The pool and
// tail slack are untouched.
func (a *DArray[T]) Sort(less func(x, y T) bool) {
	window := a.data[a.startIndex : a.startIndex+a.n]
	sort.Slice(window, func(i, j int) bool {
		return less(window[i], window[j])
	})
}
