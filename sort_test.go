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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	a, err := New[int](DefaultOptions().WithCapacity(16).WithPoolSize(3).WithMaxPoolRatio(0.3))
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(1))

	values := make([]int, 100)
	for i := range values {
		values[i] = rnd.Intn(1000)
		require.NoError(t, a.Push(values[i]))
	}

	a.Sort(func(x, y int) bool { return x < y })

	sort.Ints(values)

	require.Equal(t, len(values), a.Len())
	for i, want := range values {
		v, ok := a.At(i)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
}

func TestSortEmpty(t *testing.T) {
	a, err := New[int](DefaultOptions().WithCapacity(10).WithPoolSize(2).WithMaxPoolRatio(0.3))
	require.NoError(t, err)

	a.Sort(func(x, y int) bool { return x < y })
	require.Equal(t, 0, a.Len())
	require.Equal(t, 2, a.PoolLen())
}
