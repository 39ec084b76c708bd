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
	"fmt"

	"github.com/codenotary/darray/logger"
	"github.com/codenotary/darray/metrics"
)

// DArray is a resizable sequence container with amortized O(1) insertion and
// removal at both ends.
//
// It differs from a plain growable array by keeping a pool of empty slots at
// the front of the backing store, so that prepending does not shift every
// element in the common case. The live elements occupy the window
// [startIndex, startIndex+n) of the backing store; slots below startIndex are
// the pool and slots above the window are tail slack. The pool is replenished
// when exhausted by Unshift and shrunk back by Shift whenever its share of
// the store exceeds the configured maxPoolRatio.
//
// Stored values are held as-is: the container never copies nor releases the
// data they refer to. It is not safe for concurrent use.
type DArray[T any] struct {
	data       []T
	startIndex int
	n          int

	expandRate   float64
	maxPoolRatio float64
	maxStoreSize int

	logger  logger.Logger
	metrics metrics.ArrayMetrics
}

func New[T any](opts *Options) (*DArray[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	a := &DArray[T]{
		data:       make([]T, opts.capacity),
		startIndex: opts.poolSize,

		expandRate:   opts.expandRate,
		maxPoolRatio: opts.maxPoolRatio,
		maxStoreSize: opts.maxStoreSize,

		logger:  opts.logger,
		metrics: opts.metrics,
	}

	a.metrics.SetStoreSize(len(a.data))
	a.metrics.SetPoolSize(a.startIndex)
	a.metrics.SetLength(0)

	return a, nil
}

// Len returns the number of live elements.
func (a *DArray[T]) Len() int {
	return a.n
}

// Cap returns the total number of slots in the backing store.
func (a *DArray[T]) Cap() int {
	return len(a.data)
}

// PoolLen returns the number of empty slots currently reserved at the front
// of the backing store.
func (a *DArray[T]) PoolLen() int {
	return a.startIndex
}

// At returns the element at logical position i. The second return value is
// false when i falls outside the live window; out-of-window reads are not an
// error.
func (a *DArray[T]) At(i int) (T, bool) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, false
	}
	return a.data[a.startIndex+i], true
}

// Front returns the first live element, if any.
func (a *DArray[T]) Front() (T, bool) {
	return a.At(0)
}

// Back returns the last live element, if any.
func (a *DArray[T]) Back() (T, bool) {
	return a.At(a.n - 1)
}

// Expand grows the backing store by the configured expand rate, preserving
// the contents of every slot, pool and tail slack included. The store is
// left untouched when growing is not possible.
func (a *DArray[T]) Expand() error {
	if err := a.checkConsistency(); err != nil {
		return err
	}
	return a.expand()
}

func (a *DArray[T]) expand() error {
	size := len(a.data)

	if size >= a.maxStoreSize {
		return fmt.Errorf("expand: %w", ErrMaxStoreSizeExceeded)
	}

	// growth must make forward progress even when the rate rounds down to
	// the current size
	newSize := size + 1
	if grown := float64(size) * a.expandRate; grown >= float64(a.maxStoreSize) {
		newSize = a.maxStoreSize
	} else if int(grown) > newSize {
		newSize = int(grown)
	}

	newData := make([]T, newSize)
	copy(newData, a.data)
	a.data = newData

	a.metrics.IncExpansions()
	a.metrics.SetStoreSize(newSize)
	a.logger.Debugf("darray: store expanded to %d slots", newSize)

	return nil
}

// Move shifts the window of live elements by dist slots within the backing
// store, positive towards higher indices. Moving up expands the store as
// needed; moving below slot 0 is illegal. Vacated slots are cleared.
func (a *DArray[T]) Move(dist int) error {
	if err := a.checkConsistency(); err != nil {
		return err
	}
	return a.move(dist)
}

func (a *DArray[T]) move(dist int) error {
	if dist == 0 {
		return nil
	}

	if dist < 0 && a.startIndex+dist < 0 {
		return fmt.Errorf("move: %w: distance %d exceeds pool of %d slots", ErrIllegalArguments, dist, a.startIndex)
	}

	for a.startIndex+a.n+dist > len(a.data) {
		if err := a.expand(); err != nil {
			return fmt.Errorf("move: %w", err)
		}
	}

	newStart := a.startIndex + dist

	// copy is overlap-safe in both directions
	copy(a.data[newStart:newStart+a.n], a.data[a.startIndex:a.startIndex+a.n])

	var zero T
	if dist > 0 {
		end := a.startIndex + dist
		if end > a.startIndex+a.n {
			end = a.startIndex + a.n
		}
		for i := a.startIndex; i < end; i++ {
			a.data[i] = zero
		}
	} else {
		from := newStart + a.n
		if from < a.startIndex {
			from = a.startIndex
		}
		for i := from; i < a.startIndex+a.n; i++ {
			a.data[i] = zero
		}
	}

	a.startIndex = newStart

	a.metrics.IncRelocations()
	a.metrics.ObserveRelocationDistance(dist)
	a.metrics.SetPoolSize(a.startIndex)
	a.logger.Debugf("darray: relocated %d elements by %d slots", a.n, dist)

	return nil
}

// Push appends a value, expanding the backing store when no tail slack is
// left.
func (a *DArray[T]) Push(v T) error {
	if err := a.checkConsistency(); err != nil {
		return err
	}

	if a.startIndex+a.n == len(a.data) {
		if err := a.expand(); err != nil {
			return fmt.Errorf("push: %w", err)
		}
	}

	a.data[a.startIndex+a.n] = v
	a.n++

	a.metrics.SetLength(a.n)

	return nil
}

// Pop removes and returns the last live element. The second return value is
// false when the container is empty; an empty pop is not an error.
func (a *DArray[T]) Pop() (T, bool) {
	var zero T

	if a.n == 0 {
		return zero, false
	}

	i := a.startIndex + a.n - 1
	v := a.data[i]
	a.data[i] = zero
	a.n--

	a.metrics.SetLength(a.n)

	return v, true
}

// Unshift prepends a value. With a non-empty pool this is O(1); otherwise the
// live window is first relocated upwards to replenish the pool.
func (a *DArray[T]) Unshift(v T) error {
	if err := a.checkConsistency(); err != nil {
		return err
	}

	if a.startIndex == 0 {
		if err := a.move(a.replenishDistance()); err != nil {
			return fmt.Errorf("unshift: %w", err)
		}
	}

	a.startIndex--
	a.data[a.startIndex] = v
	a.n++

	a.metrics.SetLength(a.n)
	a.metrics.SetPoolSize(a.startIndex)

	return nil
}

// replenishDistance is the pool size Unshift restores when the pool is
// exhausted: the maxPoolRatio share of the store, never less than one slot.
func (a *DArray[T]) replenishDistance() int {
	d := int(a.maxPoolRatio * float64(len(a.data)))
	if d < 1 {
		d = 1
	}
	return d
}

// Shift removes and returns the first live element. The second return value
// is false when the container is empty; an empty shift is not an error.
// Removal enlarges the pool by one slot; when the pool's share of the store
// exceeds maxPoolRatio the window is relocated downwards to shrink it back
// to the target ratio. A relocation failure is reported alongside the
// removed element.
func (a *DArray[T]) Shift() (T, bool, error) {
	var zero T

	if err := a.checkConsistency(); err != nil {
		return zero, false, err
	}

	if a.n == 0 {
		return zero, false, nil
	}

	v := a.data[a.startIndex]
	a.data[a.startIndex] = zero
	a.startIndex++
	a.n--

	a.metrics.SetLength(a.n)
	a.metrics.SetPoolSize(a.startIndex)

	target := a.maxPoolRatio * float64(len(a.data))
	if float64(a.startIndex) > target {
		if err := a.move(int(target) - a.startIndex); err != nil {
			return v, true, fmt.Errorf("shift: %w", err)
		}
	}

	return v, true, nil
}

// checkConsistency verifies the window invariant before any mutation takes
// place. No documented operation can break it; the check guards against a
// container corrupted by external writes.
func (a *DArray[T]) checkConsistency() error {
	if a.startIndex < 0 || a.n < 0 || a.startIndex+a.n > len(a.data) {
		return fmt.Errorf("%w: live window [%d, %d) exceeds store of %d slots",
			ErrIllegalState, a.startIndex, a.startIndex+a.n, len(a.data))
	}
	return nil
}
