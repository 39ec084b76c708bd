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
	"errors"
	"fmt"
	"math"

	"github.com/codenotary/darray/logger"
	"github.com/codenotary/darray/metrics"
)

const DefaultCapacity = 1024
const DefaultMaxPoolRatio = 0.25
const DefaultExpandRate = 1.5
const DefaultPoolSize = 0
const DefaultMaxStoreSize = math.MaxInt32

var ErrInvalidOptions = errors.New("invalid options")

type Options struct {
	capacity     int
	maxPoolRatio float64
	expandRate   float64
	poolSize     int

	// maxStoreSize bounds expansion: growing past it reports ErrMaxStoreSizeExceeded
	maxStoreSize int

	logger  logger.Logger
	metrics metrics.ArrayMetrics
}

func DefaultOptions() *Options {
	return &Options{
		capacity:     DefaultCapacity,
		maxPoolRatio: DefaultMaxPoolRatio,
		expandRate:   DefaultExpandRate,
		poolSize:     DefaultPoolSize,
		maxStoreSize: DefaultMaxStoreSize,

		logger:  logger.NewMemoryLogger(),
		metrics: metrics.NewNopArrayMetrics(),
	}
}

func (opts *Options) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}

	if opts.capacity <= 0 {
		return fmt.Errorf("%w: invalid capacity", ErrInvalidOptions)
	}

	if opts.maxPoolRatio < 0 || opts.maxPoolRatio >= 1 {
		return fmt.Errorf("%w: invalid maxPoolRatio", ErrInvalidOptions)
	}

	if opts.expandRate <= 1 {
		return fmt.Errorf("%w: invalid expandRate", ErrInvalidOptions)
	}

	if opts.poolSize < 0 || opts.poolSize > opts.capacity {
		return fmt.Errorf("%w: invalid poolSize", ErrInvalidOptions)
	}

	if opts.maxPoolRatio == 0 && opts.poolSize != 0 {
		return fmt.Errorf("%w: invalid poolSize", ErrInvalidOptions)
	}

	if opts.maxPoolRatio > 0 && float64(opts.poolSize) >= float64(opts.capacity)/opts.maxPoolRatio {
		return fmt.Errorf("%w: invalid poolSize", ErrInvalidOptions)
	}

	if opts.maxStoreSize < opts.capacity {
		return fmt.Errorf("%w: invalid maxStoreSize", ErrInvalidOptions)
	}

	if opts.logger == nil {
		return fmt.Errorf("%w: invalid logger", ErrInvalidOptions)
	}

	if opts.metrics == nil {
		return fmt.Errorf("%w: invalid metrics", ErrInvalidOptions)
	}

	return nil
}

func (opts *Options) WithCapacity(capacity int) *Options {
	opts.capacity = capacity
	return opts
}

func (opts *Options) WithMaxPoolRatio(maxPoolRatio float64) *Options {
	opts.maxPoolRatio = maxPoolRatio
	return opts
}

func (opts *Options) WithExpandRate(expandRate float64) *Options {
	opts.expandRate = expandRate
	return opts
}

func (opts *Options) WithPoolSize(poolSize int) *Options {
	opts.poolSize = poolSize
	return opts
}

func (opts *Options) WithMaxStoreSize(maxStoreSize int) *Options {
	opts.maxStoreSize = maxStoreSize
	return opts
}

func (opts *Options) WithLogger(logger logger.Logger) *Options {
	opts.logger = logger
	return opts
}

func (opts *Options) WithMetrics(metrics metrics.ArrayMetrics) *Options {
	opts.metrics = metrics
	return opts
}
