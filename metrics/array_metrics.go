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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ArrayMetrics interface {
	SetStoreSize(size int)
	SetPoolSize(size int)
	SetLength(n int)
	IncExpansions()
	IncRelocations()
	ObserveRelocationDistance(dist int)
}

var (
	metricsStoreSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "darray_store_size",
		Help: "Total number of slots in the backing store",
	}, []string{"name"})

	metricsPoolSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "darray_pool_size",
		Help: "Number of empty slots reserved at the front of the backing store",
	}, []string{"name"})

	metricsLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "darray_length",
		Help: "Number of live elements",
	}, []string{"name"})

	metricsExpansions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "darray_expansions_total",
		Help: "Number of backing store expansions",
	}, []string{"name"})

	metricsRelocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "darray_relocations_total",
		Help: "Number of live window relocations",
	}, []string{"name"})

	metricsRelocationDistance = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "darray_relocation_distance",
		Help:    "Distance in slots covered by live window relocations",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"name"})
)

var _ ArrayMetrics = &prometheusArrayMetrics{}

type prometheusArrayMetrics struct {
	name string
}

func NewArrayMetrics(name string) ArrayMetrics {
	return &prometheusArrayMetrics{name: name}
}

func (m *prometheusArrayMetrics) SetStoreSize(size int) {
	metricsStoreSize.WithLabelValues(m.name).Set(float64(size))
}

func (m *prometheusArrayMetrics) SetPoolSize(size int) {
	metricsPoolSize.WithLabelValues(m.name).Set(float64(size))
}

func (m *prometheusArrayMetrics) SetLength(n int) {
	metricsLength.WithLabelValues(m.name).Set(float64(n))
}

func (m *prometheusArrayMetrics) IncExpansions() {
	metricsExpansions.WithLabelValues(m.name).Inc()
}

func (m *prometheusArrayMetrics) IncRelocations() {
	metricsRelocations.WithLabelValues(m.name).Inc()
}

func (m *prometheusArrayMetrics) ObserveRelocationDistance(dist int) {
	if dist < 0 {
		dist = -dist
	}
	metricsRelocationDistance.WithLabelValues(m.name).Observe(float64(dist))
}

var _ ArrayMetrics = &nopArrayMetrics{}

type nopArrayMetrics struct {
}

func NewNopArrayMetrics() ArrayMetrics {
	return &nopArrayMetrics{}
}

func (m *nopArrayMetrics) SetStoreSize(size int) {

}

func (m *nopArrayMetrics) SetPoolSize(size int) {

}

func (m *nopArrayMetrics) SetLength(n int) {

}

func (m *nopArrayMetrics) IncExpansions() {

}

func (m *nopArrayMetrics) IncRelocations() {

}

func (m *nopArrayMetrics) ObserveRelocationDistance(dist int) {

}
