/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package selftest

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultPass = "pass"
	resultFail = "fail"
)

type metrics struct {
	scenarios *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics() *metrics {
	return &metrics{
		scenarios: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dlist",
				Subsystem: "selftest",
				Name:      "scenarios_total",
				Help:      "Number of self-test scenarios that were run, by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "dlist",
				Subsystem: "selftest",
				Name:      "scenario_duration_seconds",
				Help:      "Duration of self-test scenarios",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
			},
		),
	}
}

// register registers the collectors. When a collector with the same description is already registered
// (e.g. by an earlier runner), that one is used instead.
func (m *metrics) register(registerer prometheus.Registerer) error {
	if err := registerer.Register(m.scenarios); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		m.scenarios = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := registerer.Register(m.duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		m.duration = are.ExistingCollector.(prometheus.Histogram)
	}
	return nil
}

func (m *metrics) observe(err error, duration time.Duration) {
	result := resultPass
	if err != nil {
		result = resultFail
	}
	m.scenarios.WithLabelValues(result).Inc()
	m.duration.Observe(duration.Seconds())
}
