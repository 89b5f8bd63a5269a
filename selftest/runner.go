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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/nuts-foundation/go-dlist/core"
	"github.com/nuts-foundation/go-dlist/selftest/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

// ModuleName is the name of the self-test module, also used as config key prefix.
const ModuleName = "SelfTest"

// ErrSelfTestFailed is returned when one or more scenarios of a run failed.
var ErrSelfTestFailed = errors.New("self-test failed")

var _ core.Injectable = (*Runner)(nil)
var _ core.Configurable = (*Runner)(nil)
var _ core.FlagProvider = (*Runner)(nil)

// Result is the outcome of a single scenario.
type Result struct {
	Scenario string
	Duration time.Duration
	Err      error
}

// Report contains the results of a self-test run.
type Report struct {
	RunID   string
	Results []Result
}

// Failed returns the results of the scenarios that failed.
func (r Report) Failed() []Result {
	var result []Result
	for _, curr := range r.Results {
		if curr.Err != nil {
			result = append(result, curr)
		}
	}
	return result
}

// Runner runs the self-test scenarios against the list.
type Runner struct {
	config     Config
	scenarios  []Scenario
	out        io.Writer
	observer   Observer
	registerer prometheus.Registerer
	metrics    *metrics
}

// NewRunner creates a Runner that prints list renderings to out and registers its metrics on registerer.
// If observer is nil, scenario outcomes are only logged.
func NewRunner(out io.Writer, registerer prometheus.Registerer, observer Observer) *Runner {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Runner{
		config:     DefaultConfig(),
		scenarios:  Scenarios(),
		out:        out,
		observer:   observer,
		registerer: registerer,
		metrics:    newMetrics(),
	}
}

// Name returns the module name.
func (r *Runner) Name() string {
	return ModuleName
}

// Config returns a pointer to the runner's config, so it can be injected.
func (r *Runner) Config() interface{} {
	return &r.config
}

// FlagSet returns the flags of the self-test.
func (r *Runner) FlagSet() *pflag.FlagSet {
	return FlagSet()
}

// Configure validates the config and registers the metrics.
func (r *Runner) Configure(_ core.Config) error {
	if r.config.TeardownSize < 0 {
		return fmt.Errorf("selftest.teardownsize must not be negative (value=%d)", r.config.TeardownSize)
	}
	if r.registerer == nil {
		return nil
	}
	return r.metrics.register(r.registerer)
}

// Run runs all scenarios in order. It returns an error wrapping ErrSelfTestFailed when any scenario failed,
// or the context's error when ctx is cancelled between scenarios.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	logger := log.Logger().WithField(core.LogFieldRunID, report.RunID)
	env := Env{Config: r.config, Out: r.out}
	var failures []error

	for _, scenario := range r.scenarios {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("Self-test interrupted")
			return report, err
		}
		start := time.Now()
		err := scenario.Run(env)
		duration := time.Since(start)

		r.metrics.observe(err, duration)
		report.Results = append(report.Results, Result{Scenario: scenario.Name, Duration: duration, Err: err})
		entry := logger.
			WithField(core.LogFieldScenario, scenario.Name).
			WithField(core.LogFieldDuration, duration)
		if err != nil {
			entry.WithError(err).Error("Self-test scenario failed")
			r.observer.ScenarioFailed(scenario.Name, err)
			failures = append(failures, fmt.Errorf("scenario '%s': %w", scenario.Name, err))
			if r.config.FailFast {
				break
			}
			continue
		}
		entry.Debug("Self-test scenario passed")
		r.observer.ScenarioPassed(scenario.Name, duration)
	}

	if len(failures) > 0 {
		return report, core.WrapError(ErrSelfTestFailed, errors.Join(failures...))
	}
	logger.Infof("Self-test passed (scenarios=%d)", len(report.Results))
	return report, nil
}
