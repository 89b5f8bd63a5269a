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

import "time"

//go:generate mockgen -destination=mock.go -package=selftest -source=observer.go

// Observer is notified of the outcome of every scenario of a self-test run.
type Observer interface {
	// ScenarioPassed is called when a scenario completed without failed expectations.
	ScenarioPassed(name string, duration time.Duration)
	// ScenarioFailed is called when a scenario returned an error.
	ScenarioFailed(name string, err error)
}

type nopObserver struct{}

func (nopObserver) ScenarioPassed(string, time.Duration) {}

func (nopObserver) ScenarioFailed(string, error) {}
