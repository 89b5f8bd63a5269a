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

package core

const (
	// LogFieldModule is the log field for the module name.
	LogFieldModule = "module"

	// LogFieldRunID is the log field key for the ID of a self-test run.
	LogFieldRunID = "runID"
	// LogFieldScenario is the log field key for the name of a self-test scenario.
	LogFieldScenario = "scenario"
	// LogFieldListSize is the log field key for the number of values in a list.
	LogFieldListSize = "listSize"
	// LogFieldDuration is the log field key for the time it took to run a self-test scenario.
	LogFieldDuration = "duration"
)
