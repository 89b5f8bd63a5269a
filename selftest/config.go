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
	"github.com/spf13/pflag"
)

// Config holds the config of the self-test runner.
type Config struct {
	// TeardownSize is the number of values in the list that is built and cleared by the teardown scenario.
	TeardownSize int `koanf:"teardownsize"`
	// FailFast stops the run at the first failing scenario.
	FailFast bool `koanf:"failfast"`
	// Print writes the lists built by the scenarios to the runner's output.
	Print bool `koanf:"print"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TeardownSize: 100000,
		Print:        true,
	}
}

// FlagSet contains flags relevant for the self-test runner
func FlagSet() *pflag.FlagSet {
	defs := DefaultConfig()
	flagSet := pflag.NewFlagSet("selftest", pflag.ContinueOnError)
	flagSet.Int("selftest.teardownsize", defs.TeardownSize, "Number of values in the list that is built and cleared by the teardown scenario.")
	flagSet.Bool("selftest.failfast", defs.FailFast, "When set, the self-test stops at the first failing scenario.")
	flagSet.Bool("selftest.print", defs.Print, "When set, the lists built by the scenarios are printed.")
	return flagSet
}
