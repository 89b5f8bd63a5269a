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

import (
	"errors"

	"github.com/spf13/pflag"
)

const testModuleName = "TestModule"

// TestModuleConfig defines the configuration for the test module
type TestModuleConfig struct {
	Key  string              `koanf:"key"`
	Sub  TestModuleSubConfig `koanf:"sub"`
	List []string            `koanf:"list"`
}

// TestModuleSubConfig defines the `sub` configuration for the test module
type TestModuleSubConfig struct {
	Test string `koanf:"test"`
}

// TestModule is a module which can be registered in a System in tests.
type TestModule struct {
	TestConfig     TestModuleConfig
	ConfigureError bool
	configured     bool
}

func testDefaultConfig() TestModuleConfig {
	return TestModuleConfig{List: []string{"default", "default"}}
}

// Configure does test stuff
func (m *TestModule) Configure(_ Config) error {
	if m.ConfigureError {
		return errors.New("failure")
	}
	m.configured = true
	return nil
}

func (m *TestModule) Config() interface{} {
	return &m.TestConfig
}

func (m *TestModule) Name() string {
	return testModuleName
}

func testFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("testmodule", pflag.ContinueOnError)

	defs := testDefaultConfig()
	flags.StringSlice("testmodule.list", defs.List, "sets the values of list")
	flags.String("testmodule.key", defs.Key, "another flag")

	return flags
}
