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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	system := NewSystem()
	assert.NotNil(t, system)
	assert.NotNil(t, system.Config)
	assert.Empty(t, system.modules)
}

func TestSystem_Load(t *testing.T) {
	t.Run("injects config into modules", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		flags.AddFlagSet(testFlagSet())
		require.NoError(t, flags.Parse([]string{"--testmodule.key", "fromflag"}))
		module := &TestModule{}
		system := NewSystem()
		system.RegisterModule(module)
		system.RegisterModule("not injectable")

		require.NoError(t, system.Load(flags))

		assert.Equal(t, "fromflag", module.TestConfig.Key)
		assert.Equal(t, []string{"default", "default"}, module.TestConfig.List)
	})
	t.Run("error - invalid global config", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--loggerformat", "xml"}))
		system := NewSystem()
		system.RegisterModule(&TestModule{})

		assert.Error(t, system.Load(flags))
	})
}

func TestSystem_Configure(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		module := &TestModule{}
		system := NewSystem()
		system.RegisterModule(module)

		require.NoError(t, system.Configure())

		assert.True(t, module.configured)
	})
	t.Run("error is passed through", func(t *testing.T) {
		first := &TestModule{ConfigureError: true}
		second := &TestModule{}
		system := NewSystem()
		system.RegisterModule(first)
		system.RegisterModule(second)

		err := system.Configure()

		assert.EqualError(t, err, "failure")
		assert.False(t, second.configured)
	})
}

func TestSystem_VisitModulesE(t *testing.T) {
	system := NewSystem()
	system.RegisterModule(&TestModule{})
	system.RegisterModule(&TestModule{})
	visited := 0

	err := system.VisitModulesE(func(module Module) error {
		visited++
		return errors.New("stop")
	})

	assert.EqualError(t, err, "stop")
	assert.Equal(t, 1, visited)
}
