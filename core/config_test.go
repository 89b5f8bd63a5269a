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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigFile = `
verbosity: warn
testmodule:
  key: fromfile
  list:
    - configfilevalue
`

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

// resetLogging restores the logrus standard logger after a test changed its level or formatter.
func resetLogging(t *testing.T) {
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})
}

func TestConfig_Load(t *testing.T) {
	t.Run("ok - defaults", func(t *testing.T) {
		resetLogging(t)
		config := NewConfig()

		require.NoError(t, config.Load(FlagSet()))

		assert.Equal(t, "info", config.Verbosity)
		assert.Equal(t, "text", config.LoggerFormat)
		assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	})
	t.Run("ok - from config file", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", writeConfigFile(t, testConfigFile)}))
		config := NewConfig()

		require.NoError(t, config.Load(flags))

		assert.Equal(t, "warn", config.Verbosity)
		assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	})
	t.Run("ok - env overrides config file", func(t *testing.T) {
		resetLogging(t)
		t.Setenv("DLIST_VERBOSITY", "debug")
		t.Setenv("DLIST_LOGGERFORMAT", "json")
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", writeConfigFile(t, testConfigFile)}))
		config := NewConfig()

		require.NoError(t, config.Load(flags))

		assert.Equal(t, "debug", config.Verbosity)
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	})
	t.Run("ok - flag overrides env", func(t *testing.T) {
		resetLogging(t)
		t.Setenv("DLIST_VERBOSITY", "debug")
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--verbosity", "error"}))
		config := NewConfig()

		require.NoError(t, config.Load(flags))

		assert.Equal(t, "error", config.Verbosity)
	})
	t.Run("ok - config file from env", func(t *testing.T) {
		resetLogging(t)
		t.Setenv("DLIST_CONFIGFILE", writeConfigFile(t, testConfigFile))
		config := NewConfig()

		require.NoError(t, config.Load(FlagSet()))

		assert.Equal(t, "warn", config.Verbosity)
	})
	t.Run("error - invalid verbosity", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--verbosity", "chatty"}))

		err := NewConfig().Load(flags)

		assert.EqualError(t, err, "not a valid logrus Level: \"chatty\"")
	})
	t.Run("error - invalid formatter", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--loggerformat", "xml"}))

		err := NewConfig().Load(flags)

		assert.EqualError(t, err, "invalid formatter: 'xml'")
	})
	t.Run("error - custom config file does not exist", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "nonexisting-config.yaml"}))

		err := NewConfig().Load(flags)

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfig_InjectIntoModule(t *testing.T) {
	t.Run("defaults from flags", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		flags.AddFlagSet(testFlagSet())
		config := NewConfig()
		module := &TestModule{}
		require.NoError(t, config.Load(flags))

		require.NoError(t, config.InjectIntoModule(module))

		assert.Equal(t, []string{"default", "default"}, module.TestConfig.List)
	})
	t.Run("values from config file replace defaults", func(t *testing.T) {
		resetLogging(t)
		flags := FlagSet()
		flags.AddFlagSet(testFlagSet())
		require.NoError(t, flags.Parse([]string{"--configfile", writeConfigFile(t, testConfigFile)}))
		config := NewConfig()
		module := &TestModule{}
		require.NoError(t, config.Load(flags))

		require.NoError(t, config.InjectIntoModule(module))

		assert.Equal(t, "fromfile", module.TestConfig.Key)
		assert.Equal(t, []string{"configfilevalue"}, module.TestConfig.List)
	})
	t.Run("list values from env", func(t *testing.T) {
		resetLogging(t)
		t.Setenv("DLIST_TESTMODULE_LIST", "a, b,c")
		flags := FlagSet()
		flags.AddFlagSet(testFlagSet())
		config := NewConfig()
		module := &TestModule{}
		require.NoError(t, config.Load(flags))

		require.NoError(t, config.InjectIntoModule(module))

		assert.Equal(t, []string{"a", "b", "c"}, module.TestConfig.List)
	})
}

func TestConfig_PrintConfig(t *testing.T) {
	resetLogging(t)
	config := NewConfig()
	require.NoError(t, config.Load(FlagSet()))

	printed := config.PrintConfig()

	assert.True(t, strings.Contains(printed, "verbosity -> info"), printed)
}

func Test_loadFromFile(t *testing.T) {
	t.Run("ok - no file path provided", func(t *testing.T) {
		assert.NoError(t, loadFromFile(koanf.New(defaultDelimiter), ""))
	})
	t.Run("ok - file exists", func(t *testing.T) {
		configMap := koanf.New(defaultDelimiter)
		require.NoError(t, loadFromFile(configMap, writeConfigFile(t, testConfigFile)))
		assert.Equal(t, "fromfile", configMap.String("testmodule.key"))
	})
	t.Run("ok - default file does not exist", func(t *testing.T) {
		assert.NoError(t, loadFromFile(koanf.New(defaultDelimiter), defaultConfigFile))
	})
	t.Run("error - custom file does not exist", func(t *testing.T) {
		assert.EqualError(t, loadFromFile(koanf.New(defaultDelimiter), "nonexisting-config.yaml"), "unable to load config file: open nonexisting-config.yaml: no such file or directory")
	})
	t.Run("error - invalid config file contents", func(t *testing.T) {
		err := loadFromFile(koanf.New(defaultDelimiter), writeConfigFile(t, "{ invalid"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file: yaml:")
	})
}

func Test_loadFromEnv(t *testing.T) {
	t.Setenv("DLIST_SOME_KEY", "value")
	t.Setenv("DLIST_SOME_LIST", "a,b")
	configMap := koanf.New(defaultDelimiter)

	require.NoError(t, loadFromEnv(configMap))

	assert.Equal(t, "value", configMap.String("some.key"))
	assert.Equal(t, []string{"a", "b"}, configMap.Strings("some.list"))
}

func Test_resolveConfigFilePath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, defaultConfigFile, resolveConfigFilePath(FlagSet()))
	})
	t.Run("flag", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "custom.yaml"}))
		assert.Equal(t, "custom.yaml", resolveConfigFilePath(flags))
	})
	t.Run("env", func(t *testing.T) {
		t.Setenv("DLIST_CONFIGFILE", "env.yaml")
		assert.Equal(t, "env.yaml", resolveConfigFilePath(FlagSet()))
	})
	t.Run("no flag defined", func(t *testing.T) {
		assert.Equal(t, defaultConfigFile, resolveConfigFilePath(pflag.NewFlagSet("empty", pflag.ContinueOnError)))
	})
}
