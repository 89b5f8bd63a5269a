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
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const defaultConfigFile = "dlist.yaml"
const configFileFlag = "configfile"

const defaultPrefix = "DLIST_"
const defaultDelimiter = "."
const configValueListSeparator = ","

// Config has the global settings and holds the raw config map from which module config is injected.
type Config struct {
	Verbosity    string `koanf:"verbosity"`
	LoggerFormat string `koanf:"loggerformat"`
	configMap    *koanf.Koanf
}

// DefaultConfig returns the built-in global settings.
func DefaultConfig() Config {
	return Config{
		Verbosity:    "info",
		LoggerFormat: "text",
	}
}

// NewConfig creates an initialized empty config
func NewConfig() *Config {
	return &Config{
		configMap: koanf.New(defaultDelimiter),
	}
}

// Load loads the config following the load order of built-in defaults, config file, env vars and then commandline params.
// It configures the logrus standard logger afterwards.
func (c *Config) Load(flags *pflag.FlagSet) error {
	if err := c.loadConfigMap(flags); err != nil {
		return err
	}
	if err := loadConfigIntoStruct(c, c.configMap); err != nil {
		return err
	}
	return c.configureLogging()
}

func (c *Config) loadConfigMap(flags *pflag.FlagSet) error {
	if err := c.configMap.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return err
	}
	if err := loadFromFlagSet(c.configMap, flags); err != nil {
		return err
	}
	if err := loadFromFile(c.configMap, resolveConfigFilePath(flags)); err != nil {
		return err
	}
	if err := loadFromEnv(c.configMap); err != nil {
		return err
	}
	// explicitly set flags overwrite values from file and environment
	return loadFromFlagSet(c.configMap, flags)
}

func (c *Config) configureLogging() error {
	lvl, err := logrus.ParseLevel(c.Verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	switch c.LoggerFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid formatter: '%s'", c.LoggerFormat)
	}
	return nil
}

// InjectIntoModule takes the loaded config and sets the module's config struct.
// The module's config is read from the keys prefixed with the lowercase module name.
func (c *Config) InjectIntoModule(m Injectable) error {
	return c.configMap.UnmarshalWithConf(strings.ToLower(m.Name()), m.Config(), koanf.UnmarshalConf{
		FlatPaths: false,
	})
}

// PrintConfig return the current config in string form
func (c *Config) PrintConfig() string {
	return c.configMap.Sprint()
}

// FlagSet returns the global flags
func FlagSet() *pflag.FlagSet {
	defs := DefaultConfig()
	flagSet := pflag.NewFlagSet("global", pflag.ContinueOnError)
	flagSet.String(configFileFlag, defaultConfigFile, "Config file, defaults to "+defaultConfigFile+" in the working directory")
	flagSet.String("verbosity", defs.Verbosity, "Log level (trace, debug, info, warn, error)")
	flagSet.String("loggerformat", defs.LoggerFormat, "Log format (text, json)")
	return flagSet
}

func loadConfigIntoStruct(target interface{}, configMap *koanf.Koanf) error {
	return configMap.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		FlatPaths: false,
	})
}

// resolveConfigFilePath resolves the path of the config file using the following sources:
// 1. commandline params (using the given flags)
// 2. environment vars,
// 3. default location.
func resolveConfigFilePath(flags *pflag.FlagSet) string {
	k := koanf.New(defaultDelimiter)
	// can't return error
	_ = k.Load(env.Provider(defaultPrefix, defaultDelimiter, envKeyToConfigKey), nil)
	// load cmd flags, without a parser, no error can be returned
	_ = k.Load(posflag.Provider(flags, defaultDelimiter, k), nil)
	path := k.String(configFileFlag)
	if path == "" {
		return defaultConfigFile
	}
	return path
}

func loadFromFile(configMap *koanf.Koanf, filepath string) error {
	if filepath == "" {
		return nil
	}
	if err := configMap.Load(file.Provider(filepath), yaml.Parser()); err != nil {
		// a missing default config file is fine, a missing custom one is not
		if errors.Is(err, os.ErrNotExist) && filepath == defaultConfigFile {
			return nil
		}
		return fmt.Errorf("unable to load config file: %w", err)
	}
	return nil
}

func loadFromEnv(configMap *koanf.Koanf) error {
	e := env.ProviderWithValue(defaultPrefix, defaultDelimiter, func(rawKey string, rawValue string) (string, interface{}) {
		key := envKeyToConfigKey(rawKey)

		// Support multiple values separated by a comma
		if strings.Contains(rawValue, configValueListSeparator) {
			values := strings.Split(rawValue, configValueListSeparator)
			for i, value := range values {
				values[i] = strings.TrimSpace(value)
			}
			return key, values
		}

		// Just a single value
		return key, rawValue
	})
	// errors can't occur for this provider
	return configMap.Load(e, nil)
}

func envKeyToConfigKey(rawKey string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(rawKey, defaultPrefix)), "_", defaultDelimiter)
}

func loadFromFlagSet(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	return configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil)
}
