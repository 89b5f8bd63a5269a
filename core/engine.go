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
	"github.com/spf13/pflag"
)

// NewSystem creates a new, empty System.
func NewSystem() *System {
	return &System{
		modules: []Module{},
		Config:  NewConfig(),
	}
}

// System is the control structure where modules are registered.
type System struct {
	// modules is the slice of all registered modules
	modules []Module
	// Config holds the global and raw config
	Config *Config
}

// Load loads the config and injects config values into modules
func (system *System) Load(flags *pflag.FlagSet) error {
	if err := system.Config.Load(flags); err != nil {
		return err
	}
	return system.VisitModulesE(func(module Module) error {
		if m, ok := module.(Injectable); ok {
			return system.Config.InjectIntoModule(m)
		}
		return nil
	})
}

// Configure configures all modules in the system.
func (system *System) Configure() error {
	return system.VisitModulesE(func(module Module) error {
		// only if Module is dynamically configurable
		if m, ok := module.(Configurable); ok {
			return m.Configure(*system.Config)
		}
		return nil
	})
}

// VisitModules applies the given function on all modules in the system.
func (system *System) VisitModules(visitor func(module Module)) {
	_ = system.VisitModulesE(func(module Module) error {
		visitor(module)
		return nil
	})
}

// VisitModulesE applies the given function on all modules in the system, stopping when an error is returned. The error
// is passed through.
func (system *System) VisitModulesE(visitor func(module Module) error) error {
	for _, m := range system.modules {
		if err := visitor(m); err != nil {
			return err
		}
	}
	return nil
}

// RegisterModule adds a module to the system.
func (system *System) RegisterModule(module Module) {
	system.modules = append(system.modules, module)
}

// Module is the base interface for a modular design
type Module interface{}

// Configurable is the interface that contains the Configure method.
// When a module implements the Configurable interface, it will be called before it's used.
type Configurable interface {
	Configure(config Config) error
}

// Named is the interface for all modules that have a name
type Named interface {
	// Name returns the name of the module
	Name() string
}

// Injectable marks a module capable of Config injection
type Injectable interface {
	Named
	// Config returns a pointer to the struct that holds the Config.
	Config() interface{}
}

// FlagProvider is implemented by modules that contribute command line flags.
type FlagProvider interface {
	FlagSet() *pflag.FlagSet
}
