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

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/nuts-foundation/go-dlist/core"
	"github.com/nuts-foundation/go-dlist/selftest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var stdOutWriter io.Writer = os.Stdout

func createRootCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "dlist",
		Short: "Runs and inspects the doubly linked list self-test.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return system.Load(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func createSelfTestCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Runs all list scenarios and prints OK when they pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := system.Configure(); err != nil {
				return err
			}
			var runner *selftest.Runner
			system.VisitModules(func(module core.Module) {
				if r, ok := module.(*selftest.Runner); ok {
					runner = r
				}
			})
			if runner == nil {
				return errors.New("self-test module is not registered")
			}
			if _, err := runner.Run(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("OK")
			return nil
		},
	}
}

func createPrintConfigCommand(system *core.System) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Current config")
			cmd.Println(system.Config.PrintConfig())
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of this binary",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

// CreateCommand creates the command with all subcommands to run the system.
func CreateCommand(system *core.System) *cobra.Command {
	command := createRootCommand(system)
	command.SetOut(stdOutWriter)
	command.AddCommand(createSelfTestCommand(system))
	command.AddCommand(createPrintConfigCommand(system))
	command.AddCommand(createVersionCommand())
	addFlagSets(system, command)
	return command
}

// CreateSystem creates the system and registers all default modules.
func CreateSystem() *core.System {
	system := core.NewSystem()
	system.RegisterModule(selftest.NewRunner(stdOutWriter, prometheus.DefaultRegisterer, nil))
	return system
}

// Execute executes the root command for the given system. It returns when the command completes or ctx is cancelled.
func Execute(ctx context.Context, system *core.System) error {
	return CreateCommand(system).ExecuteContext(ctx)
}

func addFlagSets(system *core.System, cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(core.FlagSet())
	system.VisitModules(func(module core.Module) {
		if m, ok := module.(core.FlagProvider); ok {
			cmd.PersistentFlags().AddFlagSet(m.FlagSet())
		}
	})
}
