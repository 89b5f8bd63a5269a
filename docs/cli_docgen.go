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
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenerateCommandDocs writes a reStructuredText section for cmd and every available subcommand.
// Non-runnable commands only contribute their subcommands.
func GenerateCommandDocs(cmd *cobra.Command, writer io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	if cmd.Runnable() {
		if err := writeCommandSection(cmd, writer); err != nil {
			return err
		}
	}
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := GenerateCommandDocs(c, writer); err != nil {
			return err
		}
	}
	return nil
}

func writeCommandSection(cmd *cobra.Command, writer io.Writer) error {
	name := cmd.CommandPath()
	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}
	if _, err := fmt.Fprintf(writer, "\n%s\n%s\n\n%s\n\n::\n\n  %s\n\n", name, strings.Repeat("^", len(name)), description, cmd.UseLine()); err != nil {
		return err
	}
	for _, flags := range []*pflag.FlagSet{cmd.NonInheritedFlags(), cmd.InheritedFlags()} {
		if !flags.HasAvailableFlags() {
			continue
		}
		if _, err := io.WriteString(writer, indent(flags.FlagUsages())); err != nil {
			return err
		}
	}
	return nil
}

// indent makes flag usages part of the preceding literal block.
func indent(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
