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
	"sort"
	"strings"

	"github.com/nuts-foundation/go-dlist/core"
	"github.com/spf13/pflag"
)

// GenerateOptionsDocs writes a reStructuredText table of all config options, global options first
// followed by a section per module.
func GenerateOptionsDocs(system *core.System, writer io.Writer) error {
	globalFlags := core.FlagSet()
	rows := flagsToRows(globalFlags)

	var modules []string
	moduleFlags := map[string]*pflag.FlagSet{}
	system.VisitModules(func(module core.Module) {
		provider, ok := module.(core.FlagProvider)
		named, isNamed := module.(core.Named)
		if !ok || !isNamed {
			return
		}
		modules = append(modules, named.Name())
		moduleFlags[named.Name()] = provider.FlagSet()
	})
	sort.Strings(modules)
	for _, name := range modules {
		rows = append(rows, []rstValue{{value: name, bold: true}})
		rows = append(rows, flagsToRows(moduleFlags[name])...)
	}
	return printRstTable(vals("Key", "Default", "Description"), rows, writer)
}

func flagsToRows(flags *pflag.FlagSet) [][]rstValue {
	var rows [][]rstValue
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		rows = append(rows, vals(f.Name, f.DefValue, f.Usage))
	})
	sort.Slice(rows, func(i, j int) bool {
		return rows[i][0].value < rows[j][0].value
	})
	return rows
}

type rstValue struct {
	value string
	bold  bool
}

func (v rstValue) render() string {
	rendered := v.value
	if strings.HasPrefix(rendered, ":") {
		rendered = "\\" + rendered
	}
	if v.bold {
		rendered = fmt.Sprintf("**%s**", rendered)
	}
	return rendered
}

func vals(values ...string) []rstValue {
	result := make([]rstValue, len(values))
	for i, v := range values {
		result[i] = rstValue{value: v}
	}
	return result
}

func printRstTable(header []rstValue, rows [][]rstValue, writer io.Writer) error {
	widths := make([]int, len(header))
	for _, row := range append([][]rstValue{header}, rows...) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell.render()))
			}
		}
	}
	divider := make([]rstValue, len(widths))
	for i, width := range widths {
		divider[i] = rstValue{value: strings.Repeat("=", width)}
	}
	lines := append([][]rstValue{divider, header, divider}, rows...)
	lines = append(lines, divider)
	for _, line := range lines {
		if _, err := io.WriteString(writer, renderRow(line, widths)); err != nil {
			return err
		}
	}
	return nil
}

// renderRow pads every cell to its column width; rows with fewer cells leave the remaining columns empty.
func renderRow(row []rstValue, widths []int) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		var rendered string
		if i < len(row) {
			rendered = row[i].render()
		}
		cells[i] = rendered + strings.Repeat(" ", width-len(rendered))
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ") + "\n"
}
