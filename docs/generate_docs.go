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
	"io"
	"os"
	"path"

	"github.com/nuts-foundation/go-dlist/cmd"
)

const pagesDirectory = "docs/pages"

func generateDocs() {
	system := cmd.CreateSystem()
	writeDocument(path.Join(pagesDirectory, "commands.rst"), func(writer io.Writer) error {
		return GenerateCommandDocs(cmd.CreateCommand(system), writer)
	})
	writeDocument(path.Join(pagesDirectory, "options.rst"), func(writer io.Writer) error {
		return GenerateOptionsDocs(system, writer)
	})
}

func writeDocument(fileName string, generate func(writer io.Writer) error) {
	if err := os.MkdirAll(path.Dir(fileName), os.ModePerm); err != nil {
		panic(err)
	}
	target, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		panic(err)
	}
	defer target.Close()
	if err := generate(target); err != nil {
		panic(err)
	}
	if err := target.Sync(); err != nil {
		panic(err)
	}
}
