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
	"bytes"
	"strings"
	"testing"

	"github.com/nuts-foundation/go-dlist/cmd"
	"github.com/nuts-foundation/go-dlist/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommandDocs(t *testing.T) {
	buf := new(bytes.Buffer)

	err := GenerateCommandDocs(cmd.CreateCommand(cmd.CreateSystem()), buf)

	require.NoError(t, err)
	docs := buf.String()
	assert.Contains(t, docs, "dlist selftest\n^^^^^^^^^^^^^^\n")
	assert.Contains(t, docs, "  dlist config [flags]")
	assert.Contains(t, docs, "--selftest.teardownsize")
	assert.NotContains(t, docs, "dlist help")
}

func TestGenerateOptionsDocs(t *testing.T) {
	buf := new(bytes.Buffer)

	err := GenerateOptionsDocs(cmd.CreateSystem(), buf)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "==="))
	assert.True(t, strings.HasPrefix(lines[1], "Key"))
	assert.True(t, strings.HasPrefix(lines[3], "configfile"))
	assert.Contains(t, buf.String(), "**SelfTest**")
	assert.Contains(t, buf.String(), "selftest.teardownsize")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "==="))
}

func TestGenerateOptionsDocs_noModules(t *testing.T) {
	buf := new(bytes.Buffer)

	require.NoError(t, GenerateOptionsDocs(core.NewSystem(), buf))

	assert.NotContains(t, buf.String(), "selftest")
}

func Test_renderRow(t *testing.T) {
	assert.Equal(t, "a    b\n", renderRow(vals("a", "b"), []int{3, 1}))
	assert.Equal(t, "**x**\n", renderRow([]rstValue{{value: "x", bold: true}}, []int{5, 3}))
	assert.Equal(t, "\\:key\n", renderRow(vals(":key"), []int{5}))
}

func Test_fixCopyrightNotice(t *testing.T) {
	t.Run("adds header", func(t *testing.T) {
		fixed, changed := fixCopyrightNotice("package main\n")
		assert.True(t, changed)
		assert.True(t, strings.HasPrefix(fixed, "/*\n * "+yearRegexReplacement))
		assert.True(t, strings.HasSuffix(fixed, "*/\n\npackage main\n"))
	})
	t.Run("updates year", func(t *testing.T) {
		fixed, changed := fixCopyrightNotice("/*\n * Copyright (C) 2019 Nuts community\n */\npackage main\n")
		assert.Equal(t, yearRegexReplacement != "Copyright (C) 2019 Nuts community", changed)
		assert.Contains(t, fixed, yearRegexReplacement)
	})
	t.Run("skips generated code", func(t *testing.T) {
		_, changed := fixCopyrightNotice("// Code generated by MockGen. DO NOT EDIT.\npackage main\n")
		assert.False(t, changed)
	})
}
