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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	oldVersion := GitVersion
	defer func() {
		GitVersion = oldVersion
	}()

	t.Run("branch when not tagged", func(t *testing.T) {
		GitVersion = ""
		assert.Equal(t, GitBranch, Version())
	})
	t.Run("branch when undefined", func(t *testing.T) {
		GitVersion = "undefined"
		assert.Equal(t, GitBranch, Version())
	})
	t.Run("tag", func(t *testing.T) {
		GitVersion = "v1.0.0"
		assert.Equal(t, "v1.0.0", Version())
	})
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	assert.Contains(t, info, "Git version: ")
	assert.Contains(t, info, "Git commit: ")
	assert.Contains(t, info, "OS/Arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}
