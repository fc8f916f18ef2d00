// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	base := filepath.FromSlash("/var/lib/avl")

	assert.Equal(t, filepath.Join(base, "log"), util.EnsureAbsolute(base, "log"))
	assert.Equal(t, filepath.Join(base, "log"), util.EnsureAbsolute(base, "./x/../log"))
	assert.Equal(t, base, util.EnsureAbsolute(base, ""))

	abs := filepath.FromSlash("/tmp/log")
	assert.Equal(t, abs, util.EnsureAbsolute(base, abs))
}

func TestEnsureFileExists(t *testing.T) {
	assert.True(t, util.EnsureFileExists("paths.go"))
	assert.False(t, util.EnsureFileExists("no-such-file"))
	assert.False(t, util.EnsureFileExists("."), "directory is not a file")
}
