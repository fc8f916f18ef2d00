// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

func absolute(t *testing.T, name string) string {
	f, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return f
}

func TestFullConfiguration(t *testing.T) {
	c, err := configuration.GetConfiguration(filepath.Join("testdata", "full.conf"))
	require.NoError(t, err)

	assert.Equal(t, 64, c.Tree.SlabSize)
	assert.Equal(t, 16, c.Tree.MaximumSlabs)
	assert.Equal(t, "5s", c.Reclaim.Interval)
	assert.Equal(t, 256, c.Reclaim.MinimumFree)

	assert.Equal(t, absolute(t, "logs"), c.Logging.Directory)
	assert.Equal(t, "tree.log", c.Logging.File)
	assert.Equal(t, 65536, c.Logging.Size)
	assert.Equal(t, 3, c.Logging.Count)
	assert.False(t, c.Logging.Console)
	assert.Equal(t, "warn", c.Logging.Levels[logger.DefaultTag])
	assert.Equal(t, "debug", c.Logging.Levels["reclaimer"])

	// the tree section drives a limited tree
	tree, err := avl.NewFromConfiguration(&c.Tree, avl.CompareItems, nil)
	require.NoError(t, err)
	assert.Equal(t, 64, tree.SlabSize())
}

func TestPartialConfigurationKeepsDefaults(t *testing.T) {
	require.NoError(t, os.Setenv("AVL_TEST_SLAB_SIZE", "16"))
	defer os.Unsetenv("AVL_TEST_SLAB_SIZE")

	c, err := configuration.GetConfiguration(filepath.Join("testdata", "partial.conf"))
	require.NoError(t, err)

	d := configuration.Default()
	assert.Equal(t, 16, c.Tree.SlabSize)
	assert.Equal(t, 0, c.Tree.MaximumSlabs)
	assert.Equal(t, d.Reclaim, c.Reclaim)
	assert.Equal(t, absolute(t, "log"), c.Logging.Directory)
	assert.Equal(t, d.Logging.File, c.Logging.File)
	assert.Equal(t, d.Logging.Levels, c.Logging.Levels)
}

func TestDefaults(t *testing.T) {
	d := configuration.Default()
	assert.Equal(t, configuration.DefaultSlabSize, d.Tree.SlabSize)
	assert.Equal(t, configuration.DefaultReclaimInterval, d.Reclaim.Interval)
	assert.Equal(t, configuration.DefaultMinimumFree, d.Reclaim.MinimumFree)
	assert.Equal(t, "info", d.Logging.Levels[logger.DefaultTag])
}

func TestInvalidConfigurations(t *testing.T) {
	_, err := configuration.GetConfiguration(filepath.Join("testdata", "no-such.conf"))
	assert.Equal(t, fault.ErrConfigurationNotFound, err)

	_, err = configuration.GetConfiguration(filepath.Join("testdata", "bad-slab.conf"))
	assert.Equal(t, fault.ErrInvalidSlabSize, err)

	_, err = configuration.GetConfiguration(filepath.Join("testdata", "bad-interval.conf"))
	assert.Equal(t, fault.ErrInvalidInterval, err)

	_, err = configuration.GetConfiguration(filepath.Join("testdata", "not-table.conf"))
	assert.Equal(t, fault.ErrConfigurationNotTable, err)

	_, err = configuration.GetConfiguration(filepath.Join("testdata", "syntax.conf"))
	assert.Error(t, err)
}

func TestParseNeedsStructPointer(t *testing.T) {
	fileName := filepath.Join("testdata", "full.conf")

	var c configuration.Configuration
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, c))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, nil))

	n := 0
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n))

	assert.NoError(t, configuration.ParseConfigurationFile(fileName, &c))
	assert.Equal(t, 64, c.Tree.SlabSize)
}
