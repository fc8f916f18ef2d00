// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/reclaimer"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	DefaultSlabSize = 128

	DefaultReclaimInterval = "30s"
	DefaultMinimumFree     = 1024

	defaultLogDirectory = "log"
	defaultLogFile      = "avl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - everything needed to run a tree with a background
// reclaimer
type Configuration struct {
	Tree    avl.Configuration       `gluamapper:"tree" json:"tree"`
	Reclaim reclaimer.Configuration `gluamapper:"reclaim" json:"reclaim"`
	Logging logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// Default - a configuration with every default applied
func Default() *Configuration {
	return &Configuration{
		Tree: avl.Configuration{
			SlabSize:     DefaultSlabSize,
			MaximumSlabs: 0, // unlimited
		},
		Reclaim: reclaimer.Configuration{
			Interval:    DefaultReclaimInterval,
			MinimumFree: DefaultMinimumFree,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
//
// fields missing from the file keep their defaults and a relative
// log directory is taken relative to the configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(fileName) {
		return nil, fault.ErrConfigurationNotFound
	}

	options := Default()
	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	if options.Tree.SlabSize < 1 {
		return nil, fault.ErrInvalidSlabSize
	}
	if options.Tree.MaximumSlabs < 0 {
		return nil, fault.ErrInvalidLimit
	}
	if _, err := options.Reclaim.Duration(); nil != err {
		return nil, err
	}

	directory, _ := filepath.Split(fileName)
	options.Logging.Directory = util.EnsureAbsolute(directory, options.Logging.Directory)

	return options, nil
}
