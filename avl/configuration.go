// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Configuration - tree settings as read from a configuration file
type Configuration struct {
	SlabSize     int `gluamapper:"slab_size" json:"slab_size"`
	MaximumSlabs int `gluamapper:"maximum_slabs" json:"maximum_slabs"` // zero for no limit
}

// NewFromConfiguration - create an empty tree from configured settings
func NewFromConfiguration(configuration *Configuration, compare Comparator, context interface{}) (*Tree, error) {
	tree, err := New(configuration.SlabSize, compare, context)
	if nil != err {
		return nil, err
	}
	if configuration.MaximumSlabs > 0 {
		limit, err := NewLimit(configuration.MaximumSlabs * configuration.SlabSize)
		if nil != err {
			return nil, err
		}
		if err := tree.SetBudget(limit); nil != err {
			return nil, err
		}
	}
	return tree, nil
}
