// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reclaimer - periodically return a tree's unused slabs
//
// the tree itself is not synchronised, so the reclaimer is given the
// same lock that the rest of the program holds while using the tree.
// Run it with the background package:
//
//   r, err := reclaimer.New(tree, &lock, &config.Reclaim, logger.New("reclaimer"))
//   ...
//   processes := background.Start(background.Processes{r}, nil)
//   ...
//   processes.Stop()
package reclaimer
