// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed      = ProcessError("unable to allocate a slab of nodes")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrAlreadyPresent        = ExistsError("item already present in tree")
	ErrBudgetExhausted       = ProcessError("memory budget exhausted")
	ErrConfigurationNotFound = NotFoundError("configuration file not found")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrCorruptTree           = RecordError("tree balance is corrupt")
	ErrDepthExceeded         = LengthError("tree depth exceeds supported maximum")
	ErrFreeListCorrupt       = RecordError("free list is corrupt")
	ErrHeightMismatch        = RecordError("stored tree height does not match actual height")
	ErrInvalidInterval       = InvalidError("reclaim interval is invalid")
	ErrInvalidLimit          = InvalidError("memory limit is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidSlabSize       = InvalidError("slab size must be at least one")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingLock           = InvalidError("lock is required")
	ErrMissingTree           = InvalidError("tree is required")
	ErrNegativeMinimumFree   = InvalidError("minimum free nodes must not be negative")
	ErrNilComparator         = InvalidError("comparator is required")
	ErrNilPayload            = InvalidError("payload must not be nil")
	ErrNotFound              = NotFoundError("item not found")
	ErrOrdering              = RecordError("tree items are out of order")
	ErrSizeMismatch          = RecordError("stored tree size does not match node count")
	ErrTreeNotEmpty          = InvalidError("tree already holds nodes")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
