// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StructureError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = StructureError("node count does not match tree")
	ErrHeight                = StructureError("stored height is incorrect")
	ErrInvalidKeyOrder       = InvalidError("key order is not recognised")
	ErrInvalidKeyRange       = InvalidError("key range is too small for node count")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNodeCount      = InvalidError("node count must be positive")
	ErrInvalidRate           = InvalidError("soak rate must be positive")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyExists             = ExistsError("key already exists")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingConfigFile     = NotFoundError("configuration file is not found")
	ErrNilNode               = InvalidError("node is nil")
	ErrNodeIsFree            = InvalidError("node is already in the pool")
	ErrNodeIsLinked          = InvalidError("node is linked into a tree")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrOrder                 = StructureError("keys are not in ascending order")
	ErrParentLink            = StructureError("child does not point back to parent")
	ErrRootHasParent         = StructureError("root node has a parent")
	ErrTreeNotEmpty          = StructureError("tree is not empty")
	ErrUnbalanced            = StructureError("balance factor out of range")
	ErrWrongNodeFound        = ProcessError("lookup found a different key")
	ErrWrongNodeRemoved      = ProcessError("removed node has a different key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e StructureError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrStructure(e error) bool { _, ok := e.(StructureError); return ok }
