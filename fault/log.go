// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to catch up before a panic
const logFlushDelay = 100 * time.Millisecond

// hold a logger channel
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
// the logger package must already be initialised
func Initialise() error {
	m.Lock()
	defer m.Unlock()
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	m.Lock()
	defer m.Unlock()
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panic - final panic
func Panic(message string) {
	if internalCriticalf("%s", message) {
		time.Sleep(logFlushDelay)
	}
	panic(message)
}

// PanicWithError - final panic
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	if internalCriticalf("%s", s) {
		time.Sleep(logFlushDelay)
	}
	panic(s)
}

// Violation - a caller broke a precondition, the error value itself
// is the panic value so it can be recovered and classified
func Violation(err error) {
	if _, file, line, ok := runtime.Caller(1); ok {
		if internalCriticalf("(%q:%d) contract violation: %s", file, line, err) {
			time.Sleep(logFlushDelay)
		}
	}
	panic(err)
}

// internal routines to handle uninitialised logger channel
// returns true if the message went to the log file
func internalCriticalf(format string, arguments ...interface{}) bool {
	m.Lock()
	defer m.Unlock()
	if nil == log {
		return false
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
	return true
}
