// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestDefaultConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	dir := filepath.Dir(fileName)
	assert.Equal(t, defaultNodes, c.Nodes, "nodes")
	assert.Equal(t, uint64(defaultKeyRangeScale*defaultNodes), c.KeyRange, "key range")
	assert.Equal(t, orderBoth, c.Order, "order")
	assert.True(t, c.Verify, "verify")
	assert.False(t, c.Print, "print")
	assert.Equal(t, defaultSoakRate, c.Soak.Rate, "soak rate")
	assert.Equal(t, defaultSoakBurst, c.Soak.Burst, "soak burst")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("avl-exercise.conf.sample")
	if !assert.Nil(t, err, "read sample") {
		return
	}
	fileName, cleanup := writeConfiguration(t, string(sample))
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, 1024, c.Nodes, "nodes")
	assert.Equal(t, uint64(10240), c.KeyRange, "key range")
	assert.Equal(t, 1024, c.Preallocate, "preallocate")
	assert.True(t, c.Soak.Reload, "reload")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "error", c.Logging.Levels["avl"], "log levels")
}

func TestConfigurationValues(t *testing.T) {
	text := `
return {
   nodes = 50,
   key_range = 60,
   order = " Random ",
   seed = 99,
   verify = false,
   print = true,
   soak = {
      rate = 2.5,
      burst = 0,
   },
   logging = {
      directory = "/var/tmp/avl-log",
   },
}
`
	fileName, cleanup := writeConfiguration(t, text)
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, 50, c.Nodes, "nodes")
	assert.Equal(t, uint64(60), c.KeyRange, "key range")
	assert.Equal(t, orderRandom, c.Order, "order not normalised")
	assert.Equal(t, int64(99), c.Seed, "seed")
	assert.False(t, c.Verify, "verify")
	assert.True(t, c.Print, "print")
	assert.Equal(t, 2.5, c.Soak.Rate, "soak rate")
	assert.Equal(t, 1, c.Soak.Burst, "burst not raised to minimum")
	assert.Equal(t, "/var/tmp/avl-log", c.Logging.Directory, "absolute log directory")
}

func TestInvalidConfiguration(t *testing.T) {
	fixtures := []struct {
		text string
		err  error
	}{
		{"return { nodes = 0 }", fault.ErrInvalidNodeCount},
		{"return { nodes = -5 }", fault.ErrInvalidNodeCount},
		{"return { order = \"sideways\" }", fault.ErrInvalidKeyOrder},
		{"return { nodes = 100, key_range = 99 }", fault.ErrInvalidKeyRange},
		{"return { soak = { rate = 0 } }", fault.ErrInvalidRate},
		{"return 1", fault.ErrConfigurationNotTable},
	}

	for i, item := range fixtures {
		fileName, cleanup := writeConfiguration(t, item.text)
		_, err := getConfiguration(fileName)
		cleanup()
		assert.Equal(t, item.err, err, "%d: %q", i, item.text)
	}
}

func TestMissingConfiguration(t *testing.T) {
	_, err := getConfiguration("/nonexistent/avl-exercise.conf")
	assert.Equal(t, fault.ErrMissingConfigFile, err, "missing file")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}
