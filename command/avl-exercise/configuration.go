// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultNodes         = 1024
	defaultKeyRangeScale = 10 // random keys are drawn from [0, scale*nodes)
	defaultOrder         = orderBoth
	defaultPreallocate   = 0

	defaultSoakRate  = 10.0 // rounds per second
	defaultSoakBurst = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-exercise.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// key orders accepted by the "order" setting
const (
	orderSequential = "sequential"
	orderRandom     = "random"
	orderBoth       = "both"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// SoakType - repeated rounds until interrupted
type SoakType struct {
	Rate   float64 `gluamapper:"rate" json:"rate"`
	Burst  int     `gluamapper:"burst" json:"burst"`
	Reload bool    `gluamapper:"reload" json:"reload"`
}

// Configuration - the workload and program settings
type Configuration struct {
	Nodes       int                  `gluamapper:"nodes" json:"nodes"`
	KeyRange    uint64               `gluamapper:"key_range" json:"key_range"`
	Order       string               `gluamapper:"order" json:"order"`
	Seed        int64                `gluamapper:"seed" json:"seed"`
	Verify      bool                 `gluamapper:"verify" json:"verify"`
	Print       bool                 `gluamapper:"print" json:"print"`
	Trace       bool                 `gluamapper:"trace" json:"trace"`
	Preallocate int                  `gluamapper:"preallocate" json:"preallocate"`
	Soak        SoakType             `gluamapper:"soak" json:"soak"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrMissingConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Nodes:       defaultNodes,
		KeyRange:    0, // computed from nodes
		Order:       defaultOrder,
		Seed:        0, // time based
		Verify:      true,
		Print:       false,
		Trace:       false,
		Preallocate: defaultPreallocate,

		Soak: SoakType{
			Rate:   defaultSoakRate,
			Burst:  defaultSoakBurst,
			Reload: false,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"data_directory": dataDirectory,
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// force the log directory to be an absolute path
	// relative paths are assigned to the configuration directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)

	return options, nil
}

// normalise the workload settings and reject unusable values
func (c *Configuration) validate() error {

	if c.Nodes <= 0 {
		return fault.ErrInvalidNodeCount
	}

	c.Order = strings.ToLower(strings.TrimSpace(c.Order))
	switch c.Order {
	case orderSequential, orderRandom, orderBoth:
	default:
		return fault.ErrInvalidKeyOrder
	}

	if 0 == c.KeyRange {
		c.KeyRange = defaultKeyRangeScale * uint64(c.Nodes)
	}
	if c.KeyRange < uint64(c.Nodes) {
		return fault.ErrInvalidKeyRange
	}

	if c.Soak.Rate <= 0 {
		return fault.ErrInvalidRate
	}
	if c.Soak.Burst < 1 {
		c.Soak.Burst = 1
	}

	if c.Preallocate < 0 {
		c.Preallocate = 0
	}

	return nil
}
