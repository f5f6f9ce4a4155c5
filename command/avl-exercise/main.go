// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "soak", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Print = true
	}
	if 0 == theConfiguration.Seed {
		theConfiguration.Seed = time.Now().UnixNano()
	}

	// these commands require the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// the log directory is created on demand
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, theConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("seed: %d", theConfiguration.Seed)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	quiet := len(options["quiet"]) > 0
	e := newExerciser(logger.New("exercise"), os.Stdout, theConfiguration)
	e.forcePrint = len(options["verbose"]) > 0

	if 0 == len(options["soak"]) {
		err = runOnce(e, theConfiguration)
		report(e, quiet)
		if nil != err {
			log.Criticalf("run error: %s", err)
			exitwithstatus.Message("%s: run error: %s", program, err)
		}
		return
	}

	err = runSoak(log, e, configurationFile, theConfiguration, quiet)
	report(e, quiet)
	if nil != err {
		log.Criticalf("soak error: %s", err)
		exitwithstatus.Message("%s: soak error: %s", program, err)
	}
}

// a single round of all configured workloads
func runOnce(e *exerciser, c *Configuration) error {
	r := newRandom(c.Seed)
	return e.round(makeWorkloads(c.Order, c.Nodes, c.KeyRange, r))
}

// repeated rounds until a signal or the first failure
func runSoak(log *logger.L, e *exerciser, configurationFile string, c *Configuration, quiet bool) error {

	updates := make(chan *Configuration, 1)
	failed := make(chan error, 1)

	processes := background.Processes{
		newSoak(logger.New("soak"), e, c, updates, failed),
	}

	if c.Soak.Reload {
		channel := newWatcherChannel()
		watcher, err := newFileWatcher(configurationFile, logger.New("file-watcher"), channel)
		if nil != err {
			return err
		}
		processes = append(processes,
			watcher,
			&reloader{
				log:      logger.New("reloader"),
				fileName: configurationFile,
				channel:  channel,
				updates:  updates,
			},
		)
	}

	handle := background.Start(processes, nil)
	defer handle.Stop()

	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
		return nil

	case err := <-failed:
		return err
	}
}

func report(e *exerciser, quiet bool) {
	if quiet {
		return
	}
	b, err := json.MarshalIndent(e.summary(), "", "  ")
	if nil != err {
		exitwithstatus.Message("error: summary marshal error: %s", err)
	}
	fmt.Printf("summary:\n%s\n", b)
}
