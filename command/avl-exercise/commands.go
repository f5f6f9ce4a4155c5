// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/avl"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "print-tree", "tree":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing key arguments")
		}
		keys, err := parseKeys(arguments)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printTree(os.Stdout, keys)

	case "start", "run", "print-config", "cfg":
		return false // needs the configuration

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--soak] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  print-tree KEY...          (tree)   - insert the keys into an empty tree and display it\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - run the workload, same as no arguments\n")
		fmt.Printf("                                        with --soak repeat it until interrupted\n")
		fmt.Printf("\n")

		fmt.Printf("  print-config               (cfg)    - check and display the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
//
// either returns false to continue with the main program or handles
// the command and returns true
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "print-config", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // "start", "run"
		return false
	}

	return true
}

// decimal keys, duplicates allowed
func parseKeys(arguments []string) ([]avl.Key, error) {
	keys := make([]avl.Key, 0, len(arguments))
	for _, s := range arguments {
		k, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return nil, err
		}
		keys = append(keys, avl.Key(k))
	}
	return keys, nil
}

// printTree - build a tree from the keys in the order given and
// display it, returns the tree height
func printTree(w io.Writer, keys []avl.Key) int {
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(avl.NewNode(k))
	}
	tree.Print(w)
	fmt.Fprintf(w, "nodes: %d  height: %d\n", tree.Count(), tree.Height())
	return tree.Height()
}
