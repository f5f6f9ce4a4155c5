// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

// events from the configuration file watcher
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// fileWatcher - background process converting file system events
// into change and remove notifications
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channel  watcherChannel
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel watcherChannel) (*fileWatcher, error) {

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrMissingConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.filePath); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return
	}
	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			w.log.Debugf("file event: %v", event)

			if isRemoveEvent(event) {
				w.log.Warnf("file: %q removed, stop watching", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				break loop
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("event for: %q discarded", event.Name)
				continue loop
			}

			if isChangeEvent(event) {
				w.sendEvent(w.channel.change, "change")
			}
		}
	}

	// idle until shutdown
	<-shutdown
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// a pending notification already covers this event
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if isChannelFull(ch) {
		w.log.Debugf("event channel: %s full, discard event", name)
		return
	}
	ch <- struct{}{}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return "" == event.Name || event.Op&fsnotify.Remove == fsnotify.Remove
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
