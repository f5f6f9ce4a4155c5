// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
)

func TestWatcherEvents(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	channel := newWatcherChannel()
	w, err := newFileWatcher(fileName, logger.New("test"), channel)
	if !assert.Nil(t, err, "new watcher") {
		return
	}

	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()
	time.Sleep(100 * time.Millisecond)

	err = ioutil.WriteFile(fileName, []byte("return { nodes = 5 }\n"), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}

	select {
	case <-channel.change:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not receive change event")
	}

	os.Remove(fileName)

	select {
	case <-channel.remove:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not receive remove event")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/nonexistent/avl-exercise.conf", logger.New("test"), newWatcherChannel())
	assert.Equal(t, fault.ErrMissingConfigFile, err, "missing file")
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	channel := newWatcherChannel()
	w := &fileWatcher{
		log:     logger.New("test"),
		channel: channel,
	}

	assert.False(t, isChannelFull(channel.change), "new channel full")
	w.sendEvent(channel.change, "change")
	assert.True(t, isChannelFull(channel.change), "event not queued")
	w.sendEvent(channel.change, "change")
	assert.Equal(t, 1, len(channel.change), "second event not discarded")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, isRemoveEvent(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, isRemoveEvent(fsnotify.Event{Name: ""}), "empty name")
	assert.False(t, isRemoveEvent(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")

	assert.True(t, isChangeEvent(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, isChangeEvent(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.False(t, isChangeEvent(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
}
