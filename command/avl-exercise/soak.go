// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/counter"
)

// soak - background process running rounds at a limited rate until
// shutdown or the first failure
type soak struct {
	log      *logger.L
	e        *exerciser
	random   *rand.Rand
	limiter  *rate.Limiter
	settings Configuration
	updates  <-chan *Configuration
	failed   chan<- error
	reloads  counter.Counter
}

func newSoak(log *logger.L, e *exerciser, c *Configuration, updates <-chan *Configuration, failed chan<- error) *soak {
	return &soak{
		log:      log,
		e:        e,
		random:   newRandom(c.Seed),
		limiter:  rate.NewLimiter(rate.Limit(c.Soak.Rate), c.Soak.Burst),
		settings: *c,
		updates:  updates,
		failed:   failed,
	}
}

func (s *soak) Run(args interface{}, shutdown <-chan struct{}) {

	s.log.Infof("soak: rate: %g/s  burst: %d", s.settings.Soak.Rate, s.settings.Soak.Burst)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case c := <-s.updates:
			s.apply(c)
		default:
		}

		r := s.limiter.Reserve()
		select {
		case <-shutdown:
			r.Cancel()
			break loop
		case <-time.After(r.Delay()):
		}

		c := &s.settings
		workloads := makeWorkloads(c.Order, c.Nodes, c.KeyRange, s.random)
		if err := s.e.round(workloads); nil != err {
			s.log.Criticalf("soak: round: %d  error: %s", s.e.rounds.Uint64(), err)
			s.failed <- err
			break loop
		}

		if 0 == s.e.rounds.Uint64()%100 {
			s.log.Infof("soak: %+v", s.e.summary())
		}
	}

	// idle until shutdown
	<-shutdown
	s.log.Infof("soak: stopped after: %d rounds", s.e.rounds.Uint64())
}

// apply - take over the workload settings of a reloaded configuration
//
// the seed and logging settings are only read at start up
func (s *soak) apply(c *Configuration) {
	s.reloads.Increment()

	s.settings.Nodes = c.Nodes
	s.settings.KeyRange = c.KeyRange
	s.settings.Order = c.Order
	s.settings.Verify = c.Verify
	s.settings.Print = c.Print
	s.e.verify = c.Verify
	s.e.print = c.Print || s.e.forcePrint

	if c.Soak.Rate != s.settings.Soak.Rate || c.Soak.Burst != s.settings.Soak.Burst {
		s.settings.Soak.Rate = c.Soak.Rate
		s.settings.Soak.Burst = c.Soak.Burst
		s.limiter = rate.NewLimiter(rate.Limit(c.Soak.Rate), c.Soak.Burst)
	}

	s.log.Infof("soak: reload: %d  nodes: %d  key range: %d  order: %s  rate: %g/s",
		s.reloads.Uint64(), c.Nodes, c.KeyRange, c.Order, c.Soak.Rate)
}

// reloader - background process re-reading the configuration file
// whenever the watcher reports a change
//
// only the newest configuration is kept for the soak run
type reloader struct {
	log      *logger.L
	fileName string
	channel  watcherChannel
	updates  chan *Configuration
	reads    counter.Counter
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channel.change:
			c, err := getConfiguration(r.fileName)
			if nil != err {
				r.log.Errorf("failed to read configuration from: %q  error: %s", r.fileName, err)
				r.reads.Increment()
				continue loop
			}

			// this is the only sender so after the drain the send
			// cannot block
			select {
			case <-r.updates:
				r.log.Info("replacing configuration update not yet applied")
			default:
			}
			r.updates <- c
			r.reads.Increment()

		case <-r.channel.remove:
			r.log.Warn("configuration file removed, reload disabled")
		}
	}
}
