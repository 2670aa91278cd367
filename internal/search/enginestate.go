//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"sync/atomic"
	"time"
)

// State is one point of the engine's cooperative search lifecycle.
type State int32

const (
	// Waiting means no search is active; the engine is idle.
	Waiting State = iota
	// Searching means a normal (non-ponder) search is running.
	Searching
	// Pondering means a search is running on the opponent's expected
	// move; it ignores its own clock until a ponderhit promotes it to
	// Searching or a stop discards it.
	Pondering
	// Stopping means a running search has been asked to wind down; it
	// must return its last completed result and fall back to Waiting.
	Stopping
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "WAITING"
	case Searching:
		return "SEARCHING"
	case Pondering:
		return "PONDERING"
	case Stopping:
		return "STOPPING"
	default:
		return "UNKNOWN"
	}
}

// EngineState is the atomic state machine the search goroutine and a
// watchdog goroutine both read and write without locks. generation is
// bumped on every Engine.Go so a watchdog armed for a prior search
// can recognize it has gone stale and exit without acting.
type EngineState struct {
	state      int32
	generation uint64
}

// Get returns the current state.
func (e *EngineState) Get() State {
	return State(atomic.LoadInt32(&e.state))
}

// Set transitions to s.
func (e *EngineState) Set(s State) {
	atomic.StoreInt32(&e.state, int32(s))
}

// CompareAndSwap transitions from old to new only if the current
// state is still old.
func (e *EngineState) CompareAndSwap(old, new State) bool {
	return atomic.CompareAndSwapInt32(&e.state, int32(old), int32(new))
}

// Generation returns the current search generation.
func (e *EngineState) Generation() uint64 {
	return atomic.LoadUint64(&e.generation)
}

// NewGeneration bumps and returns the new generation, called once per
// Engine.Go before the watchdog is armed.
func (e *EngineState) NewGeneration() uint64 {
	return atomic.AddUint64(&e.generation, 1)
}

// watchdog sleeps for hard, then transitions the engine to Stopping
// unless the search has already finished (state back to Waiting) or
// a newer search has since started (generation mismatch). While the
// state is Pondering the clock is suspended: the watchdog re-checks
// every pollInterval without consuming the hard budget, since ponder
// time is unbounded until a ponderhit or stop arrives.
func watchdog(e *EngineState, generation uint64, hard time.Duration) {
	const pollInterval = 20 * time.Millisecond
	deadline := time.Now().Add(hard)
	for {
		if e.Generation() != generation {
			return
		}
		switch e.Get() {
		case Waiting:
			return
		case Pondering:
			deadline = time.Now().Add(hard)
			time.Sleep(pollInterval)
			continue
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if remaining > pollInterval {
			remaining = pollInterval
		}
		time.Sleep(remaining)
	}
	if e.Generation() == generation {
		e.CompareAndSwap(Searching, Stopping)
	}
}
