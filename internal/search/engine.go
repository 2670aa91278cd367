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

// Package search implements the engine-independent part of a chess
// search: iterative deepening over a fail-soft alpha-beta negamax
// core with quiescence, a transposition table, null-move pruning,
// razoring, internal iterative deepening, late-move reductions,
// futility pruning and history/killer move ordering. It never touches
// a board directly; every position it recurses against implements
// types.Position.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/nullx002/daydreamer/internal/config"
	"github.com/nullx002/daydreamer/internal/history"
	myLogging "github.com/nullx002/daydreamer/internal/logging"
	tt "github.com/nullx002/daydreamer/internal/transpositiontable"
	. "github.com/nullx002/daydreamer/internal/types"
)

// Search owns everything one Engine.Go call needs: the position
// being searched, the long-lived transposition table and history
// tables, and the per-search scratch state (killers, PV table, node
// counter, statistics). It is not safe for concurrent use - exactly
// one goroutine ever drives it, with the watchdog goroutine only
// ever touching the shared EngineState.
type Search struct {
	log *logging.Logger

	tt      *tt.TtTable
	history *history.History
	state   *EngineState

	stack      *searchStack
	selectors  []*MoveSelector
	rootMoves  RootMoves
	constraints *Constraints

	nodes        uint64
	startTime    time.Time
	lastInfoTime time.Time
	stats        Statistics
}

// NewSearch creates a Search around the given transposition table and
// state machine; both are expected to outlive any single search.
func NewSearch(t *tt.TtTable, h *history.History, state *EngineState) *Search {
	return &Search{
		log:     myLogging.GetSearchLog(),
		tt:      t,
		history: h,
		state:   state,
		stack:   newSearchStack(),
	}
}

func (s *Search) selectorAt(ply int) *MoveSelector {
	for len(s.selectors) <= ply {
		s.selectors = append(s.selectors, NewMoveSelector(s.history))
	}
	return s.selectors[ply]
}

// shouldStop is the one predicate every recursion point in alphaBeta
// and quiescence polls: true once the watchdog (or an explicit Stop)
// has moved the engine to Stopping, or once the node limit from the
// current Constraints has been reached (ignored for an infinite
// search). It never fires while Pondering.
func (s *Search) shouldStop() bool {
	switch s.state.Get() {
	case Stopping:
		return true
	case Pondering:
		return false
	}
	if !s.constraints.Infinite && s.constraints.NodeLimit > 0 && s.nodes >= s.constraints.NodeLimit {
		return true
	}
	return false
}

// run drives one complete search: age the transposition table into a
// new generation, generate root moves, report the time limits if a
// clock governs this search, iterate, and report the result. It always
// leaves the engine back in the Waiting state.
func (s *Search) run(pos Position, c *Constraints) *Result {
	s.constraints = c
	s.nodes = 0
	s.stats.Clear()
	s.stack.clear()
	s.tt.NewGeneration()
	s.startTime = c.StartTime
	s.lastInfoTime = s.startTime

	moves := pos.PseudoLegalMoves(false)
	if len(c.SearchMoves) > 0 {
		filtered := moves[:0]
		for _, m := range moves {
			for _, sm := range c.SearchMoves {
				if m == sm {
					filtered = append(filtered, m)
					break
				}
			}
		}
		moves = filtered
	}
	s.rootMoves = newRootMoves(moves)

	if c.UseTimer {
		s.sendTimeLimits(c.SoftLimit, c.HardLimit)
	}

	result := s.iterativeDeepening(pos)

	s.state.Set(Stopping)
	sendBestMove(result.BestMove, result.PonderMove)
	s.state.Set(Waiting)
	return result
}

// Engine is the UCI-facing facade: it owns the long-lived
// transposition table, history table and config/logger, and exposes
// the handful of operations a protocol front-end needs. Start/Stop
// and "is a search currently running" are each gated by a
// weight-1 semaphore, mirroring how the teacher engine serializes
// StartSearch against itself and lets WaitWhileSearching block until
// the running search's weight is released.
type Engine struct {
	log *logging.Logger

	tt      *tt.TtTable
	history *history.History
	state   *EngineState

	startSem   *semaphore.Weighted
	runningSem *semaphore.Weighted

	search     *Search
	lastResult *Result
}

// NewEngine builds an Engine with a transposition table sized from
// config.Settings.Search.TTSize.
func NewEngine() *Engine {
	config.Setup()
	t := tt.NewTtTable(config.Settings.Search.TTSize)
	h := history.NewHistory()
	state := &EngineState{}
	return &Engine{
		log:        myLogging.GetEngineLog(),
		tt:         t,
		history:    h,
		state:      state,
		startSem:   semaphore.NewWeighted(1),
		runningSem: semaphore.NewWeighted(1),
		search:     NewSearch(t, h, state),
	}
}

// IsReady reports whether the engine can accept a new "go" command
// right now - true whenever no search is currently running.
func (e *Engine) IsReady() bool {
	return e.state.Get() == Waiting
}

// NewGame clears the transposition table and history ahead of a new
// game, per the UCI "ucinewgame" contract.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.history.Clear()
}

// ClearHash empties the transposition table without touching history.
func (e *Engine) ClearHash() {
	e.tt.Clear()
}

// ResizeCache reallocates the transposition table to sizeInMByte
// megabytes. Like Clear, this must not race a running search.
func (e *Engine) ResizeCache(sizeInMByte int) {
	e.tt.Resize(sizeInMByte)
}

// Go starts a search on pos under c, returning immediately; the
// result is available from LastResult once the search goroutine
// finishes. Calling Go while a search is already running blocks until
// the previous one has released its slot.
func (e *Engine) Go(pos Position, c *Constraints) {
	_ = e.startSem.Acquire(context.Background(), 1)
	defer e.startSem.Release(1)

	_ = e.runningSem.Acquire(context.Background(), 1)

	generation := e.state.NewGeneration()
	if c.Ponder {
		e.state.Set(Pondering)
	} else {
		e.state.Set(Searching)
	}
	c.StartTime = time.Now()

	if c.UseTimer {
		go watchdog(e.state, generation, c.HardLimit)
	}

	go func() {
		defer e.runningSem.Release(1)
		e.lastResult = e.search.run(pos, c)
	}()
}

// PonderHit promotes a running ponder search to a normal timed search.
func (e *Engine) PonderHit() {
	e.state.CompareAndSwap(Pondering, Searching)
}

// Stop asks a running search to return its best result so far and
// blocks until it has done so.
func (e *Engine) Stop() {
	for {
		st := e.state.Get()
		if st == Waiting {
			return
		}
		if e.state.CompareAndSwap(st, Stopping) || st == Stopping {
			break
		}
	}
	e.WaitWhileSearching()
}

// WaitWhileSearching blocks until no search is running.
func (e *Engine) WaitWhileSearching() {
	_ = e.runningSem.Acquire(context.Background(), 1)
	e.runningSem.Release(1)
}

// LastResult returns the most recently completed search's result, or
// nil if no search has completed yet.
func (e *Engine) LastResult() *Result {
	return e.lastResult
}

// Statistics returns a copy of the diagnostic counters from the most
// recent search.
func (e *Engine) Statistics() Statistics {
	return e.search.stats
}
