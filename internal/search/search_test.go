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
	"testing"
	"time"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullx002/daydreamer/internal/board"
	"github.com/nullx002/daydreamer/internal/history"
	"github.com/nullx002/daydreamer/internal/moveslice"
	tt "github.com/nullx002/daydreamer/internal/transpositiontable"
	. "github.com/nullx002/daydreamer/internal/types"
)

func newTestSearch() *Search {
	return NewSearch(tt.NewTtTable(4), history.NewHistory(), &EngineState{})
}

func depthConstraints(depth int) *Constraints {
	c := NewConstraints()
	c.DepthLimit = depth
	return c
}

func TestStartPositionDepth1ScoreNearStaticEval(t *testing.T) {
	s := newTestSearch()
	b := board.StartPosition()
	result := s.run(b, depthConstraints(1))
	require.NotEqual(t, MoveNone, result.BestMove)
	assert.InDelta(t, 0, int(result.Value), 100)
}

// TestQueenKingMateInOneReportsMate exercises testable property 5: a
// forced mate must surface as a mate score whose distance matches the
// number of plies to the mating move. Qh7# mates at once: h7 is
// defended by the white king on g6, and the queen covers g8 and g7
// (Qg7# and a back-rank Qa8#/Qb8# mate as well).
func TestQueenKingMateInOneReportsMate(t *testing.T) {
	s := newTestSearch()
	b, err := board.NewBoard("7k/Q7/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	result := s.run(b, depthConstraints(3))
	require.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.Value.IsCheckMateValue())
	assert.True(t, result.Value > 0)
	assert.Equal(t, MateIn(1), result.Value)
}

// TestRookKingMateInOneReportsMate is a second, independently verified
// mate-in-one (Ra1#) using a rook instead of a queen, to exercise a
// different mating geometry under the same driver.
func TestRookKingMateInOneReportsMate(t *testing.T) {
	s := newTestSearch()
	b, err := board.NewBoard("k7/2K5/8/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)
	result := s.run(b, depthConstraints(3))
	require.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.Value.IsCheckMateValue())
	assert.True(t, result.Value > 0)
	assert.Equal(t, MateIn(1), result.Value)
}

// TestCheckmatedPositionReturnsNoMove covers the boundary behavior: a
// position with no legal moves for the side to move (checkmate) must
// come back with bestmove "(none)". Black's own pawns on f7/g7/h7 wall
// off every flight square and Re8 covers the rest of the back rank.
func TestCheckmatedPositionReturnsNoMove(t *testing.T) {
	s := newTestSearch()
	b, err := board.NewBoard("4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)
	require.Empty(t, b.PseudoLegalMoves(false))
	result := s.run(b, depthConstraints(3))
	assert.Equal(t, MoveNone, result.BestMove)
}

// TestStalematedPositionReturnsNoMove covers the stalemate boundary:
// no legal moves but not in check. The white king on f7 and queen on
// g6 cover g7, g8 and h7 without ever attacking h8 itself.
func TestStalematedPositionReturnsNoMove(t *testing.T) {
	s := newTestSearch()
	b, err := board.NewBoard("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.False(t, b.InCheck())
	require.Empty(t, b.PseudoLegalMoves(false))
	result := s.run(b, depthConstraints(3))
	assert.Equal(t, MoveNone, result.BestMove)
}

// TestLoneKingsDrawScoresZero matches end-to-end scenario 4: two bare
// kings can only ever produce a draw score.
func TestLoneKingsDrawScoresZero(t *testing.T) {
	s := newTestSearch()
	b, err := board.NewBoard("8/8/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	result := s.run(b, depthConstraints(4))
	assert.Equal(t, ValueDraw, result.Value)
}

// TestNodeLimitBoundsTotalNodes matches end-to-end scenario 6: a node
// budget is honored up to the current child search's overshoot, never
// ballooning far past the requested limit.
func TestNodeLimitBoundsTotalNodes(t *testing.T) {
	s := newTestSearch()
	b := board.StartPosition()
	c := NewConstraints()
	c.NodeLimit = 1000
	result := s.run(b, c)
	assert.GreaterOrEqual(t, result.Nodes, uint64(1000))
	assert.Less(t, result.Nodes, uint64(50_000))
}

// TestDeeperSearchVisitsMoreNodes is a loose regression check on
// iterative deepening: a depth-1 and a depth-3 search both return a
// move, and the deeper search visits more nodes.
func TestDeeperSearchVisitsMoreNodes(t *testing.T) {
	s1 := newTestSearch()
	b1 := board.StartPosition()
	shallow := s1.run(b1, depthConstraints(1))

	s2 := newTestSearch()
	b2 := board.StartPosition()
	deep := s2.run(b2, depthConstraints(3))

	assert.NotEqual(t, MoveNone, shallow.BestMove)
	assert.NotEqual(t, MoveNone, deep.BestMove)
	assert.Greater(t, deep.Nodes, shallow.Nodes)
}

// TestSearchMovesRestrictsRoot checks that a "searchmoves" subset is
// honored: the reported bestmove must be one of the restricted moves.
func TestSearchMovesRestrictsRoot(t *testing.T) {
	s := newTestSearch()
	b := board.StartPosition()
	only := CreateMove(Square(12), Square(28), MakePiece(White, Pawn), PieceNone, Normal, PtNone) // e2e4
	c := depthConstraints(2)
	c.SearchMoves = moveslice.MoveSlice{only}
	result := s.run(b, c)
	assert.Equal(t, only, result.BestMove)
}

// TestEngineGoAndStopReturnsPromptly exercises the cooperative stop
// contract end to end: stopping an infinite search on the Engine
// facade must still produce a legal bestmove quickly.
func TestEngineGoAndStopReturnsPromptly(t *testing.T) {
	e := NewEngine()
	b := board.StartPosition()
	c := NewConstraints()
	c.Infinite = true
	e.Go(b, c)
	e.Stop()
	result := e.LastResult()
	require.NotNil(t, result)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestPonderHitPromotesPonderingToSearching(t *testing.T) {
	e := NewEngine()
	b := board.StartPosition()
	c := NewConstraints()
	c.Ponder = true
	c.Infinite = true
	e.Go(b, c)
	e.PonderHit()
	e.Stop()
	assert.NotNil(t, e.LastResult())
}

// TestTiming profiles a fixed-depth search from the start position and
// reports its throughput. Skipped under -short since it is a profiling
// aid, not a correctness check; run with -run TestTiming -v.
func TestTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("profiling run, skipped with -short")
	}
	defer profile.Start(profile.ProfilePath(t.TempDir())).Stop()

	s := newTestSearch()
	b := board.StartPosition()
	result := s.run(b, depthConstraints(6))

	elapsed := result.Time
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	nps := float64(result.Nodes) / elapsed.Seconds()
	t.Logf("nodes=%d time=%s nps=%.0f tt=%s", result.Nodes, elapsed, nps, s.tt.String())
}
