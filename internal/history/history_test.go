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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nullx002/daydreamer/internal/types"
)

func TestRecordSuccessAddsSquaredDepth(t *testing.T) {
	h := NewHistory()
	piece := MakePiece(White, Knight)
	h.RecordSuccess(piece, Square(10), 4)
	assert.Equal(t, 16, h.Value(piece, Square(10)))
}

func TestRecordFailureSubtractsSquaredDepth(t *testing.T) {
	h := NewHistory()
	piece := MakePiece(Black, Rook)
	h.RecordSuccess(piece, Square(20), 5)
	h.RecordFailure(piece, Square(20), 3)
	assert.Equal(t, 25-9, h.Value(piece, Square(20)))
}

// TestSaturationHalvesEveryCell exercises invariant 3: repeatedly
// recording successes at high depth must never push a cell outside
// [-MaxHistory, MaxHistory]; once it would, every cell in the table is
// halved instead of clamping just the one that overflowed.
func TestSaturationHalvesEveryCell(t *testing.T) {
	h := NewHistory()
	p1 := MakePiece(White, Queen)
	p2 := MakePiece(Black, Bishop)

	h.RecordSuccess(p2, Square(5), 9) // 81, a bystander cell to watch for halving
	for i := 0; i < 150; i++ {
		h.RecordSuccess(p1, Square(63), 10) // +100 each call
		assert.LessOrEqual(t, h.Value(p1, Square(63)), MaxHistory)
		assert.GreaterOrEqual(t, h.Value(p1, Square(63)), -MaxHistory)
	}
	// the bystander must have been halved at least once by the
	// saturating cell's overflow, since halve() scans the whole table.
	assert.Less(t, h.Value(p2, Square(5)), 81)
}

func TestClearResetsCountersAndCounterMoves(t *testing.T) {
	h := NewHistory()
	piece := MakePiece(White, Pawn)
	h.RecordSuccess(piece, Square(1), 3)
	lastMove := CreateMove(Square(8), Square(16), piece, PieceNone, Normal, PtNone)
	reply := CreateMove(Square(9), Square(17), piece, PieceNone, Normal, PtNone)
	h.RecordCounterMove(lastMove, reply)

	h.Clear()

	assert.Equal(t, 0, h.Value(piece, Square(1)))
	assert.Equal(t, MoveNone, h.CounterMove(lastMove))
}

func TestCounterMoveRoundTrip(t *testing.T) {
	h := NewHistory()
	piece := MakePiece(Black, Knight)
	lastMove := CreateMove(Square(12), Square(27), piece, PieceNone, Normal, PtNone)
	reply := CreateMove(Square(6), Square(21), piece, PieceNone, Normal, PtNone)

	assert.Equal(t, MoveNone, h.CounterMove(lastMove))
	h.RecordCounterMove(lastMove, reply)
	assert.Equal(t, reply, h.CounterMove(lastMove))
}

func TestCounterMoveIgnoresNullAndNoMove(t *testing.T) {
	h := NewHistory()
	reply := CreateMove(Square(6), Square(21), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
	h.RecordCounterMove(MoveNone, reply)
	h.RecordCounterMove(NullMove, reply)
	assert.Equal(t, MoveNone, h.CounterMove(MoveNone))
	assert.Equal(t, MoveNone, h.CounterMove(NullMove))
}
