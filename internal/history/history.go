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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/nullx002/daydreamer/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxHistory is the saturation bound. When a cell's magnitude would
// exceed it, the whole table is halved (right-shift by one) instead
// of clamping just the one cell, so relative ordering between cells
// survives a saturation event.
const MaxHistory = 10_000

// pieceKinds is the number of distinct Piece.Index() values.
const pieceKinds = 12

// History is a data structure updated during search to provide the move
// selector with valuable information for move sorting. HistoryCount is
// indexed densely by piece_index*64+to_square, the table the selector
// and the pruning heuristics consume directly. CounterMoves is a
// supplementary, unbounded move-ordering hint keyed by the move that
// provoked the reply; it is not subject to the clamp/halve discipline
// below because it stores moves, not counters.
type History struct {
	HistoryCount [pieceKinds * SqLength]int
	CounterMoves [SqLength][SqLength]Move
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

func cellIndex(piece Piece, to Square) int {
	return piece.Index()*SqLength + int(to)
}

// Value returns the current history count for a piece moving to a
// square.
func (h *History) Value(piece Piece, to Square) int {
	return h.HistoryCount[cellIndex(piece, to)]
}

// RecordSuccess adds floor(d*d) to the cell of a quiet move that
// caused a beta cutoff at depth d.
func (h *History) RecordSuccess(piece Piece, to Square, depth float64) {
	h.add(piece, to, bonus(depth))
}

// RecordFailure subtracts floor(d*d) from the cell of a quiet move
// that was searched at depth d but did not cause a cutoff.
func (h *History) RecordFailure(piece Piece, to Square, depth float64) {
	h.add(piece, to, -bonus(depth))
}

// RecordCounterMove remembers m as the reply that refuted lastMove.
func (h *History) RecordCounterMove(lastMove, m Move) {
	if lastMove == MoveNone || lastMove == NullMove {
		return
	}
	h.CounterMoves[lastMove.From()][lastMove.To()] = m
}

// CounterMove returns the recorded reply to lastMove, or MoveNone.
func (h *History) CounterMove(lastMove Move) Move {
	if lastMove == MoveNone || lastMove == NullMove {
		return MoveNone
	}
	return h.CounterMoves[lastMove.From()][lastMove.To()]
}

// bonus truncates the fractional search depth to an integer before
// squaring, per the source's (d*d) cast.
func bonus(depth float64) int {
	if depth <= 0 {
		return 0
	}
	d := int(depth)
	return d * d
}

func (h *History) add(piece Piece, to Square, delta int) {
	i := cellIndex(piece, to)
	v := h.HistoryCount[i] + delta
	if v > MaxHistory || v < -MaxHistory {
		h.halve()
		v = h.HistoryCount[i] + delta
	}
	h.HistoryCount[i] = v
}

func (h *History) halve() {
	for i := range h.HistoryCount {
		h.HistoryCount[i] >>= 1
	}
}

// Clear resets every counter and the counter-move table to zero.
func (h *History) Clear() {
	for i := range h.HistoryCount {
		h.HistoryCount[i] = 0
	}
	for f := range h.CounterMoves {
		for t := range h.CounterMoves[f] {
			h.CounterMoves[f][t] = MoveNone
		}
	}
}

func (h *History) String() string {
	nonZero := 0
	for _, v := range h.HistoryCount {
		if v != 0 {
			nonZero++
		}
	}
	return out.Sprintf("History: %d/%d non-zero cells", nonZero, len(h.HistoryCount))
}
