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
	"sort"

	. "github.com/nullx002/daydreamer/internal/types"
)

// RootMove is one legal move at the root, carrying the score and
// principal variation the most recent completed iteration found for
// it. Moves earlier in a RootMoves slice are searched, and reported
// to the UCI "pv", before later ones.
type RootMove struct {
	Move  Move
	Score Value
	Pv    []Move
}

// RootMoves is the ordered move list the iterative deepening driver
// and root search share; it is re-sorted after every completed
// iteration so the best move from the previous iteration is always
// searched first in the next.
type RootMoves []*RootMove

func newRootMoves(moves []Move) RootMoves {
	rm := make(RootMoves, len(moves))
	for i, m := range moves {
		rm[i] = &RootMove{Move: m, Score: ValueNA}
	}
	return rm
}

// Sort orders moves by descending score, stably, so moves with an
// equal (or as-yet-unsearched) score keep their relative order from
// the previous iteration.
func (rm RootMoves) Sort() {
	sort.SliceStable(rm, func(i, j int) bool {
		return rm[i].Score > rm[j].Score
	})
}

// Find returns the RootMove for m, or nil if m is not a root move.
func (rm RootMoves) Find(m Move) *RootMove {
	for _, r := range rm {
		if r.Move == m {
			return r
		}
	}
	return nil
}

// MoveSlice returns the plain move order, e.g. for reporting
// searchmoves or multipv candidate lists.
func (rm RootMoves) MoveSlice() []Move {
	out := make([]Move, len(rm))
	for i, r := range rm {
		out[i] = r.Move
	}
	return out
}
