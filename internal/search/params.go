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

import "github.com/nullx002/daydreamer/internal/types"

// Fixed margins and tables the move loop and pruning steps are built
// from. Unlike config.Settings.Search these are not user tunable; they
// are constants of the algorithm itself.
const (
	// nullMoveEvalMargin is added to the static eval before comparing
	// against beta to decide whether null-move pruning is worth trying.
	nullMoveEvalMargin = 200

	// futilityBase, futilityPerDepth and futilityPerDepthSq parameterize
	// the futility margin eval+captured+base+perDepth*d+perDepthSq*d^2.
	futilityBase       = 85
	futilityPerDepth   = 15
	futilityPerDepthSq = 2

	// lateQuietThreshold is the number of quiets a MoveSelector emits
	// from the ordered stage before demoting the remainder to "bad".
	lateQuietThreshold = 8

	// searchedQuietCap bounds how many quiet moves a node records for
	// history penalization on a beta cutoff.
	searchedQuietCap = 127
)

// razorMargin[d] is the razoring margin at integer depth d (1..3).
// Index 0 is unused; razoring never fires above depth 3.5.
var razorMargin = [4]types.Value{0, 300, 300, 325}

// aspirationFailLow and aspirationFailHigh are the widening offsets
// applied to alpha/beta after a fail-low/fail-high at the root,
// indexed by the number of prior widenings at this depth (clamped to
// the last entry).
var (
	aspirationFailLow  = [4]types.Value{35, 75, 300, types.ValueInf}
	aspirationFailHigh = [4]types.Value{35, 75, 300, types.ValueInf}
)

func aspirationOffset(table [4]types.Value, researchCount int) types.Value {
	if researchCount >= len(table) {
		researchCount = len(table) - 1
	}
	return table[researchCount]
}
