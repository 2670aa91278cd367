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
	"github.com/nullx002/daydreamer/assert"
	. "github.com/nullx002/daydreamer/internal/types"
)

// quiescence resolves the tactical noise at the end of a line before
// a score is trusted: it keeps searching captures, promotions and
// check evasions until the position is "quiet". It shares alphaBeta's
// window semantics (negamax, fail soft on alpha only, beta return)
// but never decrements an integer depth; ply alone bounds recursion.
func (s *Search) quiescence(pos Position, ply int, alpha, beta Value) Value {
	if s.shouldStop() {
		return ValueDraw
	}
	s.nodes++
	openWindow := beta-alpha > 1

	if ply >= MaxPly {
		return pos.Eval()
	}
	s.stack.ClearPV(ply)

	inCheck := pos.InCheck()
	var standPat Value
	if !inCheck {
		standPat = pos.Eval()
		s.stats.LeafPositionsEvaluated++
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	sel := s.selectorAt(ply)
	sel.Reset(pos, ply, MoveNone, [2]Move{MoveNone, MoveNone}, true)

	bestScore := ValueNA
	legalMoves := 0
	for {
		m, _, ok := sel.Next()
		if !ok {
			break
		}
		legalMoves++

		u := pos.DoMove(m)
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UndoMove(u)

		if s.shouldStop() {
			return ValueDraw
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				if openWindow {
					s.stack.UpdatePV(ply, m)
				}
				if score >= beta {
					return beta
				}
			}
		}
	}

	if legalMoves == 0 && inCheck {
		s.stats.Checkmates++
		return MatedIn(ply)
	}
	if bestScore == ValueNA {
		if assert.DEBUG {
			assert.Assert(standPat.IsValid(), "quiescence: stand-pat score %d out of range", standPat)
		}
		return standPat
	}
	if assert.DEBUG {
		assert.Assert(alpha.IsValid(), "quiescence: returning invalid score %d", alpha)
	}
	return alpha
}
