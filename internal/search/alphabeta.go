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
	"github.com/nullx002/daydreamer/internal/config"
	tt "github.com/nullx002/daydreamer/internal/transpositiontable"
	. "github.com/nullx002/daydreamer/internal/types"
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func depthToStored(depth float64) uint8 {
	if depth < 0 {
		return 0
	}
	if depth > 255 {
		return 255
	}
	return uint8(depth)
}

// alphaBeta is the negamax search core: a fail-soft alpha-beta walk
// with null-move pruning, razoring, internal iterative deepening, a
// staged move loop under late-move reductions and futility pruning,
// and transposition table probing/storing at every node. depth is a
// float because LMR and the null-move reduction subtract fractional
// amounts from it; once it drops below one ply the node falls through
// to quiescence.
func (s *Search) alphaBeta(pos Position, ply int, depth float64, alpha, beta Value) Value {
	if s.shouldStop() {
		return ValueDraw
	}
	s.nodes++

	if a := MatedIn(ply); alpha < a {
		alpha = a
	}
	if b := MateIn(ply + 1); beta > b {
		beta = b
	}
	if alpha >= beta {
		return alpha
	}

	if pos.IsDraw() {
		return ValueDraw
	}
	if ply >= MaxPly {
		return pos.Eval()
	}
	if depth < 1 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	openWindow := beta-alpha > 1
	s.stack.ClearPV(ply)

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		if e, ok := s.tt.Probe(pos.Hash()); ok {
			s.stats.TTHits++
			ttMove = e.Move
			if assert.DEBUG {
				assert.Assert(e.Value.IsValid(), "alphaBeta: TT read returned invalid score %d", e.Value)
			}
			if !openWindow && float64(e.Depth) >= depth {
				switch {
				case e.Bound == tt.Exact:
					s.stats.TTCuts++
					return e.Value
				case e.Bound == tt.AtLeast && e.Value >= beta:
					s.stats.TTCuts++
					return e.Value
				case e.Bound == tt.AtMost && e.Value <= alpha:
					s.stats.TTCuts++
					return e.Value
				}
			}
		} else {
			s.stats.TTMisses++
		}
	}

	eval := pos.Eval()
	inCheck := pos.InCheck()
	lastWasNull := pos.LastMove() == NullMove

	if !openWindow && depth > 1 && !lastWasNull && !inCheck && !beta.IsCheckMateValue() &&
		eval+nullMoveEvalMargin > beta && pos.HasNonPawnMaterial() && config.Settings.Search.UseNullMove {
		r := 2 + (depth+2)/4 + clampFloat(float64(eval-beta)/100, 0, 1.5)
		u := pos.DoNullMove()
		score := -s.alphaBeta(pos, ply+1, depth-r, -beta, -beta+1)
		pos.UndoNullMove(u)
		if s.shouldStop() {
			return ValueDraw
		}
		if score >= beta {
			s.stats.NullMoveCuts++
			return beta
		}
	} else if !openWindow && !lastWasNull && depth <= 3.5 && ttMove == MoveNone && !inCheck &&
		!beta.IsCheckMateValue() && config.Settings.Search.UseRazoring {
		di := int(depth)
		if di < 1 {
			di = 1
		}
		if di > 3 {
			di = 3
		}
		margin := razorMargin[di]
		if eval+margin < beta {
			if depth <= 1 {
				return s.quiescence(pos, ply, alpha, beta)
			}
			qBeta := beta - margin
			v := s.quiescence(pos, ply, qBeta-1, qBeta)
			if v < qBeta {
				s.stats.RazorCuts++
				return v
			}
		}
	}

	if ttMove == MoveNone && config.Settings.Search.UseIID {
		doIID := false
		var reduced float64
		switch {
		case openWindow && depth >= 5 && beta-eval <= 300:
			doIID = true
			reduced = depth*4/5 - 2
		case !openWindow && depth >= 8 && beta-eval <= 150:
			doIID = true
			reduced = depth*2/3 - 2
		}
		if doIID && reduced > 0 {
			s.stats.IIDSearches++
			s.alphaBeta(pos, ply, reduced, alpha, beta)
			if e, ok := s.tt.Probe(pos.Hash()); ok {
				ttMove = e.Move
			}
		}
	}

	sel := s.selectorAt(ply)
	sel.Reset(pos, ply, ttMove, s.stack.Killers(ply), false)

	var searchedQuiets [searchedQuietCap]Move
	numQuietsRecorded := 0

	bestScore := ValueNA
	bestMove := MoveNone
	origAlpha := alpha
	numMoves := 0
	numQuiets := 0

	for {
		m, bad, ok := sel.Next()
		if !ok {
			break
		}
		if !pos.IsPseudoLegal(m) {
			continue
		}
		numMoves++

		givesCheck := pos.GivesCheck(m)
		ext := 0
		if givesCheck && pos.SEESign(m) >= 0 {
			ext = 1
		}
		isQuiet := m.IsQuiet()

		if config.Settings.Search.UseFutility && !openWindow && ext == 0 && depth <= config.Settings.Search.FutilityMaxDepth &&
			!inCheck && isQuiet && numMoves >= int(depth)+2 {
			d := int(depth)
			margin := eval + futilityBase + Value(futilityPerDepth*d) + Value(futilityPerDepthSq*d*d)
			if margin < beta+Value(2*numMoves) {
				s.stats.FutilityPrunings++
				numMoves--
				if assert.DEBUG {
					assert.Assert(numMoves >= 0, "alphaBeta: move counter went negative after futility pruning")
				}
				continue
			}
		}

		u := pos.DoMove(m)

		r := 0.0
		if config.Settings.Search.UseLmr && depth >= config.Settings.Search.LmrMinDepth {
			if isQuiet && numQuiets >= 1 && numMoves >= config.Settings.Search.LmrMinMoveNo {
				r = 1
			}
			if bad {
				r++
			}
			if numMoves > 8 {
				r += 0.5
			}
			if numQuiets > 8 {
				r += 0.5
			}
		}

		newDepth := depth + float64(ext) - 1
		var score Value
		switch {
		case r > 0:
			score = -s.alphaBeta(pos, ply+1, newDepth-r, -alpha-1, -alpha)
			if score > alpha {
				s.stats.LMRResearches++
				score = -s.alphaBeta(pos, ply+1, newDepth, -alpha-1, -alpha)
				if score > alpha && score < beta {
					score = -s.alphaBeta(pos, ply+1, newDepth, -beta, -alpha)
				}
			} else {
				s.stats.LMRReductions++
			}
		case numMoves == 1:
			score = -s.alphaBeta(pos, ply+1, newDepth, -beta, -alpha)
		default:
			score = -s.alphaBeta(pos, ply+1, newDepth, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.alphaBeta(pos, ply+1, newDepth, -beta, -alpha)
			}
		}

		pos.UndoMove(u)

		if isQuiet && numQuietsRecorded < searchedQuietCap {
			searchedQuiets[numQuietsRecorded] = m
			numQuietsRecorded++
		}

		if s.shouldStop() {
			return ValueDraw
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				if openWindow {
					s.stack.UpdatePV(ply, m)
				}
				if score >= beta {
					if isQuiet {
						s.stack.AddKiller(ply, m)
						s.history.RecordSuccess(MakePiece(pos.SideToMove(), m.MovingPieceType()), m.To(), depth)
						for i := 0; i < numQuietsRecorded-1; i++ {
							qm := searchedQuiets[i]
							s.history.RecordFailure(MakePiece(pos.SideToMove(), qm.MovingPieceType()), qm.To(), depth)
						}
						if config.Settings.Search.UseCounterMoves {
							s.history.RecordCounterMove(pos.LastMove(), m)
						}
					}
					if numMoves == 1 {
						s.stats.BetaCutsFirstMove++
					} else {
						s.stats.BetaCutsLater++
					}
					if assert.DEBUG {
						assert.Assert(beta.IsValid(), "alphaBeta: TT write for beta cutoff has invalid score %d", beta)
					}
					s.tt.Put(pos.Hash(), m, depthToStored(depth), beta, tt.AtLeast, eval)
					return beta
				}
			}
		}
		if isQuiet {
			numQuiets++
		}
	}

	if numMoves == 0 {
		if inCheck {
			s.stats.Checkmates++
			return MatedIn(ply)
		}
		s.stats.Stalemates++
		return ValueDraw
	}

	bound := tt.Exact
	if bestScore <= origAlpha {
		bound = tt.AtMost
	}
	if assert.DEBUG {
		assert.Assert(bestScore.IsValid(), "alphaBeta: TT write at fall-through has invalid score %d", bestScore)
	}
	s.tt.Put(pos.Hash(), bestMove, depthToStored(depth), bestScore, bound, eval)
	if assert.DEBUG {
		assert.Assert(bestScore.IsValid(), "alphaBeta: returning invalid score %d", bestScore)
	}
	return bestScore
}
