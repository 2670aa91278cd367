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
	"time"

	"github.com/nullx002/daydreamer/internal/config"
	. "github.com/nullx002/daydreamer/internal/types"
)

// rootResult classifies how a completed rootSearch relates to the
// aspiration window it was given.
type rootResult int

const (
	rrExact rootResult = iota
	rrFailLow
	rrFailHigh
)

// rootSearch walks s.rootMoves once at depth, updating each move's
// Score and Pv as it completes and re-raising alpha as better moves
// are found. The first MultiPV moves are always searched with a full
// window; the rest are scouted with a null window and only
// re-searched on an improvement. It aborts (returning whatever alpha
// has reached) the moment the engine is asked to stop.
func (s *Search) rootSearch(pos Position, depth int, alpha, beta Value) (Value, rootResult) {
	origAlpha := alpha
	bestAlpha := alpha
	multiPV := config.Settings.Search.MultiPV
	if multiPV < 1 {
		multiPV = 1
	}

	for i, rm := range s.rootMoves {
		if s.shouldStop() {
			break
		}

		now := time.Now()
		if now.Sub(s.lastInfoTime) >= time.Second {
			s.lastInfoTime = now
			s.sendCurrMove(rm.Move, i+1)
		}

		givesCheck := pos.GivesCheck(rm.Move)
		ext := 0
		if givesCheck && pos.SEESign(rm.Move) >= 0 {
			ext = 1
		}
		newDepth := float64(depth + ext - 1)

		u := pos.DoMove(rm.Move)
		var score Value
		if i < multiPV {
			score = -s.alphaBeta(pos, 1, newDepth, -beta, -origAlpha)
		} else {
			score = -s.alphaBeta(pos, 1, newDepth, -bestAlpha-1, -bestAlpha)
			if score > bestAlpha && score < beta {
				score = -s.alphaBeta(pos, 1, newDepth, -beta, -bestAlpha)
			}
		}
		pos.UndoMove(u)

		if s.shouldStop() {
			break
		}

		if i < multiPV || score > bestAlpha {
			rm.Score = score
			rm.Pv = append(rm.Pv[:0], rm.Move)
			rm.Pv = append(rm.Pv, s.stack.PVLine(1)...)
		}

		if score > bestAlpha {
			bestAlpha = score
			if score >= beta {
				return beta, rrFailHigh
			}
		}
	}

	if bestAlpha <= origAlpha {
		return bestAlpha, rrFailLow
	}
	return bestAlpha, rrExact
}
