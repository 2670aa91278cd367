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

// Result is what a completed (or aborted) search hands back to the
// Engine facade.
type Result struct {
	BestMove   Move
	PonderMove Move
	Value      Value
	Depth      int
	Nodes      uint64
	Time       time.Duration
}

// iterativeDeepening is the search goroutine's driver: it deepens one
// ply at a time, widening an aspiration window around the previous
// iteration's score once the search is far enough along for the
// window to pay for itself, and stops either on a hard request or
// once the soft time budget judges another iteration isn't worth
// starting.
func (s *Search) iterativeDeepening(pos Position) *Result {
	s.rootMoves.Sort()

	var last *RootMove
	depth := 1
	completed := 0
	maxDepth := s.constraints.DepthLimit
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	for depth <= maxDepth {
		if s.shouldStop() {
			break
		}
		s.sendDepth(depth, depth)

		alpha, beta := -ValueInf, ValueInf
		useAspiration := config.Settings.Search.UseAspiration && depth > 5 && len(s.rootMoves) > 0 && config.Settings.Search.MultiPV == 1
		if useAspiration && last != nil && !last.Score.IsCheckMateValue() {
			alpha = last.Score - aspirationOffset(aspirationFailLow, 0)
			beta = last.Score + aspirationOffset(aspirationFailHigh, 0)
		}

		researches := 0
		for {
			score, result := s.rootSearch(pos, depth, alpha, beta)
			if s.shouldStop() {
				break
			}
			switch result {
			case rrFailLow:
				researches++
				s.sendInfoString("aspiration research fail low at depth %d", depth)
				alpha = score - aspirationOffset(aspirationFailLow, researches)
				if alpha <= -ValueInf {
					alpha = -ValueInf
				}
				continue
			case rrFailHigh:
				researches++
				s.sendInfoString("aspiration research fail high at depth %d", depth)
				beta = score + aspirationOffset(aspirationFailHigh, researches)
				if beta >= ValueInf {
					beta = ValueInf
				}
				continue
			}
			break
		}

		if s.shouldStop() && depth > 1 {
			break
		}
		completed = depth

		s.rootMoves.Sort()
		if len(s.rootMoves) > 0 {
			last = s.rootMoves[0]
			elapsed := time.Since(s.startTime)
			s.sendMultiPVInfo(1, depth, last.Score, "", elapsed, last.Pv)
		}

		if !s.constraints.UseTimer {
			depth++
			continue
		}
		if time.Since(s.startTime) >= s.constraints.SoftLimit {
			break
		}
		depth++
	}

	result := &Result{Depth: completed, Nodes: s.nodes, Time: time.Since(s.startTime)}
	if last != nil {
		result.BestMove = last.Move
		result.Value = last.Score
		if len(last.Pv) > 1 {
			result.PonderMove = last.Pv[1]
		}
	} else if len(s.rootMoves) > 0 {
		result.BestMove = s.rootMoves[0].Move
	}
	return result
}
