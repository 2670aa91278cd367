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

	"github.com/nullx002/daydreamer/internal/config"
	"github.com/nullx002/daydreamer/internal/history"
	. "github.com/nullx002/daydreamer/internal/types"
)

// mvvLvaValue is used only to order captures of equal SEE sign
// against each other; it is not an evaluation and never reaches the
// leaf score.
var mvvLvaValue = [PtLength]int{PtNone: 0, Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900, King: 10_000}

type selectorEntry struct {
	move Move
	bad  bool
}

// MoveSelector stages a node's pseudo-legal moves the way the move
// loop wants them: TT move, winning captures/promotions by MVV-LVA
// (gated by SEESign), killers, the recorded counter to the opponent's
// last move, then remaining quiets ordered by history, with losing
// captures and late quiets demoted to the "bad" stage. It
// builds its whole order once in Reset and drains it with Next; the
// underlying slice is reused across nodes to avoid per-node
// allocation on the hot path.
type MoveSelector struct {
	history *history.History
	entries []selectorEntry
	next    int
}

// NewMoveSelector returns a selector seasoned by h for move ordering.
func NewMoveSelector(h *history.History) *MoveSelector {
	return &MoveSelector{history: h, entries: make([]selectorEntry, 0, 64)}
}

// Reset prepares the selector to iterate moves for pos at ply.
func (s *MoveSelector) Reset(pos Position, ply int, ttMove Move, killers [2]Move, quiescence bool) {
	s.entries = s.entries[:0]
	s.next = 0

	moves := pos.PseudoLegalMoves(quiescence)

	var goodCaptures, badCaptures, quiets []Move
	haveTT := ttMove != MoveNone
	for _, m := range moves {
		if haveTT && m == ttMove {
			continue
		}
		if m.IsCapture() || m.IsPromote() {
			if pos.SEESign(m) >= 0 {
				goodCaptures = append(goodCaptures, m)
			} else {
				badCaptures = append(badCaptures, m)
			}
			continue
		}
		quiets = append(quiets, m)
	}

	sort.SliceStable(goodCaptures, func(i, j int) bool {
		return captureOrderKey(goodCaptures[i]) > captureOrderKey(goodCaptures[j])
	})
	sort.SliceStable(badCaptures, func(i, j int) bool {
		return captureOrderKey(badCaptures[i]) > captureOrderKey(badCaptures[j])
	})

	var counterMove Move
	if s.history != nil && config.Settings.Search.UseCounterMoves && !quiescence {
		counterMove = s.history.CounterMove(pos.LastMove())
	}

	counterMoveIsKiller := false
	var killerMoves []Move
	remainingQuiets := quiets[:0:0]
	for _, m := range quiets {
		matched := false
		for _, k := range killers {
			if k != MoveNone && k == m {
				killerMoves = append(killerMoves, m)
				matched = true
				if m == counterMove {
					counterMoveIsKiller = true
				}
				break
			}
		}
		if !matched && m == counterMove {
			matched = true
		}
		if !matched {
			remainingQuiets = append(remainingQuiets, m)
		}
	}

	sort.SliceStable(remainingQuiets, func(i, j int) bool {
		return s.historyValue(pos, remainingQuiets[i]) > s.historyValue(pos, remainingQuiets[j])
	})

	if haveTT && pos.IsPseudoLegal(ttMove) {
		s.entries = append(s.entries, selectorEntry{move: ttMove})
	}
	for _, m := range goodCaptures {
		s.entries = append(s.entries, selectorEntry{move: m})
	}
	for _, m := range killerMoves {
		s.entries = append(s.entries, selectorEntry{move: m})
	}
	if counterMove != MoveNone && !counterMoveIsKiller && pos.IsPseudoLegal(counterMove) && !counterMove.IsCapture() {
		s.entries = append(s.entries, selectorEntry{move: counterMove})
	}
	for i, m := range remainingQuiets {
		s.entries = append(s.entries, selectorEntry{move: m, bad: i >= lateQuietThreshold})
	}
	for _, m := range badCaptures {
		s.entries = append(s.entries, selectorEntry{move: m, bad: true})
	}
}

func (s *MoveSelector) historyValue(pos Position, m Move) int {
	if s.history == nil {
		return 0
	}
	piece := MakePiece(pos.SideToMove(), m.MovingPieceType())
	return s.history.Value(piece, m.To())
}

func captureOrderKey(m Move) int {
	return mvvLvaValue[m.CapturedPieceType()]*8 - mvvLvaValue[m.MovingPieceType()]
}

// Next returns the next move in stage order, or ok=false once
// exhausted. bad reports whether the move came from the bad-capture
// or late-quiet stage.
func (s *MoveSelector) Next() (m Move, bad bool, ok bool) {
	if s.next >= len(s.entries) {
		return MoveNone, false, false
	}
	e := s.entries[s.next]
	s.next++
	return e.move, e.bad, true
}
