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

// searchStack carries the per-ply state that alphaBeta/quiescence
// thread through recursion without allocating: two killer moves per
// ply and a triangular PV table. Both are owned by one search
// goroutine and reset at the start of every Search.run.
type searchStack struct {
	killers [MaxPly + 1][2]Move
	pvTable [MaxPly + 1][MaxPly + 1]Move
	pvLen   [MaxPly + 1]int
}

func newSearchStack() *searchStack {
	return &searchStack{}
}

func (s *searchStack) clear() {
	for i := range s.killers {
		s.killers[i] = [2]Move{MoveNone, MoveNone}
	}
	for i := range s.pvLen {
		s.pvLen[i] = 0
	}
}

// Killers returns the two killer moves recorded for ply.
func (s *searchStack) Killers(ply int) [2]Move {
	return s.killers[ply]
}

// AddKiller records m as a killer at ply, rotating the existing pair
// so the two slots are always distinct and the newest is first.
func (s *searchStack) AddKiller(ply int, m Move) {
	if m == MoveNone || m.IsCapture() {
		return
	}
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
	if assert.DEBUG {
		assert.Assert(s.killers[ply][0] != s.killers[ply][1] || s.killers[ply][0] == MoveNone,
			"searchStack: killers collided at ply %d", ply)
	}
}

// UpdatePV copies ply+1's line behind m into ply's line. Called only
// on an alpha-improving move inside an open search window.
func (s *searchStack) UpdatePV(ply int, m Move) {
	if assert.DEBUG {
		assert.Assert(m != MoveNone, "searchStack: UpdatePV at ply %d given NO_MOVE as the PV head", ply)
	}
	s.pvTable[ply][0] = m
	copy(s.pvTable[ply][1:], s.pvTable[ply+1][:s.pvLen[ply+1]])
	s.pvLen[ply] = s.pvLen[ply+1] + 1
}

// ClearPV truncates ply's PV line to empty, used when a node fails to
// improve alpha.
func (s *searchStack) ClearPV(ply int) {
	s.pvLen[ply] = 0
}

// PVLine returns the principal variation rooted at ply.
func (s *searchStack) PVLine(ply int) []Move {
	return s.pvTable[ply][:s.pvLen[ply]]
}
