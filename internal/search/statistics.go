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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statOut = message.NewPrinter(language.German)

// Statistics is a plain counter struct filled in during one search and
// reset at the start of the next; nothing in it feeds back into the
// search itself, it exists for "info string" diagnostics and tests.
type Statistics struct {
	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	NullMoveCuts uint64
	RazorCuts    uint64

	IIDSearches uint64

	FutilityPrunings uint64
	LMPPrunings      uint64

	LMRReductions uint64
	LMRResearches uint64

	BetaCutsFirstMove uint64
	BetaCutsLater     uint64

	LeafPositionsEvaluated uint64
	Checkmates             uint64
	Stalemates             uint64
}

// Clear resets every counter to zero.
func (s *Statistics) Clear() {
	*s = Statistics{}
}

func (s *Statistics) String() string {
	return statOut.Sprintf(
		"tt hits=%d misses=%d cuts=%d | nullmove cuts=%d | razor cuts=%d | iid=%d | "+
			"futility=%d lmp=%d | lmr reductions=%d researches=%d | "+
			"beta 1st=%d later=%d | leaves=%d mates=%d stalemates=%d",
		s.TTHits, s.TTMisses, s.TTCuts, s.NullMoveCuts, s.RazorCuts, s.IIDSearches,
		s.FutilityPrunings, s.LMPPrunings, s.LMRReductions, s.LMRResearches,
		s.BetaCutsFirstMove, s.BetaCutsLater,
		s.LeafPositionsEvaluated, s.Checkmates, s.Stalemates)
}
