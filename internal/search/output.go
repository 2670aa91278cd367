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
	"fmt"
	"strings"
	"time"

	"github.com/nullx002/daydreamer/internal/moveslice"
	"github.com/nullx002/daydreamer/internal/util"

	. "github.com/nullx002/daydreamer/internal/types"
)

// These are the only functions in the package that write to stdout.
// UCI protocol lines are not diagnostics, so they never go through
// the op/go-logging loggers: they are plain fmt.Println/Printf.

func (s *Search) sendDepth(depth, seldepth int) {
	fmt.Printf("info depth %d seldepth %d\n", depth, seldepth)
}

func (s *Search) sendCurrMove(m Move, moveNumber int) {
	if time.Since(s.startTime) < time.Second {
		return
	}
	fmt.Printf("info currmove %s currmovenumber %d\n", m.String(), moveNumber)
}

func pvString(pv []Move) string {
	ms := moveslice.MoveSlice(pv)
	return ms.StringUci()
}

// sendMultiPVInfo prints one "info multipv ..." line. bound is "" for
// an exact score, "upperbound" for a fail-low result and
// "lowerbound" for a fail-high result.
func (s *Search) sendMultiPVInfo(index, depth int, score Value, bound string, elapsed time.Duration, pv []Move) {
	var b strings.Builder
	fmt.Fprintf(&b, "info multipv %d depth %d score %s", index, depth, score.String())
	if bound != "" {
		fmt.Fprintf(&b, " %s", bound)
	}
	fmt.Fprintf(&b, " time %d nodes %d", elapsed.Milliseconds(), s.nodes)
	if elapsed >= 20*time.Millisecond {
		fmt.Fprintf(&b, " nps %d", util.Nps(s.nodes, elapsed))
	}
	if len(pv) > 0 {
		fmt.Fprintf(&b, " pv %s", pvString(pv))
	}
	fmt.Println(b.String())
}

func (s *Search) sendInfoString(format string, a ...interface{}) {
	fmt.Printf("info string %s\n", fmt.Sprintf(format, a...))
}

func (s *Search) sendTimeLimits(soft, hard time.Duration) {
	s.sendInfoString("time %d soft limit %d hard limit %d", time.Since(s.startTime).Milliseconds(),
		soft.Milliseconds(), hard.Milliseconds())
}

func sendBestMove(best, ponder Move) {
	if ponder != MoveNone {
		fmt.Printf("bestmove %s ponder %s\n", best.String(), ponder.String())
		return
	}
	fmt.Printf("bestmove %s\n", best.String())
}
