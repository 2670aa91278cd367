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

	"github.com/nullx002/daydreamer/internal/moveslice"
	"github.com/nullx002/daydreamer/internal/types"
)

// Constraints describes one "go" command: what to search and for how
// long. Exactly one of the time-control shapes (MoveTime, the
// White/BlackTime+Inc pair, or Infinite/Depth/Nodes/Mate) is normally
// set; ComputeTimeLimits interprets whichever is present.
type Constraints struct {
	Infinite bool
	Ponder   bool

	// SearchMoves restricts the root to this subset when non-empty.
	SearchMoves moveslice.MoveSlice

	DepthLimit int // 0 means unlimited
	NodeLimit  uint64
	Mate       int // mate-in-N search, 0 means not a mate search

	MoveTime time.Duration // fixed time for this move, 0 if unset

	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	MovesToGo            int

	// UseTimer is false for Infinite/Depth/Nodes searches: no clock
	// governs them and the watchdog is never armed.
	UseTimer bool

	SoftLimit, HardLimit time.Duration
	StartTime            time.Time
}

// NewConstraints returns a Constraints with no bound set; the caller
// fills in whichever fields the "go" command specified.
func NewConstraints() *Constraints {
	return &Constraints{}
}

// timeLeft/incLeft return the clock belonging to stm, collapsing the
// White/Black pair the UCI protocol sends into the side actually on
// move.
func (c *Constraints) timeLeft(stm types.Color) time.Duration {
	if stm == types.White {
		return c.WhiteTime
	}
	return c.BlackTime
}

func (c *Constraints) incLeft(stm types.Color) time.Duration {
	if stm == types.White {
		return c.WhiteInc
	}
	return c.BlackInc
}
