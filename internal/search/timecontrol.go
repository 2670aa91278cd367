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
	"github.com/nullx002/daydreamer/internal/types"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeTimeLimits turns a "go" command's clock fields into a soft
// and hard limit for the side to move, following whichever shape the
// command used: a fixed per-move time, X moves in Y time, or X time
// plus Y increment (Fischer). buffer milliseconds are reserved
// against communication/GC latency and never allocated to the search.
// Durations below one millisecond are reported as one millisecond so
// a caller never treats an allocation as "no time at all".
func ComputeTimeLimits(c *Constraints, stm types.Color) (soft, hard time.Duration) {
	buffer := time.Duration(config.Settings.Search.TimeBuffer) * time.Millisecond

	// A fixed per-move time is self-contained: there is no clock to
	// clamp against, mirroring the teacher's own early return for this
	// shape.
	if c.MoveTime > 0 {
		return fixedMoveTime(c.MoveTime, buffer)
	}

	if c.MovesToGo > 0 {
		soft, hard = tournamentTime(c.timeLeft(stm), c.MovesToGo)
	} else {
		soft, hard = fischerTime(c.timeLeft(stm), c.incLeft(stm))
	}

	budget := c.timeLeft(stm) - buffer
	if budget < 0 {
		budget = 0
	}
	if soft > budget {
		soft = budget
	}
	soft = soft * 6 / 10
	if hard > budget {
		hard = budget
	}

	if soft < time.Millisecond {
		soft = time.Millisecond
	}
	if hard < time.Millisecond {
		hard = time.Millisecond
	}
	return soft, hard
}

// fixedMoveTime implements the "movetime M" shape: both limits equal
// the requested time minus the buffer, never less than one millisecond.
func fixedMoveTime(m, buffer time.Duration) (soft, hard time.Duration) {
	t := m - buffer
	if t < time.Millisecond {
		t = time.Millisecond
	}
	return t, t
}

// tournamentTime implements the "X moves in Y time" shape with G
// moves left in the current time control.
func tournamentTime(total time.Duration, movesToGo int) (soft, hard time.Duration) {
	k := clampInt(movesToGo, 2, 20)
	soft = total / time.Duration(k)
	if movesToGo == 1 {
		h := total - 250*time.Millisecond
		half := total / 2
		if h < half {
			h = half
		}
		hard = h
	} else {
		a := total / 4
		b := total * 4 / time.Duration(movesToGo)
		if a < b {
			hard = a
		} else {
			hard = b
		}
	}
	return soft, hard
}

// fischerTime implements the "X time plus Y increment per move" shape.
func fischerTime(total, inc time.Duration) (soft, hard time.Duration) {
	soft = total/30 + inc
	a := total / 5
	b := inc - 250*time.Millisecond
	if a > b {
		hard = a
	} else {
		hard = b
	}
	return soft, hard
}
