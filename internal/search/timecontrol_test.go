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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/nullx002/daydreamer/internal/types"
)

// TestComputeTimeLimitsFixedMoveTimeIgnoresClock covers the "movetime M"
// shape: since there is no clock to protect, it must not be clamped
// against WhiteTime/BlackTime (which are unset in this mode).
func TestComputeTimeLimitsFixedMoveTimeIgnoresClock(t *testing.T) {
	c := NewConstraints()
	c.MoveTime = 2 * time.Second
	soft, hard := ComputeTimeLimits(c, White)
	assert.Equal(t, soft, hard)
	assert.InDelta(t, (2*time.Second - 100*time.Millisecond).Milliseconds(), soft.Milliseconds(), 1)
}

func TestComputeTimeLimitsFixedMoveTimeNeverGoesNegative(t *testing.T) {
	c := NewConstraints()
	c.MoveTime = 50 * time.Millisecond // shorter than the buffer
	soft, hard := ComputeTimeLimits(c, White)
	assert.GreaterOrEqual(t, soft, time.Duration(0))
	assert.GreaterOrEqual(t, hard, time.Duration(0))
}

// TestComputeTimeLimitsFischerNeverExceedsRemainingTime exercises the
// "X time plus Y increment" shape: the soft limit must stay within the
// side to move's own clock.
func TestComputeTimeLimitsFischerNeverExceedsRemainingTime(t *testing.T) {
	c := NewConstraints()
	c.WhiteTime = 10 * time.Second
	c.WhiteInc = 100 * time.Millisecond
	soft, hard := ComputeTimeLimits(c, White)
	assert.LessOrEqual(t, soft, c.WhiteTime)
	assert.LessOrEqual(t, hard, c.WhiteTime)
	assert.Greater(t, soft, time.Duration(0))
	assert.Greater(t, hard, time.Duration(0))
}

// TestComputeTimeLimitsUsesSideToMoveClock checks that White's and
// Black's independent clocks are not conflated.
func TestComputeTimeLimitsUsesSideToMoveClock(t *testing.T) {
	c := NewConstraints()
	c.WhiteTime = 60 * time.Second
	c.BlackTime = 5 * time.Second
	_, whiteHard := ComputeTimeLimits(c, White)
	_, blackHard := ComputeTimeLimits(c, Black)
	assert.Greater(t, whiteHard, blackHard)
}

// TestComputeTimeLimitsTournamentSplitsByMovesToGo exercises the "X
// moves in Y time" shape.
func TestComputeTimeLimitsTournamentSplitsByMovesToGo(t *testing.T) {
	c := NewConstraints()
	c.WhiteTime = 30 * time.Second
	c.MovesToGo = 10
	soft, hard := ComputeTimeLimits(c, White)
	assert.LessOrEqual(t, soft, c.WhiteTime)
	assert.LessOrEqual(t, hard, c.WhiteTime)
}
