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

package types

import (
	"strconv"
	"strings"
)

// Value represents the score of a search node in centipawns.
type Value int16

// Constants for the search score range. ValueInf/ValueNA sit outside
// the legal [ValueMin, ValueMax] band so they can never be mistaken
// for a real result.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxPly - 1
)

// MatedIn returns the score for being checkmated in the given number
// of plies from the root.
func MatedIn(ply int) Value {
	return -ValueCheckMate + Value(ply)
}

// MateIn returns the score for delivering checkmate in the given
// number of plies from the root.
func MateIn(ply int) Value {
	return ValueCheckMate - Value(ply)
}

// IsValid reports whether the value lies within the legal score band.
func (v Value) IsValid() bool {
	return v > ValueMin && v < ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate.
func (v Value) IsCheckMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

// Clip clamps v into the int16-safe TT storage range.
func (v Value) Clip() Value {
	switch {
	case v > ValueCheckMate:
		return ValueCheckMate
	case v < -ValueCheckMate:
		return -ValueCheckMate
	default:
		return v
	}
}

func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == ValueNA:
		b.WriteString("N/A")
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		dist := int(ValueCheckMate) - abs(int(v))
		n := (dist + 1) / 2
		if v < 0 {
			n = -n
		}
		b.WriteString(strconv.Itoa(n))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
