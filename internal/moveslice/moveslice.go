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

// Package moveslice provides a thin []Move alias for the handful of
// places the search core needs to hand a move list across a boundary
// (a restricted searchmoves root set, a reported principal variation)
// together with the one piece of formatting neither caller wants to
// duplicate: a UCI move-list join.
package moveslice

import (
	"strings"

	. "github.com/nullx002/daydreamer/internal/types"
)

// MoveSlice is a plain []Move with a UCI string formatter attached.
// It carries no other behavior: callers index, range and len it like
// any slice.
type MoveSlice []Move

// StringUci returns the moves space-separated in UCI protocol format,
// e.g. for an "info ... pv" line.
func (ms MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.String())
	}
	return b.String()
}
