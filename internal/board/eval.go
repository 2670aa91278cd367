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

package board

import (
	. "github.com/nullx002/daydreamer/internal/types"
)

// pieceValue is the material value table used by both Eval and SEE.
var pieceValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// pawnPST rewards central, advanced pawns; index 0 is a1, 63 is h8,
// mirrored for black by flipping the rank.
var pawnPST = [64]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int16{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

func pstValue(pt PieceType, sq Square, c Color) int16 {
	idx := int(sq)
	if c == Black {
		idx = int(squareOf(file(sq), 7-rank(sq)))
	}
	switch pt {
	case Pawn:
		return pawnPST[idx]
	case Knight:
		return knightPST[idx]
	default:
		return 0
	}
}

// Eval returns the side to move's material-plus-placement score. It
// has no search-time ambitions; it exists so the search core has a
// real leaf evaluation to quiesce and prune against.
func (b *Board) Eval() Value {
	var score int32
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == PieceNone {
			continue
		}
		pt := p.TypeOf()
		v := int32(pieceValue[pt]) + int32(pstValue(pt, sq, p.ColorOf()))
		if p.ColorOf() == White {
			score += v
		} else {
			score -= v
		}
	}
	if b.stm == Black {
		score = -score
	}
	return Value(score)
}

// HasNonPawnMaterial reports whether the side to move has a piece
// other than pawns and its king, gating null-move pruning away from
// pawn-and-king endings prone to zugzwang.
func (b *Board) HasNonPawnMaterial() bool {
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == PieceNone || p.ColorOf() != b.stm {
			continue
		}
		switch p.TypeOf() {
		case Knight, Bishop, Rook, Queen:
			return true
		}
	}
	return false
}

// IsDraw reports a draw by the fifty-move rule, threefold repetition
// or insufficient mating material.
func (b *Board) IsDraw() bool {
	if b.halfmove >= 100 {
		return true
	}
	start := 0
	if n := len(b.irreversible); n > 0 {
		start = b.irreversible[n-1]
	}
	if start < len(b.keyHistory) {
		count := 0
		for _, k := range b.keyHistory[start:] {
			if k == b.hash {
				count++
			}
		}
		if count >= 3 {
			return true
		}
	}
	return b.insufficientMaterial()
}

func (b *Board) insufficientMaterial() bool {
	minor := 0
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == PieceNone {
			continue
		}
		switch p.TypeOf() {
		case Pawn, Rook, Queen:
			return false
		case Bishop, Knight:
			minor++
		}
	}
	return minor <= 1
}
