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
	"math/rand"

	. "github.com/nullx002/daydreamer/internal/types"
)

var (
	zobristPiece [64][12]uint64
	zobristCastl [16]uint64
	zobristEP    [8]uint64
	zobristSide  uint64
)

func init() {
	r := rand.New(rand.NewSource(0xC0FFEE))
	for sq := 0; sq < 64; sq++ {
		for pc := 0; pc < 12; pc++ {
			zobristPiece[sq][pc] = r.Uint64()
		}
	}
	for i := range zobristCastl {
		zobristCastl[i] = r.Uint64()
	}
	for i := range zobristEP {
		zobristEP[i] = r.Uint64()
	}
	zobristSide = r.Uint64()
}

// computeHash recomputes the zobrist key from scratch. The board is
// small enough that a full recompute on every DoMove is simpler, and
// no slower in practice, than threading incremental updates through
// every move-type branch of DoMove/UndoMove.
func (b *Board) computeHash() uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p != PieceNone {
			h ^= zobristPiece[sq][p.Index()]
		}
	}
	h ^= zobristCastl[b.castling]
	if b.epSquare != SqNone {
		h ^= zobristEP[file(b.epSquare)]
	}
	if b.stm == Black {
		h ^= zobristSide
	}
	return h
}
