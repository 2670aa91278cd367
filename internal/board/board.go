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

// Package board is a straightforward array-based chess board: the
// concrete types.Position the search core needs to be exercisable
// end to end. It favors a correct, readable "make the move and test
// the king" legality check over bitboards or pin tracking; nothing
// about the search core depends on how a Position answers its
// questions, so there is no pressure here to be clever.
package board

import (
	. "github.com/nullx002/daydreamer/internal/types"
)

const (
	whiteKingSide  = 1 << 0
	whiteQueenSide = 1 << 1
	blackKingSide  = 1 << 2
	blackQueenSide = 1 << 3
)

// Board is the concrete board the search recurses against in tests
// and the demo binary. One Board is owned and mutated by one search
// goroutine, exactly as types.Position requires.
type Board struct {
	squares  [64]Piece
	stm      Color
	castling uint8
	epSquare Square
	halfmove int
	fullmove int

	lastMove Move
	hash     uint64

	// keyHistory records the zobrist key after every move played so
	// far, for repetition detection; it is truncated on UndoMove.
	keyHistory []uint64
	// irreversible[i] is the index into keyHistory at or after which
	// a position could repeat - it resets at every pawn move, capture
	// or loss of castling rights.
	irreversible []int
}

func file(sq Square) int { return int(sq) & 7 }
func rank(sq Square) int { return int(sq) >> 3 }

func squareOf(f, r int) Square { return Square(r*8 + f) }

func onBoard(f, r int) bool { return f >= 0 && f < 8 && r >= 0 && r < 8 }

// StartPosition returns a Board set up for a new game.
func StartPosition() *Board {
	b, err := NewBoard("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) String() string {
	var out [8][8]byte
	for sq := Square(0); sq < 64; sq++ {
		out[rank(sq)][file(sq)] = pieceLetter(b.squares[sq])
	}
	s := ""
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			s += string(out[r][f])
		}
		s += "\n"
	}
	return s
}

func pieceLetter(p Piece) byte {
	if p == PieceNone {
		return '.'
	}
	letters := [PtLength]byte{PtNone: '.', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}
	l := letters[p.TypeOf()]
	if p.ColorOf() == White {
		l -= 32
	}
	return l
}
