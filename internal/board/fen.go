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
	"fmt"
	"strconv"
	"strings"

	. "github.com/nullx002/daydreamer/internal/types"
)

// NewBoard parses a FEN string into a Board.
func NewBoard(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d (%q)", len(fields), fen)
	}

	b := &Board{epSquare: SqNone}
	for i := range b.squares {
		b.squares[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := 7 - i
		f := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			p, err := pieceFromLetter(byte(c))
			if err != nil {
				return nil, err
			}
			if f >= 8 {
				return nil, fmt.Errorf("fen: rank %d overflows", r)
			}
			b.squares[squareOf(f, r)] = p
			f++
		}
	}

	switch fields[1] {
	case "w":
		b.stm = White
	case "b":
		b.stm = Black
	default:
		return nil, fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			b.castling |= whiteKingSide
		case 'Q':
			b.castling |= whiteQueenSide
		case 'k':
			b.castling |= blackKingSide
		case 'q':
			b.castling |= blackQueenSide
		case '-':
		default:
			return nil, fmt.Errorf("fen: bad castling field %q", fields[2])
		}
	}

	if fields[3] == "-" {
		b.epSquare = SqNone
	} else {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		b.epSquare = sq
	}

	b.halfmove = 0
	b.fullmove = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmove = n
		}
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmove = n
		}
	}

	b.hash = b.computeHash()
	b.keyHistory = []uint64{b.hash}
	b.irreversible = []int{0}
	return b, nil
}

func pieceFromLetter(c byte) (Piece, error) {
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		lower = c + 32
	}
	var pt PieceType
	switch lower {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return PieceNone, fmt.Errorf("fen: bad piece letter %q", string(c))
	}
	return MakePiece(color, pt), nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("fen: bad square %q", s)
	}
	f := int(s[0] - 'a')
	r := int(s[1] - '1')
	if !onBoard(f, r) {
		return SqNone, fmt.Errorf("fen: bad square %q", s)
	}
	return squareOf(f, r), nil
}

func squareString(sq Square) string {
	return string([]byte{byte('a' + file(sq)), byte('1' + rank(sq))})
}
