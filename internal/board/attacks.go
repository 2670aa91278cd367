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

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pawnAttacks returns the two squares a pawn of color c on sq attacks
// (capture squares, not its push square).
func pawnAttacks(sq Square, c Color) []Square {
	f, r := file(sq), rank(sq)
	dr := 1
	if c == Black {
		dr = -1
	}
	var out []Square
	for _, df := range [2]int{-1, 1} {
		if onBoard(f+df, r+dr) {
			out = append(out, squareOf(f+df, r+dr))
		}
	}
	return out
}

// attacksFrom returns every square a piece of type pt and color c on
// sq attacks, given the current occupancy (for sliding pieces).
func (b *Board) attacksFrom(sq Square, pt PieceType, c Color) []Square {
	f, r := file(sq), rank(sq)
	var out []Square
	switch pt {
	case Pawn:
		return pawnAttacks(sq, c)
	case Knight:
		for _, o := range knightOffsets {
			if onBoard(f+o[0], r+o[1]) {
				out = append(out, squareOf(f+o[0], r+o[1]))
			}
		}
	case King:
		for _, o := range kingOffsets {
			if onBoard(f+o[0], r+o[1]) {
				out = append(out, squareOf(f+o[0], r+o[1]))
			}
		}
	case Bishop, Rook, Queen:
		var dirs [][2]int
		if pt == Bishop {
			dirs = sliceOf(bishopDirs)
		} else if pt == Rook {
			dirs = sliceOf(rookDirs)
		} else {
			dirs = append(sliceOf(bishopDirs), sliceOf(rookDirs)...)
		}
		for _, d := range dirs {
			nf, nr := f+d[0], r+d[1]
			for onBoard(nf, nr) {
				s := squareOf(nf, nr)
				out = append(out, s)
				if b.squares[s] != PieceNone {
					break
				}
				nf += d[0]
				nr += d[1]
			}
		}
	}
	return out
}

func sliceOf(a [4][2]int) [][2]int {
	out := make([][2]int, len(a))
	copy(out, a[:])
	return out
}

// isAttackedBy reports whether sq is attacked by any piece of color c.
func (b *Board) isAttackedBy(sq Square, c Color) bool {
	f, r := file(sq), rank(sq)

	for _, o := range knightOffsets {
		if onBoard(f+o[0], r+o[1]) {
			p := b.squares[squareOf(f+o[0], r+o[1])]
			if p != PieceNone && p.ColorOf() == c && p.TypeOf() == Knight {
				return true
			}
		}
	}
	for _, o := range kingOffsets {
		if onBoard(f+o[0], r+o[1]) {
			p := b.squares[squareOf(f+o[0], r+o[1])]
			if p != PieceNone && p.ColorOf() == c && p.TypeOf() == King {
				return true
			}
		}
	}
	// pawns attacking sq are the pawns diagonally behind sq from c's
	// direction of travel.
	dr := -1
	if c == Black {
		dr = 1
	}
	for _, df := range [2]int{-1, 1} {
		if onBoard(f+df, r+dr) {
			p := b.squares[squareOf(f+df, r+dr)]
			if p != PieceNone && p.ColorOf() == c && p.TypeOf() == Pawn {
				return true
			}
		}
	}

	dirs := append(sliceOf(bishopDirs), sliceOf(rookDirs)...)
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		diagonal := d[0] != 0 && d[1] != 0
		for onBoard(nf, nr) {
			s := squareOf(nf, nr)
			p := b.squares[s]
			if p != PieceNone {
				if p.ColorOf() == c {
					pt := p.TypeOf()
					if pt == Queen || (diagonal && pt == Bishop) || (!diagonal && pt == Rook) {
						return true
					}
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return false
}

func (b *Board) kingSquare(c Color) Square {
	king := MakePiece(c, King)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return SqNone
}

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool {
	return b.isAttackedBy(b.kingSquare(b.stm), b.stm.Flip())
}

func (b *Board) kingInCheck(c Color) bool {
	return b.isAttackedBy(b.kingSquare(c), c.Flip())
}
