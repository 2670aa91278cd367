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

// Square is a board square, 0 (a1) to 63 (h8).
type Square int8

// SqNone is the not-a-square sentinel.
const SqNone Square = -1

// Color is the side to move.
type Color int8

const (
	White Color = iota
	Black
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// PieceType is a piece kind without color.
type PieceType int8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// Piece is a colored piece, used to index the history table and to
// describe a move's moving/captured piece.
type Piece int8

// PieceNone is the empty-square / no-capture sentinel.
const PieceNone Piece = -1

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)*int8(PtLength-1) + int8(pt) - 1)
}

// TypeOf returns the piece type of p. Calling TypeOf on PieceNone is
// a programmer error.
func (p Piece) TypeOf() PieceType {
	return PieceType(int8(p)%int8(PtLength-1)) + 1
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	return Color(int8(p) / int8(PtLength-1))
}

// Index returns the dense 0..11 index used by the history table
// (piece_index in the history formula).
func (p Piece) Index() int {
	return int(p)
}
