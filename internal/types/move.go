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

import "fmt"

// Move is a 32-bit encoded chess move.
//
//  BITMAP 32-bit
//  |-unused --|-mtype-|-promo-|-capt.pt-|-mov.pt-|--from--|---to---|
//  3 2 2 2 2 2|2 2|2 2|1 1|1 1|1 1 1 1 1|1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  1 ... ... .|. ..|. .|. .|. .|. . . . |. . . . . . . . . . . . . .
//  bits 0-5 to, 6-11 from, 12-14 moving piece type, 15-17 captured
//  piece type, 18-19 promotion piece type offset, 20-21 move type.
type Move uint32

// MoveType classifies the kind of move encoded.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

const (
	toShift       = 0
	fromShift     = 6
	movingShift   = 12
	capturedShift = 15
	promoShift    = 18
	typeShift     = 20

	squareMask = 0x3F
	pieceMask  = 0x7
	promoMask  = 0x3
	typeMask   = 0x3
)

const (
	// MoveNone is the "no move" sentinel.
	MoveNone Move = 0
	// NullMove is the pass-move used by null-move pruning. It is
	// distinguished from MoveNone by setting the move type bits to a
	// pattern CreateMove never produces on its own (Castling with
	// from==to==0 cannot occur for a real move).
	NullMove Move = Move(Castling) << typeShift
)

// CreateMove encodes a move. captured may be PieceNone. promo is only
// meaningful when t == Promotion.
func CreateMove(from, to Square, moving, captured Piece, t MoveType, promo PieceType) Move {
	m := Move(to)&squareMask<<toShift |
		Move(from)&squareMask<<fromShift |
		Move(moving.TypeOf())&pieceMask<<movingShift |
		Move(t)&typeMask<<typeShift

	if captured != PieceNone {
		m |= Move(captured.TypeOf()) & pieceMask << capturedShift
	}
	if t == Promotion {
		if promo < Knight {
			promo = Knight
		}
		m |= Move(promo-Knight) & promoMask << promoShift
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> fromShift) & squareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> toShift) & squareMask) }

// MovingPieceType returns the type of the piece that is moving.
func (m Move) MovingPieceType() PieceType { return PieceType((m >> movingShift) & pieceMask) }

// CapturedPieceType returns the type of the captured piece, or
// PtNone when the move is not a capture.
func (m Move) CapturedPieceType() PieceType { return PieceType((m >> capturedShift) & pieceMask) }

// PromotionPieceType returns the promotion piece type; only valid
// when MoveType() == Promotion.
func (m Move) PromotionPieceType() PieceType {
	return PieceType((m>>promoShift)&promoMask) + Knight
}

// MoveType returns the move's classification.
func (m Move) MoveType() MoveType { return MoveType((m >> typeShift) & typeMask) }

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m != NullMove && m.CapturedPieceType() != PtNone
}

// IsPromote reports whether the move is a pawn promotion.
func (m Move) IsPromote() bool { return m != NullMove && m.MoveType() == Promotion }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m != NullMove && m.MoveType() == EnPassant }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m != NullMove && m.MoveType() == Castling }

// IsQuiet reports whether the move is neither a capture nor a
// promotion; quiet moves are the only ones tracked by history.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromote()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	if m == NullMove {
		return "0000"
	}
	s := fmt.Sprintf("%s%s", squareString(m.From()), squareString(m.To()))
	if m.IsPromote() {
		s += promoLetter(m.PromotionPieceType())
	}
	return s
}

func squareString(sq Square) string {
	file := byte('a' + sq%8)
	rank := byte('1' + sq/8)
	return string([]byte{file, rank})
}

func promoLetter(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}
