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

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// pseudoMoves generates every move the side to move could play ignoring
// whether it leaves its own king in check. quiescence restricts the
// list to captures, promotions and (when in check) all evasions, the
// same contract types.Position.PseudoLegalMoves documents.
func (b *Board) pseudoMoves(quiescence bool) []Move {
	var moves []Move
	inCheck := b.InCheck()
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == PieceNone || p.ColorOf() != b.stm {
			continue
		}
		pt := p.TypeOf()
		if pt == Pawn {
			moves = b.genPawnMoves(sq, quiescence && !inCheck, moves)
			continue
		}
		for _, to := range b.attacksFrom(sq, pt, b.stm) {
			target := b.squares[to]
			if target != PieceNone && target.ColorOf() == b.stm {
				continue
			}
			isCapture := target != PieceNone
			if quiescence && !inCheck && !isCapture {
				continue
			}
			moves = append(moves, CreateMove(sq, to, p, target, Normal, PtNone))
		}
		if pt == King {
			moves = b.genCastling(sq, quiescence, moves)
		}
	}
	return moves
}

func (b *Board) genPawnMoves(sq Square, capturesOnly bool, moves []Move) []Move {
	p := b.squares[sq]
	f, r := file(sq), rank(sq)
	dr := 1
	startRank, promoRank := 1, 7
	if b.stm == Black {
		dr = -1
		startRank, promoRank = 6, 0
	}

	// captures, including en passant
	for _, df := range [2]int{-1, 1} {
		if !onBoard(f+df, r+dr) {
			continue
		}
		to := squareOf(f+df, r+dr)
		target := b.squares[to]
		if to == b.epSquare {
			moves = append(moves, CreateMove(sq, to, p, MakePiece(b.stm.Flip(), Pawn), EnPassant, PtNone))
			continue
		}
		if target == PieceNone || target.ColorOf() == b.stm {
			continue
		}
		if rank(to) == promoRank {
			for _, pt := range promotionTypes {
				moves = append(moves, CreateMove(sq, to, p, target, Promotion, pt))
			}
		} else {
			moves = append(moves, CreateMove(sq, to, p, target, Normal, PtNone))
		}
	}

	// single and double push; with capturesOnly only the promoting push
	if onBoard(f, r+dr) {
		one := squareOf(f, r+dr)
		if b.squares[one] == PieceNone {
			if rank(one) == promoRank {
				for _, pt := range promotionTypes {
					moves = append(moves, CreateMove(sq, one, p, PieceNone, Promotion, pt))
				}
			} else if !capturesOnly {
				moves = append(moves, CreateMove(sq, one, p, PieceNone, Normal, PtNone))
				if r == startRank && onBoard(f, r+2*dr) {
					two := squareOf(f, r+2*dr)
					if b.squares[two] == PieceNone {
						moves = append(moves, CreateMove(sq, two, p, PieceNone, Normal, PtNone))
					}
				}
			}
		}
	}
	return moves
}

func (b *Board) genCastling(kingSq Square, quiescence bool, moves []Move) []Move {
	if quiescence {
		return moves
	}
	if b.kingInCheck(b.stm) {
		return moves
	}
	p := b.squares[kingSq]
	opp := b.stm.Flip()
	if b.stm == White {
		if b.castling&whiteKingSide != 0 && b.squares[5] == PieceNone && b.squares[6] == PieceNone &&
			!b.isAttackedBy(5, opp) && !b.isAttackedBy(6, opp) {
			moves = append(moves, CreateMove(kingSq, 6, p, PieceNone, Castling, PtNone))
		}
		if b.castling&whiteQueenSide != 0 && b.squares[1] == PieceNone && b.squares[2] == PieceNone && b.squares[3] == PieceNone &&
			!b.isAttackedBy(3, opp) && !b.isAttackedBy(2, opp) {
			moves = append(moves, CreateMove(kingSq, 2, p, PieceNone, Castling, PtNone))
		}
	} else {
		if b.castling&blackKingSide != 0 && b.squares[61] == PieceNone && b.squares[62] == PieceNone &&
			!b.isAttackedBy(61, opp) && !b.isAttackedBy(62, opp) {
			moves = append(moves, CreateMove(kingSq, 62, p, PieceNone, Castling, PtNone))
		}
		if b.castling&blackQueenSide != 0 && b.squares[57] == PieceNone && b.squares[58] == PieceNone && b.squares[59] == PieceNone &&
			!b.isAttackedBy(59, opp) && !b.isAttackedBy(58, opp) {
			moves = append(moves, CreateMove(kingSq, 58, p, PieceNone, Castling, PtNone))
		}
	}
	return moves
}

// PseudoLegalMoves returns every fully legal move available to the side
// to move (the name is kept to satisfy types.Position; every move
// returned here has already been filtered for king safety).
func (b *Board) PseudoLegalMoves(quiescence bool) []Move {
	candidates := b.pseudoMoves(quiescence)
	legal := make([]Move, 0, len(candidates))
	mover := b.stm
	for _, m := range candidates {
		u := b.DoMove(m)
		if !b.kingInCheck(mover) {
			legal = append(legal, m)
		}
		b.UndoMove(u)
	}
	return legal
}

// IsPseudoLegal reports whether m is among the side to move's legal
// moves right now. The search core uses this to validate TT/killer/
// history moves that may no longer apply to the current position.
func (b *Board) IsPseudoLegal(m Move) bool {
	if m == MoveNone {
		return false
	}
	for _, legal := range b.PseudoLegalMoves(false) {
		if legal == m {
			return true
		}
	}
	return false
}

// GivesCheck reports whether playing m would check the opponent.
func (b *Board) GivesCheck(m Move) bool {
	u := b.DoMove(m)
	check := b.InCheck()
	b.UndoMove(u)
	return check
}
