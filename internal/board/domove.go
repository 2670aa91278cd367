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

// undoInfo is the concrete type behind the UndoState token DoMove
// hands back. The search package never looks inside it.
type undoInfo struct {
	move     Move
	captured Piece
	captureSq Square

	prevCastling uint8
	prevEP       Square
	prevHalfmove int
	prevFullmove int
	prevHash     uint64
	prevLastMove Move

	rookFrom, rookTo Square // SqNone unless this was a castling move

	keyHistoryLen  int
	irreversibleLen int
}

var rookCastleSquares = map[Square][2]Square{
	6:  {7, 5},   // white king side
	2:  {0, 3},   // white queen side
	62: {63, 61}, // black king side
	58: {56, 59}, // black queen side
}

func castlingLoss(sq Square) uint8 {
	switch sq {
	case 4:
		return whiteKingSide | whiteQueenSide
	case 0:
		return whiteQueenSide
	case 7:
		return whiteKingSide
	case 60:
		return blackKingSide | blackQueenSide
	case 56:
		return blackQueenSide
	case 63:
		return blackKingSide
	default:
		return 0
	}
}

// DoMove plays m, mutating the board in place, and returns the token
// UndoMove needs to reverse it.
func (b *Board) DoMove(m Move) UndoState {
	u := &undoInfo{
		move:            m,
		captureSq:       SqNone,
		prevCastling:    b.castling,
		prevEP:          b.epSquare,
		prevHalfmove:    b.halfmove,
		prevFullmove:    b.fullmove,
		prevHash:        b.hash,
		prevLastMove:    b.lastMove,
		rookFrom:        SqNone,
		rookTo:          SqNone,
		keyHistoryLen:   len(b.keyHistory),
		irreversibleLen: len(b.irreversible),
	}

	from, to := m.From(), m.To()
	moving := b.squares[from]
	mover := b.stm

	irreversible := false

	switch m.MoveType() {
	case EnPassant:
		dir := 1
		if mover == Black {
			dir = -1
		}
		captSq := squareOf(file(to), rank(to)-dir)
		u.captured = b.squares[captSq]
		u.captureSq = captSq
		b.squares[captSq] = PieceNone
		b.squares[to] = moving
		b.squares[from] = PieceNone
		irreversible = true
	case Castling:
		rooks := rookCastleSquares[to]
		u.rookFrom, u.rookTo = rooks[0], rooks[1]
		b.squares[to] = moving
		b.squares[from] = PieceNone
		b.squares[u.rookTo] = b.squares[u.rookFrom]
		b.squares[u.rookFrom] = PieceNone
	case Promotion:
		target := b.squares[to]
		if target != PieceNone {
			u.captured = target
			u.captureSq = to
		}
		b.squares[to] = MakePiece(mover, m.PromotionPieceType())
		b.squares[from] = PieceNone
		irreversible = true
	default:
		target := b.squares[to]
		if target != PieceNone {
			u.captured = target
			u.captureSq = to
			irreversible = true
		}
		b.squares[to] = moving
		b.squares[from] = PieceNone
	}

	if moving.TypeOf() == Pawn {
		irreversible = true
	}

	newCastling := b.castling &^ castlingLoss(from) &^ castlingLoss(to)
	if newCastling != b.castling {
		irreversible = true
	}
	b.castling = newCastling

	b.epSquare = SqNone
	if moving.TypeOf() == Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			b.epSquare = squareOf(file(from), (rank(from)+rank(to))/2)
		}
	}

	if irreversible {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if mover == Black {
		b.fullmove++
	}

	b.stm = mover.Flip()
	b.lastMove = m
	b.hash = b.computeHash()

	if irreversible {
		b.irreversible = append(b.irreversible, len(b.keyHistory))
	}
	b.keyHistory = append(b.keyHistory, b.hash)

	return u
}

// UndoMove reverses the most recent DoMove.
func (b *Board) UndoMove(state UndoState) {
	u := state.(*undoInfo)
	m := u.move
	from, to := m.From(), m.To()
	mover := b.stm.Flip()

	switch m.MoveType() {
	case EnPassant:
		b.squares[from] = b.squares[to]
		b.squares[to] = PieceNone
		b.squares[u.captureSq] = u.captured
	case Castling:
		b.squares[from] = b.squares[to]
		b.squares[to] = PieceNone
		b.squares[u.rookFrom] = b.squares[u.rookTo]
		b.squares[u.rookTo] = PieceNone
	case Promotion:
		b.squares[from] = MakePiece(mover, Pawn)
		if u.captured != PieceNone {
			b.squares[to] = u.captured
		} else {
			b.squares[to] = PieceNone
		}
	default:
		b.squares[from] = b.squares[to]
		if u.captured != PieceNone {
			b.squares[to] = u.captured
		} else {
			b.squares[to] = PieceNone
		}
	}

	b.stm = mover
	b.castling = u.prevCastling
	b.epSquare = u.prevEP
	b.halfmove = u.prevHalfmove
	b.fullmove = u.prevFullmove
	b.hash = u.prevHash
	b.lastMove = u.prevLastMove

	b.keyHistory = b.keyHistory[:u.keyHistoryLen]
	b.irreversible = b.irreversible[:u.irreversibleLen]
}

// DoNullMove passes the turn without moving a piece, used by null-move
// pruning. The en passant square is cleared, matching the rule that a
// pass forfeits any pending en passant capture.
func (b *Board) DoNullMove() UndoState {
	u := &undoInfo{
		move:            NullMove,
		captureSq:       SqNone,
		prevCastling:    b.castling,
		prevEP:          b.epSquare,
		prevHalfmove:    b.halfmove,
		prevFullmove:    b.fullmove,
		prevHash:        b.hash,
		prevLastMove:    b.lastMove,
		rookFrom:        SqNone,
		rookTo:          SqNone,
		keyHistoryLen:   len(b.keyHistory),
		irreversibleLen: len(b.irreversible),
	}
	b.epSquare = SqNone
	b.stm = b.stm.Flip()
	b.lastMove = NullMove
	b.hash = b.computeHash()
	b.keyHistory = append(b.keyHistory, b.hash)
	return u
}

// UndoNullMove reverses the most recent DoNullMove.
func (b *Board) UndoNullMove(state UndoState) {
	u := state.(*undoInfo)
	b.stm = b.stm.Flip()
	b.castling = u.prevCastling
	b.epSquare = u.prevEP
	b.halfmove = u.prevHalfmove
	b.fullmove = u.prevFullmove
	b.hash = u.prevHash
	b.lastMove = u.prevLastMove
	b.keyHistory = b.keyHistory[:u.keyHistoryLen]
	b.irreversible = b.irreversible[:u.irreversibleLen]
}

// LastMove returns the move that produced the current position.
func (b *Board) LastMove() Move { return b.lastMove }

// SideToMove returns the color on move.
func (b *Board) SideToMove() Color { return b.stm }

// Hash returns the position's Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }
