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

// UndoState is an opaque token handed back by Position.DoMove and
// consumed by Position.UndoMove. The search never inspects it; it
// only ever passes back exactly what DoMove returned, in LIFO order.
type UndoState interface{}

// Position is the external collaborator the search recurses against.
// Board representation, move generation, Zobrist hashing and the
// evaluation function all live behind this interface; the search
// package never constructs or inspects a concrete board.
//
// A single Position is owned and mutated by one search goroutine; it
// is never shared or copied across calls. DoMove/UndoMove and
// DoNullMove/UndoNullMove must leave the position byte-for-byte
// identical to its pre-call state once undone.
type Position interface {
	// Hash returns the Zobrist key of the current position.
	Hash() uint64

	// SideToMove returns the color on move.
	SideToMove() Color

	// InCheck reports whether the side to move is in check.
	InCheck() bool

	// HasNonPawnMaterial reports whether the side to move has any
	// piece other than pawns and king, used to gate null-move pruning
	// in positions prone to zugzwang.
	HasNonPawnMaterial() bool

	// SEESign returns the sign of the static exchange evaluation of
	// playing m on the current position: positive for a winning
	// exchange, zero for equal, negative for losing.
	SEESign(m Move) int

	// LastMove returns the move that produced the current position,
	// or MoveNone at the root.
	LastMove() Move

	// Eval returns the static (piece-square-table plus material)
	// evaluation of the position from the side-to-move's perspective.
	Eval() Value

	// IsDraw reports whether the position is a draw by repetition,
	// the fifty-move rule or insufficient material.
	IsDraw() bool

	// IsPseudoLegal reports whether m is pseudo-legal in the current
	// position (does not check for a self-check after the move).
	IsPseudoLegal(m Move) bool

	// GivesCheck reports, without making the move, whether playing m
	// would check the opponent.
	GivesCheck(m Move) bool

	// PseudoLegalMoves returns every pseudo-legal move available to the
	// side to move. When quiescence is true the result is restricted to
	// captures, promotions and, while in check, evasions — the tactical
	// subset quiescence search iterates. The search never mutates or
	// retains the returned slice past the current node.
	PseudoLegalMoves(quiescence bool) []Move

	// DoMove plays m and returns an UndoState to restore it.
	DoMove(m Move) UndoState
	// UndoMove reverses the most recent DoMove.
	UndoMove(u UndoState)

	// DoNullMove plays a null move (passes the turn) and returns an
	// UndoState to restore it.
	DoNullMove() UndoState
	// UndoNullMove reverses the most recent DoNullMove.
	UndoNullMove(u UndoState)
}

// MoveSelector stages pseudo-legal moves for the search in the order
// the move loop needs: TT move, then winning captures/promotions,
// then killers, then history-ordered quiets, with losing captures and
// late quiets demoted to a "bad move" stage. A MoveSelector is
// single-use: Reset prepares it for one node, Next drains it.
type MoveSelector interface {
	// Reset prepares the selector to iterate moves for pos at the
	// given ply, preferring ttMove first and the given killers once
	// the capture stage is exhausted. quiescence restricts generation
	// to captures, promotions and check evasions.
	Reset(pos Position, ply int, ttMove Move, killers [2]Move, quiescence bool)

	// Next returns the next pseudo-legal move and whether the move
	// came from a "bad" stage (losing capture or late quiet), or
	// (MoveNone, false, false) when exhausted.
	Next() (m Move, bad bool, ok bool)
}
