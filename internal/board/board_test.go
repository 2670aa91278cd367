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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/nullx002/daydreamer/internal/types"
)

func TestStartPositionHas20LegalMoves(t *testing.T) {
	b := StartPosition()
	assert.Len(t, b.PseudoLegalMoves(false), 20)
	assert.False(t, b.InCheck())
	assert.False(t, b.IsDraw())
}

func TestFenRoundTripsHashAndSquares(t *testing.T) {
	b, err := NewBoard("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, uint8(whiteKingSide|whiteQueenSide|blackKingSide|blackQueenSide), b.castling)
	assert.Equal(t, b.computeHash(), b.Hash())
}

func TestDoUndoMoveRestoresPosition(t *testing.T) {
	b := StartPosition()
	before := *b
	beforeHash := b.Hash()

	moves := b.PseudoLegalMoves(false)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		u := b.DoMove(m)
		b.UndoMove(u)
		assert.Equal(t, beforeHash, b.Hash())
		assert.Equal(t, before.squares, b.squares)
		assert.Equal(t, before.stm, b.stm)
		assert.Equal(t, before.castling, b.castling)
		assert.Equal(t, before.epSquare, b.epSquare)
	}
}

func TestDoUndoMoveRandomWalkRestoresPosition(t *testing.T) {
	b := StartPosition()
	r := rand.New(rand.NewSource(7))

	type frame struct {
		state undoInfo
		u     UndoState
	}
	var stack []frame
	hashes := []uint64{b.Hash()}

	for i := 0; i < 40; i++ {
		moves := b.PseudoLegalMoves(false)
		if len(moves) == 0 {
			break
		}
		m := moves[r.Intn(len(moves))]
		u := b.DoMove(m)
		stack = append(stack, frame{u: u})
		hashes = append(hashes, b.Hash())
	}

	for i := len(stack) - 1; i >= 0; i-- {
		b.UndoMove(stack[i].u)
		assert.Equal(t, hashes[i], b.Hash())
	}
	assert.Equal(t, hashes[0], b.Hash())
}

func TestQueenRookMateInOne(t *testing.T) {
	b, err := NewBoard("4k3/R7/8/8/8/8/8/4K2Q w - - 0 1")
	require.NoError(t, err)
	mate := CreateMove(Square(7), Square(63), MakePiece(White, Queen), PieceNone, Normal, PtNone)
	require.Contains(t, b.PseudoLegalMoves(false), mate)
	u := b.DoMove(mate)
	assert.True(t, b.InCheck())
	assert.Empty(t, b.PseudoLegalMoves(false))
	b.UndoMove(u)
}

func TestBackRankMateDetectedByAlphaBetaShapedCheck(t *testing.T) {
	b, err := NewBoard("6k1/8/6K1/6Q1/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.InCheck())
	assert.NotEmpty(t, b.PseudoLegalMoves(false))

	mate := CreateMove(Square(38), Square(59), MakePiece(White, Queen), PieceNone, Normal, PtNone)
	require.Contains(t, b.PseudoLegalMoves(false), mate)
	u := b.DoMove(mate)
	assert.True(t, b.InCheck())
	assert.Empty(t, b.PseudoLegalMoves(false))
	b.UndoMove(u)
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	b, err := NewBoard("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.InCheck())
	assert.Empty(t, b.PseudoLegalMoves(false))
}

func TestEnPassantCaptureAvailableAfterDoublePush(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/5p2/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	push := CreateMove(Square(12), Square(28), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
	u1 := b.DoMove(push)
	assert.Equal(t, Square(20), b.epSquare)

	ep := CreateMove(Square(29), Square(20), MakePiece(Black, Pawn), MakePiece(White, Pawn), EnPassant, PtNone)
	require.Contains(t, b.PseudoLegalMoves(false), ep)
	u2 := b.DoMove(ep)
	assert.Equal(t, PieceNone, b.squares[28])
	b.UndoMove(u2)
	b.UndoMove(u1)
	assert.Equal(t, SqNone, b.epSquare)
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	castle := CreateMove(Square(4), Square(6), MakePiece(White, King), PieceNone, Castling, PtNone)
	require.Contains(t, b.PseudoLegalMoves(false), castle)

	u := b.DoMove(castle)
	assert.Equal(t, MakePiece(White, Rook), b.squares[5])
	assert.Equal(t, PieceNone, b.squares[7])
	assert.Equal(t, uint8(0), b.castling&(whiteKingSide|whiteQueenSide))

	b.UndoMove(u)
	assert.Equal(t, MakePiece(White, Rook), b.squares[7])
	assert.Equal(t, MakePiece(White, King), b.squares[4])
}

func TestFiftyMoveRuleIsDraw(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/8/R3K3 w - - 99 50")
	require.NoError(t, err)
	assert.False(t, b.IsDraw())
	m := CreateMove(Square(4), Square(5), MakePiece(White, King), PieceNone, Normal, PtNone)
	b.DoMove(m)
	assert.True(t, b.IsDraw())
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.IsDraw())
}

func TestSEESignFavorsWinningCapture(t *testing.T) {
	b, err := NewBoard("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	capture := CreateMove(Square(28), Square(35), MakePiece(White, Pawn), MakePiece(Black, Pawn), Normal, PtNone)
	assert.GreaterOrEqual(t, b.SEESign(capture), 0)
}

func TestSEESignNegativeForLosingCapture(t *testing.T) {
	b, err := NewBoard("4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	capture := CreateMove(Square(3), Square(35), MakePiece(White, Queen), MakePiece(Black, Pawn), Normal, PtNone)
	assert.Less(t, b.SEESign(capture), 0)
}

func TestEvalIsSymmetricUnderSideToMove(t *testing.T) {
	w, err := NewBoard("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	b2, err := NewBoard("4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, w.Eval(), -b2.Eval())
}

func TestGivesCheckDetectsDiscoveredAttack(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/4N3/4RK2 w - - 0 1")
	require.NoError(t, err)
	m := CreateMove(Square(12), Square(18), MakePiece(White, Knight), PieceNone, Normal, PtNone)
	assert.True(t, b.GivesCheck(m))
}
