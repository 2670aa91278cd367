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

var seeAttackerOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// leastValuableAttacker finds the cheapest piece of side attacking
// target given the board's current occupancy, so that sliding pieces
// revealed by an earlier capture in the exchange are picked up.
func (b *Board) leastValuableAttacker(target Square, side Color) (Square, PieceType, bool) {
	for _, pt := range seeAttackerOrder {
		for sq := Square(0); sq < 64; sq++ {
			p := b.squares[sq]
			if p == PieceNone || p.ColorOf() != side || p.TypeOf() != pt {
				continue
			}
			for _, a := range b.attacksFrom(sq, pt, side) {
				if a == target {
					return sq, pt, true
				}
			}
		}
	}
	return SqNone, PtNone, false
}

// see runs the standard swap-off algorithm on a scratch copy of the
// board and returns the material balance of the exchange on m.To()
// from the mover's point of view.
func (b *Board) see(m Move) int {
	work := *b
	work.keyHistory = nil
	work.irreversible = nil

	target := m.To()
	attackerSq := m.From()
	attackerColor := b.stm
	attackerType := m.MovingPieceType()

	var gain [32]int
	depth := 0

	if m.MoveType() == EnPassant {
		gain[0] = int(pieceValue[Pawn])
		capSq := squareOf(file(target), rank(attackerSq))
		work.squares[capSq] = PieceNone
	} else {
		gain[0] = int(pieceValue[work.squares[target].TypeOf()])
	}

	work.squares[target] = MakePiece(attackerColor, attackerType)
	work.squares[attackerSq] = PieceNone

	side := attackerColor.Flip()
	for depth < len(gain)-1 {
		sq, pt, ok := work.leastValuableAttacker(target, side)
		if !ok {
			break
		}
		depth++
		gain[depth] = int(pieceValue[attackerType]) - gain[depth-1]
		work.squares[target] = MakePiece(side, pt)
		work.squares[sq] = PieceNone
		attackerType = pt
		side = side.Flip()
	}
	for depth > 0 {
		if -gain[depth] < gain[depth-1] {
			gain[depth-1] = -gain[depth]
		}
		depth--
	}
	return gain[0]
}

// SEESign returns the sign of the static exchange evaluation of
// playing m: positive for a winning capture sequence on m.To(), zero
// for an even trade, negative for a loss.
func (b *Board) SEESign(m Move) int {
	if !m.IsCapture() {
		return 0
	}
	v := b.see(m)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
