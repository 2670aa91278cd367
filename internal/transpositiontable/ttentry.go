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

package transpositiontable

import (
	. "github.com/nullx002/daydreamer/internal/types"
)

// Bound is a bit-set over {AtLeast, AtMost}. Exact = AtLeast|AtMost.
type Bound uint8

const (
	// BoundNone marks an empty or freshly-overwritten entry.
	BoundNone Bound = 0
	// AtLeast means the stored score is a lower bound (a beta cutoff
	// was recorded; the true score may be higher).
	AtLeast Bound = 1 << 0
	// AtMost means the stored score is an upper bound (every move
	// failed low against alpha; the true score may be lower).
	AtMost Bound = 1 << 1
	// Exact means the stored score is the node's true minimax value.
	Exact = AtLeast | AtMost
)

// entry is one slot of a bucket. depth/bound/generation are packed
// into a single 16-bit word the way the teacher's vmeta field packs
// depth/vtype/age.
type entry struct {
	key   uint64 // full Zobrist key; verified on lookup (§4.1 "tag")
	move  uint32 // the full encoded Move, including captured-piece bits
	value int16
	eval  int16
	meta  uint16 // bits 0-7 depth, 8-9 bound, 10-15 generation
}

const (
	depthMask  = uint16(0x00FF)
	boundMask  = uint16(0x0300)
	boundShift = 8
	genMask    = uint16(0xFC00)
	genShift   = 10
)

func (e *entry) isEmpty() bool { return e.key == 0 }

func (e *entry) Key() uint64  { return e.key }
func (e *entry) Move() Move   { return Move(e.move) }
func (e *entry) Value() Value { return Value(e.value) }
func (e *entry) Eval() Value  { return Value(e.eval) }
func (e *entry) Depth() uint8 { return uint8(e.meta & depthMask) }
func (e *entry) Bound() Bound { return Bound((e.meta & boundMask) >> boundShift) }
func (e *entry) Gen() uint8   { return uint8((e.meta & genMask) >> genShift) }

func packMeta(depth uint8, bound Bound, generation uint8) uint16 {
	return uint16(depth) |
		uint16(bound)<<boundShift |
		(uint16(generation)&0x3F)<<genShift
}

// Entry is the read-only view of a transposition table slot returned
// by Get.
type Entry struct {
	Move  Move
	Value Value
	Eval  Value
	Depth uint8
	Bound Bound
}

func (e *entry) view() Entry {
	return Entry{Move: e.Move(), Value: e.Value(), Eval: e.Eval(), Depth: e.Depth(), Bound: e.Bound()}
}
