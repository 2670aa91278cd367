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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nullx002/daydreamer/internal/types"
)

func TestNewTtTablePowerOfTwoBuckets(t *testing.T) {
	tt := NewTtTable(4)
	assert.True(t, tt.numBuckets > 0)
	assert.Equal(t, tt.numBuckets&(tt.numBuckets-1), uint64(0))
}

func TestResizeZero(t *testing.T) {
	tt := NewTtTable(4)
	tt.Resize(0)
	assert.Equal(t, uint64(0), tt.numBuckets)
	_, ok := tt.Get(12345)
	assert.False(t, ok)
}

func TestPutGetRoundTrip(t *testing.T) {
	tt := NewTtTable(4)
	key := uint64(0xABCDEF0123456789)
	move := CreateMove(Square(12), Square(28), MakePiece(White, Pawn), PieceNone, Normal, PtNone)

	tt.Put(key, move, 7, Value(150), Exact, Value(140))
	e, ok := tt.Get(key)
	assert.True(t, ok)
	assert.Equal(t, move, e.Move)
	assert.Equal(t, Value(150), e.Value)
	assert.Equal(t, Value(140), e.Eval)
	assert.EqualValues(t, 7, e.Depth)
	assert.Equal(t, Exact, e.Bound)
}

func TestPutUpdatesExistingKey(t *testing.T) {
	tt := NewTtTable(4)
	key := uint64(42)
	m1 := CreateMove(Square(1), Square(2), MakePiece(White, Knight), PieceNone, Normal, PtNone)
	m2 := CreateMove(Square(3), Square(4), MakePiece(White, Bishop), PieceNone, Normal, PtNone)

	tt.Put(key, m1, 3, Value(10), AtLeast, Value(10))
	tt.Put(key, m2, 5, Value(20), Exact, Value(20))

	e, ok := tt.Get(key)
	assert.True(t, ok)
	assert.Equal(t, m2, e.Move)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, Exact, e.Bound)
	assert.Equal(t, uint64(1), tt.Stats.Updates)
}

func TestPutCollisionFillsBucket(t *testing.T) {
	tt := NewTtTable(1)
	// keys that are multiples of numBuckets all index the same bucket
	stride := tt.numBuckets
	assert.Equal(t, tt.index(stride), tt.index(uint64(BucketSize+1)*stride))

	for i := 0; i < BucketSize; i++ {
		m := CreateMove(Square(i), Square(i+1), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
		tt.Put(uint64(i+1)*stride, m, 1, Value(i), Exact, Value(i))
	}
	assert.Equal(t, uint64(BucketSize), tt.numEntries)

	// one more key hashes into the same bucket and must evict
	// a slot rather than grow the bucket.
	m := CreateMove(Square(10), Square(11), MakePiece(White, Queen), PieceNone, Normal, PtNone)
	tt.Put(uint64(BucketSize+1)*stride, m, 1, Value(99), Exact, Value(99))
	assert.Equal(t, uint64(BucketSize), tt.numEntries)
	assert.True(t, tt.Stats.Collisions > 0)
}

func TestNewGenerationAgesOutReplacementPriority(t *testing.T) {
	tt := NewTtTable(1)
	// keys that are multiples of numBuckets all index the same bucket
	stride := tt.numBuckets
	key := 7 * stride
	m := CreateMove(Square(0), Square(1), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
	tt.Put(key, m, 10, Value(5), Exact, Value(5))

	tt.NewGeneration()

	// fill the rest of the bucket with fresh-generation entries; the
	// stale entry should be the first evicted despite its high depth.
	for i := 0; i < BucketSize; i++ {
		other := uint64(1000+i) * stride
		om := CreateMove(Square(i+2), Square(i+3), MakePiece(White, Knight), PieceNone, Normal, PtNone)
		tt.Put(other, om, 1, Value(1), Exact, Value(1))
	}

	_, ok := tt.Get(key)
	assert.False(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(4)
	tt.Put(1, MoveNone, 1, Value(1), Exact, Value(1))
	tt.Clear()
	assert.Equal(t, uint64(0), tt.numEntries)
	_, ok := tt.Get(1)
	assert.False(t, ok)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	tt := NewTtTable(1)
	total := tt.numBuckets * BucketSize
	for i := uint64(0); i < total/2; i++ {
		m := CreateMove(Square(i%64), Square((i+1)%64), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
		tt.Put(i+1, m, 1, Value(1), Exact, Value(1))
	}
	full := tt.Hashfull()
	assert.True(t, full > 0 && full <= 1000)
}

func TestScoreIsClippedToCheckMateRange(t *testing.T) {
	tt := NewTtTable(4)
	key := uint64(99)
	m := CreateMove(Square(0), Square(1), MakePiece(White, Queen), PieceNone, Normal, PtNone)
	tt.Put(key, m, 1, ValueInf, Exact, ValueZero)
	e, ok := tt.Get(key)
	assert.True(t, ok)
	assert.Equal(t, ValueCheckMate, e.Value)
}

func TestRandomPutGetManyKeys(t *testing.T) {
	tt := NewTtTable(8)
	r := rand.New(rand.NewSource(1))
	stored := map[uint64]Move{}
	for i := 0; i < 2000; i++ {
		key := r.Uint64()
		m := CreateMove(Square(i%64), Square((i+1)%64), MakePiece(White, Pawn), PieceNone, Normal, PtNone)
		tt.Put(key, m, uint8(i%16), Value(i%1000), Exact, Value(i%1000))
		stored[key] = m
	}
	hit := 0
	for key := range stored {
		if _, ok := tt.Get(key); ok {
			hit++
		}
	}
	assert.True(t, hit > 0)
}
