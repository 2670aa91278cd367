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

// Package transpositiontable implements a bucketed transposition table
// (cache) for a chess engine search. The TtTable type is not thread
// safe and needs to be synchronized externally if used from multiple
// goroutines; this is especially relevant for Resize and Clear, which
// must not be called while a search is running.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/nullx002/daydreamer/internal/logging"
	. "github.com/nullx002/daydreamer/internal/types"
	"github.com/nullx002/daydreamer/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest Hash size the table accepts.
	MaxSizeInMB = 65_536

	// BucketSize is the number of entries sharing one index. The low
	// bits of the key select the bucket; within a bucket every slot
	// is compared by full key on lookup.
	BucketSize = 3
)

type bucket [BucketSize]entry

// TtTable is the transposition table.
type TtTable struct {
	log        *logging.Logger
	data       []bucket
	sizeInByte uint64
	bucketMask uint64
	numBuckets uint64
	generation uint8
	numEntries uint64
	Stats      TtStats
}

// TtStats holds statistics on table usage for diagnostics only; none
// of it participates in search correctness.
type TtStats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTtTable creates a table sized to at most sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetSearchLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table for the given megabyte budget. All
// entries are cleared. Must not be called concurrently with Get/Put.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	bucketBytes := uint64(unsafe.Sizeof(bucket{}))
	budget := uint64(sizeInMByte) * MB

	tt.numBuckets = 0
	if budget >= bucketBytes {
		tt.numBuckets = 1 << uint64(math.Floor(math.Log2(float64(budget/bucketBytes))))
	}
	tt.bucketMask = 0
	if tt.numBuckets > 0 {
		tt.bucketMask = tt.numBuckets - 1
	}
	tt.sizeInByte = tt.numBuckets * bucketBytes
	tt.data = make([]bucket, tt.numBuckets)
	tt.numEntries = 0
	tt.generation = 0

	tt.log.Info(out.Sprintf("TT size %d MByte, %d buckets of %d entries (%d Bytes/entry) (requested %d MByte)",
		tt.sizeInByte/MB, tt.numBuckets, BucketSize, unsafe.Sizeof(entry{}), sizeInMByte))
}

// NewGeneration bumps the replacement-policy generation. Called once
// at the start of every go; entries from a stale generation become
// preferred eviction targets without being actively scanned.
func (tt *TtTable) NewGeneration() {
	tt.generation++
}

func (tt *TtTable) index(key uint64) uint64 {
	return key & tt.bucketMask
}

// Get returns the matching entry for key, or ok=false if no bucket
// slot carries that exact key.
func (tt *TtTable) Get(key uint64) (Entry, bool) {
	if tt.numBuckets == 0 {
		return Entry{}, false
	}
	b := &tt.data[tt.index(key)]
	for i := range b {
		if !b[i].isEmpty() && b[i].key == key {
			return b[i].view(), true
		}
	}
	return Entry{}, false
}

// Probe is Get plus statistics bookkeeping, used by the search's hot
// path TT lookup.
func (tt *TtTable) Probe(key uint64) (Entry, bool) {
	tt.Stats.Probes++
	e, ok := tt.Get(key)
	if ok {
		tt.Stats.Hits++
	} else {
		tt.Stats.Misses++
	}
	return e, ok
}

// Put writes (key, move, depth, score, bound) into key's bucket,
// choosing the replacement slot by: (1) an empty slot, (2) a slot
// whose generation differs from the current one, (3) the slot with
// the shallowest recorded depth. An existing entry for key is
// overwritten in place. score is clipped to the int16 storage range.
func (tt *TtTable) Put(key uint64, move Move, depth uint8, score Value, bound Bound, eval Value) {
	if tt.numBuckets == 0 {
		return
	}
	tt.Stats.Puts++
	score = score.Clip()
	b := &tt.data[tt.index(key)]

	for i := range b {
		if b[i].key == key && !b[i].isEmpty() {
			tt.Stats.Updates++
			b[i].move = uint32(move)
			b[i].value = int16(score)
			b[i].eval = int16(eval)
			b[i].meta = packMeta(depth, bound, tt.generation)
			return
		}
	}

	victim := -1
	for i := range b {
		if b[i].isEmpty() {
			victim = i
			break
		}
	}
	if victim < 0 {
		tt.Stats.Collisions++
		for i := range b {
			if b[i].Gen() != tt.generation&0x3F {
				victim = i
				break
			}
		}
	}
	if victim < 0 {
		victim = 0
		shallowest := b[0].Depth()
		for i := 1; i < len(b); i++ {
			if b[i].Depth() < shallowest {
				shallowest = b[i].Depth()
				victim = i
			}
		}
	}

	if b[victim].isEmpty() {
		tt.numEntries++
	} else {
		tt.Stats.Overwrites++
	}
	b[victim] = entry{
		key:   key,
		move:  uint32(move),
		value: int16(score),
		eval:  int16(eval),
		meta:  packMeta(depth, bound, tt.generation),
	}
}

// Clear empties every bucket slot.
func (tt *TtTable) Clear() {
	tt.data = make([]bucket, tt.numBuckets)
	tt.numEntries = 0
	tt.generation = 0
	tt.Stats = TtStats{}
}

// Hashfull reports table occupancy in permille, as required by UCI.
func (tt *TtTable) Hashfull() int {
	total := tt.numBuckets * BucketSize
	if total == 0 {
		return 0
	}
	return int((1000 * tt.numEntries) / total)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 { return tt.numEntries }

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB buckets %d entries %d (%d permille) puts %d updates %d "+
		"collisions %d overwrites %d probes %d hits %d misses %d",
		tt.sizeInByte/MB, tt.numBuckets, tt.numEntries, tt.Hashfull(),
		tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions, tt.Stats.Overwrites,
		tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}

// AgeEntries is retained for parity with the teacher's parallel aging
// sweep, but generation-based replacement (NewGeneration) makes an
// active per-entry aging pass unnecessary; this walks the table only
// to refresh the diagnostic log, in goroutines the way the teacher's
// version does.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numEntries == 0 {
		return
	}
	workers := uint64(32)
	if workers > tt.numBuckets {
		workers = tt.numBuckets
	}
	if workers == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(int(workers))
	chunk := tt.numBuckets / workers
	for w := uint64(0); w < workers; w++ {
		go func(w uint64) {
			defer wg.Done()
			start := w * chunk
			end := start + chunk
			if w == workers-1 {
				end = tt.numBuckets
			}
			for i := start; i < end; i++ {
				_ = tt.data[i]
			}
		}(w)
	}
	wg.Wait()
	tt.log.Debug(util.MemStat() + out.Sprintf(" aged scan in %d ms", time.Since(startTime).Milliseconds()))
}
