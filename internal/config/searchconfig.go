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

package config

// searchConfiguration holds the on/off switches and some magnitudes for
// the search heuristics. Defaults are set in init and are overwritten by
// config.toml when present. Razoring margins and the history bound are
// constants of the search and history packages, not fields here, and
// NullMoveMargin is not read by the search, which uses its own fixed
// null-move margin of 200.
type searchConfiguration struct {
	// UCI-exposed tunables.
	MultiPV    int
	TTSize     int // megabytes
	TimeBuffer int // milliseconds, subtracted from the clock before allocation

	// Transposition table.
	UseTT bool

	// Null-move pruning.
	UseNullMove    bool
	NullMoveMargin int

	// Razoring.
	UseRazoring bool

	// Internal iterative deepening.
	UseIID bool

	// Late move reductions.
	UseLmr       bool
	LmrMinDepth  float64
	LmrMinMoveNo int

	// Futility pruning.
	UseFutility      bool
	FutilityMaxDepth float64

	// Aspiration windows.
	UseAspiration bool

	// Counter-move heuristic: a quiet move that refuted the opponent's
	// last move is preferred the next time that last move recurs.
	UseCounterMoves bool
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.MultiPV = 1
	Settings.Search.TTSize = 64
	Settings.Search.TimeBuffer = 100

	Settings.Search.UseTT = true

	Settings.Search.UseNullMove = true
	Settings.Search.NullMoveMargin = 200

	Settings.Search.UseRazoring = true

	Settings.Search.UseIID = true

	Settings.Search.UseLmr = true
	Settings.Search.LmrMinDepth = 0
	Settings.Search.LmrMinMoveNo = 1

	Settings.Search.UseFutility = true
	Settings.Search.FutilityMaxDepth = 5

	Settings.Search.UseAspiration = true

	Settings.Search.UseCounterMoves = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
	if Settings.Search.MultiPV <= 0 {
		Settings.Search.MultiPV = 1
	}
	if Settings.Search.TTSize <= 0 {
		Settings.Search.TTSize = 64
	}
}
