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

// daydreamer is a thin demo binary around the search core: it runs one
// fixed-depth or fixed-time search from a FEN and prints the result,
// the way the teacher's own main.go offers an -nps/-perft path into
// the engine without a full UCI session.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nullx002/daydreamer/internal/board"
	"github.com/nullx002/daydreamer/internal/config"
	"github.com/nullx002/daydreamer/internal/logging"
	"github.com/nullx002/daydreamer/internal/search"
	"github.com/nullx002/daydreamer/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", startFen, "FEN of the position to search")
	depth := flag.Int("depth", 6, "search depth limit, 0 for unlimited (use -movetime to bound it)")
	movetimeMs := flag.Int("movetime", 0, "fixed search time in milliseconds, 0 to search by depth only")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile for the search to ./profiles")
	memProfile := flag.Bool("memprofile", false, "write a heap profile for the search to ./profiles")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile && *memProfile {
		fmt.Println("-cpuprofile and -memprofile are mutually exclusive")
		os.Exit(1)
	}
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./profiles")).Stop()
	}
	if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath("./profiles")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	pos, err := board.NewBoard(*fen)
	if err != nil {
		fmt.Println("invalid -fen:", err)
		os.Exit(1)
	}

	e := search.NewEngine()
	c := search.NewConstraints()
	switch {
	case *movetimeMs > 0:
		c.MoveTime = time.Duration(*movetimeMs) * time.Millisecond
		c.UseTimer = true
		c.SoftLimit, c.HardLimit = search.ComputeTimeLimits(c, pos.SideToMove())
	case *depth > 0:
		c.DepthLimit = *depth
	default:
		c.Infinite = true
	}

	e.Go(pos, c)
	e.WaitWhileSearching()

	result := e.LastResult()
	out.Println("bestmove:", result.BestMove.String())
	out.Println("value   :", result.Value.String())
	out.Printf("depth   : %d\n", result.Depth)
	out.Printf("nodes   : %d\n", result.Nodes)
	out.Printf("time    : %s\n", result.Time)
	out.Printf("nps     : %d\n", util.Nps(result.Nodes, result.Time))
}

// startFen is the standard chess starting position.
const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func printVersionInfo() {
	out.Println("daydreamer (search core demo)")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
