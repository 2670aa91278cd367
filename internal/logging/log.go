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

// Package logging is a helper for "github.com/op/go-logging" that reduces
// every call site to a one-line GetXxxLog(). It is purely diagnostic: the
// UCI info/bestmove protocol lines never go through it, they are plain
// fmt.Println/Printf to stdout.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/nullx002/daydreamer/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	engineLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	engineLog = logging.MustGetLogger("engine")
	testLog = logging.MustGetLogger("test")
}

func withLevel(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}

// GetLog returns the general-purpose logger, leveled from config.LogLevel.
func GetLog() *logging.Logger {
	return withLevel(standardLog, config.LogLevel)
}

// GetSearchLog returns the search-tracing logger, leveled from
// config.SearchLogLevel. This is the hot-path logger; it is normally set
// well above Debug so its calls are cheap no-ops.
func GetSearchLog() *logging.Logger {
	return withLevel(searchLog, config.SearchLogLevel)
}

// GetEngineLog returns the logger used by the Engine facade for
// lifecycle events (start/stop/ponderhit/resize).
func GetEngineLog() *logging.Logger {
	return withLevel(engineLog, config.LogLevel)
}

// GetTestLog returns a logger leveled from config.TestLogLevel, for use
// from _test.go files.
func GetTestLog() *logging.Logger {
	return withLevel(testLog, config.TestLogLevel)
}
