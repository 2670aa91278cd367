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

// Package config holds globally available configuration variables which
// are either set by defaults or read from a TOML config file. It carries
// switches and magnitudes for the search heuristics: null-move on/off,
// razoring on/off, IID on/off, LMR depth floor and move-count floor,
// futility on/off and its depth ceiling, aspiration on/off, counter moves
// on/off, TT megabyte budget, time buffer and log level.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nullx002/daydreamer/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the
	// working directory or the executable's directory).
	ConfFile = "./config.toml"

	// LogLevel is the general log level, set from Settings.Log.LogLvl.
	LogLevel = LogLevels["debug"]

	// SearchLogLevel is the search trace log level.
	SearchLogLevel = LogLevels["info"]

	// TestLogLevel is the log level used by _test.go files.
	TestLogLevel = LogLevels["debug"]

	// Settings is the global configuration tree, read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// Setup reads the configuration file and applies defaults for anything
// the file does not set. Idempotent: a second call is a no-op.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	initialized = true
}

// String dumps the active configuration via reflection, the way the
// teacher's conf.String() does for its own settings tree.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	s := reflect.ValueOf(&settings.Search).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
