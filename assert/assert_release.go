// +build !debug

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

// Package assert lets search invariants (score_is_valid, PV terminator,
// killer uniqueness, non-negative move counters) be stated inline without
// costing anything in a release build. A violation is a programmer defect,
// not a recoverable condition, so it panics rather than returning an error.
package assert

// DEBUG reports whether assertions are compiled in. The release build
// tag compiles Assert to a no-op the compiler eliminates entirely.
const DEBUG = false

// Assert panics with msg (formatted against a) when test is false.
// Call sites should still guard with "if assert.DEBUG { ... }" because Go
// always evaluates a call's arguments even when the call itself is a
// no-op; the DEBUG guard lets the compiler drop the whole statement,
// including any expensive argument expressions, in a release build.
func Assert(test bool, msg string, a ...interface{}) {}

// Panic is the unconditional counterpart of Assert, for states that are
// defects regardless of DEBUG (e.g. a corrupt PV terminator found while
// building the bestmove line). It is also a no-op in a release build.
func Panic(format string, a ...interface{}) {}
