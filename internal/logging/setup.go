// This file is part of AdventOfCode2019 - https://github.com/alanbriolat/AdventOfCode2019
//
// Copyright 2019 The AdventOfCode2019 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging sets up the process wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type LogLevel string

const (
	LogLevelNone  LogLevel = "none"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

var (
	logger  *slog.Logger
	current = LogLevelNone
)

// Setup installs a text logger writing to stderr at the given level. Level
// none discards everything.
func Setup(optslevel LogLevel) {
	SetupWriter(optslevel, os.Stderr)
}

// SetupWriter is like Setup but logs to w.
func SetupWriter(optslevel LogLevel, w io.Writer) {
	sink := w
	if optslevel == LogLevelNone {
		sink = io.Discard
	}

	level := slog.LevelDebug
	if optslevel == LogLevelInfo {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	current = optslevel
}

// Logger returns the configured logger, or nil if Setup has not been called.
func Logger() *slog.Logger {
	return logger
}

// Enabled reports whether messages at level would be logged.
func Enabled(level LogLevel) bool {
	switch level {
	case LogLevelInfo:
		return current == LogLevelInfo || current == LogLevelDebug
	case LogLevelDebug:
		return current == LogLevelDebug
	}
	return false
}
