// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// Println prints the given arguments with [fmt.Println] if the
// given level is at or above [UserLevel].
func Println(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Println(a...)
}

// PrintlnDebug is equivalent to [Println] with [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	Println(slog.LevelDebug, a...)
}

// PrintlnInfo is equivalent to [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	Println(slog.LevelInfo, a...)
}

// PrintlnWarn is equivalent to [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	Println(slog.LevelWarn, a...)
}
