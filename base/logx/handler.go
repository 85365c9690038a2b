// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level tag colored according to the terminal capabilities
// of the output. Records below [UserLevel] are dropped.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	out   *termenv.Output
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] that writes to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, out: termenv.NewOutput(w)}
}

// SetDefaultLogger sets the default [slog] logger to one
// using a [Handler] that writes to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelColor returns the ANSI color code for the given level.
func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "1" // red
	case level >= slog.LevelWarn:
		return "3" // yellow
	case level >= slog.LevelInfo:
		return "4" // blue
	default:
		return "8" // gray
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	tag := h.out.String(r.Level.String()).Foreground(h.out.Color(levelColor(r.Level)))
	b.WriteString(tag.String())
	b.WriteString(" ")
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}
