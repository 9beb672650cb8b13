// Copyright (c) 2026, Cogent Core. All rights reserved.
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
// with the level colored by termenv when the output supports it.
// Records below [UserLevel] are discarded.
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  string
	groups []string
}

// NewHandler returns a new [Handler] writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to one
// that writes colored output to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrs)
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		writeAttr(&sb, prefix, a)
	}
	nh := *h
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) levelString(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Faint()
	}
	return s.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}
