// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange each time the given file is written or created,
// once no further changes have happened for the debounce duration.
// The directory is watched so that files replaced by editors are seen.
// It returns when the context is done.
func Watch(ctx context.Context, fname string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(fname)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("primview: file changed", "file", event.Name, "op", event.Op)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("primview: watcher error", "err", err)
		}
	}
}
