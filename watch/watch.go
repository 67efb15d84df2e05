// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reloads a config file whenever it changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// DefaultDelay is the default time to wait for a burst of write
// events to settle before reloading.
const DefaultDelay = 100 * time.Millisecond

// Watcher watches a single config file. Editors commonly replace a
// file by renaming over it, so the containing directory is watched
// and events are filtered by name.
type Watcher struct {

	// File is the absolute path of the watched config file.
	File string

	// Delay is the debounce delay between the last event and the reload.
	Delay time.Duration

	// OnLoad is called with each successfully loaded config.
	OnLoad func(cfg *config.Config)

	// OnError is called when the config fails to load or validate.
	// The previous config stays in effect. If nil, errors are logged.
	OnError func(err error)

	fsw *fsnotify.Watcher
}

// New returns a new watcher for the given file that calls onLoad
// with every valid version of it.
func New(file string, onLoad func(cfg *config.Config)) (*Watcher, error) {
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{File: path, Delay: DefaultDelay, OnLoad: onLoad, fsw: fsw}, nil
}

// Load loads the file once and reports the result to the callbacks.
func (w *Watcher) Load() {
	cfg, err := config.Open(w.File)
	if err != nil {
		if w.OnError != nil {
			w.OnError(err)
		} else {
			errors.Log(err)
		}
		return
	}
	slog.Info("loaded config", "file", w.File)
	if w.OnLoad != nil {
		w.OnLoad(cfg)
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.File {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Run loads the file, then reloads it on every change until ctx is
// done. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	w.Load()
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("config changed", "event", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.Delay)
			} else {
				timer.Reset(w.Delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.Load()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
