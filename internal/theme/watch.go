package theme

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Resolver re-reads the preference after the watched file changes.
type Resolver func() (Mode, error)

// Watch subscribes to changes of the file at path. After every write, create
// or rename of that file the preference is re-read and fn receives the
// resulting palette. Errors from resolve or the watcher go to onErr, which
// may be nil.
//
// The returned stop removes the subscription and waits for the watcher
// goroutine to exit. It is safe to call more than once.
func Watch(path string, resolve Resolver, fn func(Palette), onErr func(error)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("theme watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("theme watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if onErr == nil {
		onErr = func(error) {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				mode, err := resolve()
				if err != nil {
					onErr(err)
					continue
				}
				fn(Detect(mode))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				onErr(err)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			_ = w.Close()
			wg.Wait()
		})
	}, nil
}
