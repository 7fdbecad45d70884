// Package filewatch ties context lifetimes to files.
package filewatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// ErrModified is the cause of contexts canceled by UntilModified.
var ErrModified = errors.New("file is modified")

const modifying = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// UntilModified returns a context which is canceled when any of paths is
// written, created, removed or renamed. Changes of mode only are ignored.
//
// context.Cause of the canceled context wraps ErrModified,
// or carries the error reported by the watcher.
//
// When it fails to watch paths, it returns the error and nothing else.
func UntilModified(ctx context.Context, paths ...string) (context.Context, context.CancelFunc, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			w.Close()
			return nil, nil, fmt.Errorf("watching %s: %w", p, err)
		}
	}

	cctx, cancel := context.WithCancelCause(ctx)
	go func() {
		defer w.Close()
		for {
			select {
			case <-cctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&modifying == 0 {
					continue
				}
				cancel(fmt.Errorf("%w: %s (%s)", ErrModified, ev.Name, ev.Op))
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				cancel(err)
				return
			}
		}
	}()

	return cctx, func() { cancel(nil) }, nil
}
