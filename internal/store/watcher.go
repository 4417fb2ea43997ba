package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce absorbs the burst of filesystem events a single save can emit.
const debounce = 100 * time.Millisecond

// Watch observes the slot file for writes made by other surfaces and
// notifies subscribers when one lands. The surface's own saves are
// recognized by content checksum and skipped: the writer already re-renders
// locally, so only the *other* open surfaces need the signal.
//
// Watch returns after starting a goroutine that runs until ctx is
// cancelled. The slot file's directory must exist.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		watcher.Close()
		return fmt.Errorf("create data directory: %w", err)
	}
	// Watch the directory, not the file: saves replace the file by rename,
	// which would silently detach a watch on the old inode.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.log.WithField("op", event.Op.String()).Debug("slot file event")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			s.handleChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Error("watcher error")

		case <-ctx.Done():
			return
		}
	}
}

// handleChange decides whether a filesystem event represents someone else's
// save. Content that matches this surface's last write, or content already
// delivered, is ignored.
func (s *Store) handleChange() {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.mu.Unlock()
		return
	}
	sum := sha256.Sum256(data)
	if sum == s.lastWrite || sum == s.lastSeen {
		s.mu.Unlock()
		return
	}
	s.lastSeen = sum
	s.loadLocked()
	s.mu.Unlock()

	s.log.Debug("external change, notifying subscribers")
	s.broadcast()
}
