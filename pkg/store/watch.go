package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes what changed in the store.
type EventType int

const (
	// EventGroupChanged means the record of one group was written or erased.
	EventGroupChanged EventType = iota

	// EventCatalogInvalidated means the whole catalog must be re-read.
	EventCatalogInvalidated
)

// Event is emitted by Persistence.Watch.
type Event struct {
	Type  EventType
	Group string
}

// settleDelay is how long the watcher waits for a burst of writes, such as a
// catalog import rewriting every group, to finish.
const settleDelay = 100 * time.Millisecond

// Watch reports store changes until ctx is done. The channel is closed when
// the watch ends. Events are dropped, not queued, while the reader is behind.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	dirs, err := storeDirs(p.basePath)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)
	go p.watchLoop(ctx, w, dirs, events)
	return events, nil
}

func (p *persistence) watchLoop(ctx context.Context, w *fsnotify.Watcher, dirs []string, events chan<- Event) {
	defer close(events)
	defer func() {
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
		}
	}()

	watched := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		watched[dir] = true
	}

	batch := newGroupBatch(settleDelay, func(ev Event) {
		select {
		case events <- ev:
		default:
		}
	})
	defer batch.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			batch.Reload()
		case evt, ok := <-w.Events:
			if !ok {
				return
			}
			// The groups directory only appears with the first write.
			if evt.Op&fsnotify.Create != 0 && isDir(evt.Name) {
				dir := filepath.Clean(evt.Name)
				if !watched[dir] {
					if err := w.Add(dir); err != nil {
						fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", dir, err)
					} else {
						watched[dir] = true
					}
				}
				batch.Reload()
				continue
			}
			if group := p.groupForPath(evt.Name); group != "" {
				batch.Group(group)
			} else {
				batch.Reload()
			}
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// storeDirs returns base and every directory below it.
func storeDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// groupForPath maps <base>/groups/<encoded name> back to the group name.
func (p *persistence) groupForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) != 2 || parts[0] != groupsDir {
		return ""
	}
	return decodeName(parts[1])
}

// groupBatch collects changes until the store has been quiet for delay, then
// sends either one EventGroupChanged per touched group or, when any change
// could not be tied to a group, a single EventCatalogInvalidated.
type groupBatch struct {
	delay time.Duration
	send  func(Event)

	mu     sync.Mutex
	timer  *time.Timer
	groups map[string]bool
	reload bool
}

func newGroupBatch(delay time.Duration, send func(Event)) *groupBatch {
	return &groupBatch{delay: delay, send: send, groups: make(map[string]bool)}
}

// Group records a change to one group.
func (b *groupBatch) Group(name string) {
	b.mu.Lock()
	b.groups[name] = true
	b.arm()
	b.mu.Unlock()
}

// Reload records a change that needs the whole catalog re-read.
func (b *groupBatch) Reload() {
	b.mu.Lock()
	b.reload = true
	b.arm()
	b.mu.Unlock()
}

// arm must be called with b.mu held.
func (b *groupBatch) arm() {
	if b.timer == nil {
		b.timer = time.AfterFunc(b.delay, b.flush)
	}
}

func (b *groupBatch) flush() {
	b.mu.Lock()
	groups, reload := b.groups, b.reload
	b.groups = make(map[string]bool)
	b.reload = false
	b.timer = nil
	b.mu.Unlock()

	if reload {
		b.send(Event{Type: EventCatalogInvalidated})
		return
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.send(Event{Type: EventGroupChanged, Group: name})
	}
}

// Stop cancels a pending flush.
func (b *groupBatch) Stop() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()
}
