// Package assets indexes the watched asset tree and turns filesystem
// notifications into debounced, typed asset events for the engine. It is
// the hot-reload front door: classification and bookkeeping happen here,
// interpretation (reload, invalidate, respawn) happens in the engine.
package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/prisma/engine/core"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EventOp describes what happened to an asset file.
type EventOp int

const (
	EventCreated EventOp = iota
	EventModified
	EventRemoved
)

func (op EventOp) String() string {
	switch op {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventRemoved:
		return "removed"
	}
	return "unknown"
}

// Event is one debounced change to a classified asset.
type Event struct {
	// Path is relative to the assets root, slash-separated.
	Path string
	Type ResourceType
	Op   EventOp
}

// AssetInfo is the index entry for one watched file.
type AssetInfo struct {
	Path       string
	Type       ResourceType
	LastLoaded time.Time
}

// AssetManager watches the assets directory, keeps an index of classified
// files and exposes loaders by resource type. Editors save files in bursts,
// so change notifications are debounced per path before they surface on
// Events().
type AssetManager struct {
	root     string
	debounce time.Duration

	mu      sync.RWMutex
	assets  map[string]AssetInfo
	loaders map[ResourceType]Loader

	pendingMu sync.Mutex
	pending   map[string]*time.Timer

	fsnotify *fsnotify.Watcher
	events   chan Event
	done     chan struct{}
	isClosed bool
}

func NewAssetManager(debounce time.Duration) (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &AssetManager{
		debounce: debounce,
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[ResourceType]Loader),
		pending:  make(map[string]*time.Timer),
		fsnotify: fsWatch,
		events:   make(chan Event, 64),
		done:     make(chan struct{}),
	}, nil
}

// RegisterLoader installs the loader used for assets of the given type.
func (am *AssetManager) RegisterLoader(t ResourceType, loader Loader) {
	am.mu.Lock()
	am.loaders[t] = loader
	am.mu.Unlock()
}

// Initialize indexes the asset tree under root, starts watching it
// recursively and launches the event pump. The initial scan populates the
// index without emitting events.
func (am *AssetManager) Initialize(root string) error {
	am.root = root

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return am.fsnotify.Add(path)
		}
		am.indexFile(path)
		return nil
	})
	if err != nil {
		return err
	}

	go am.start()
	return nil
}

// Events returns the debounced asset change stream.
func (am *AssetManager) Events() <-chan Event {
	return am.events
}

// LoadAsset loads the named asset (path relative to the assets root) with
// the loader registered for its type.
func (am *AssetManager) LoadAsset(name string) (*Resource, error) {
	am.mu.RLock()
	info, exists := am.assets[name]
	loader := am.loaders[info.Type]
	am.mu.RUnlock()

	if !exists {
		return nil, &NotIndexedError{Path: name}
	}
	if loader == nil {
		return nil, &NoLoaderError{Path: name, Type: info.Type}
	}

	res, err := loader.Load(filepath.Join(am.root, filepath.FromSlash(name)), name)
	if err != nil {
		return nil, err
	}

	am.mu.Lock()
	info.LastLoaded = time.Now()
	am.assets[name] = info
	am.mu.Unlock()
	return res, nil
}

// List returns the indexed asset paths of the given type, sorted.
func (am *AssetManager) List(t ResourceType) []string {
	am.mu.RLock()
	var out []string
	for path, info := range am.assets {
		if info.Type == t {
			out = append(out, path)
		}
	}
	am.mu.RUnlock()
	slices.Sort(out)
	return out
}

// Shutdown stops the watcher and closes the event stream.
func (am *AssetManager) Shutdown() error {
	am.mu.Lock()
	if am.isClosed {
		am.mu.Unlock()
		return core.ErrAlreadyClosed
	}
	am.isClosed = true
	am.mu.Unlock()

	close(am.done)
	return nil
}

func (am *AssetManager) start() {
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleFsEvent(e)

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err.Error())

		case <-am.done:
			am.fsnotify.Close()
			am.cancelPending()
			return
		}
	}
}

func (am *AssetManager) handleFsEvent(e fsnotify.Event) {
	// New directories join the watch so files created inside them are seen.
	if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
		if e.Op&fsnotify.Create != 0 {
			if err := am.watchTree(e.Name); err != nil {
				core.LogError("asset watcher: watch %s: %s", e.Name, err.Error())
			}
		}
		return
	}

	name, ok := am.relPath(e.Name)
	if !ok {
		return
	}

	if e.Op&fsnotify.Remove != 0 || e.Op&fsnotify.Rename != 0 {
		am.removeAsset(name)
		return
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
		am.scheduleEmit(name)
	}
}

// watchTree adds path and all directories below it to the watch list and
// indexes the files found, emitting created events for them.
func (am *AssetManager) watchTree(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return am.fsnotify.Add(p)
		}
		if name, ok := am.relPath(p); ok {
			am.scheduleEmit(name)
		}
		return nil
	})
}

// scheduleEmit (re)arms the debounce timer for a path. Only the last event
// of a burst surfaces.
func (am *AssetManager) scheduleEmit(name string) {
	if DetermineResourceType(name) == ResourceTypeNone {
		return
	}

	am.pendingMu.Lock()
	defer am.pendingMu.Unlock()

	if t, ok := am.pending[name]; ok {
		t.Stop()
	}
	am.pending[name] = time.AfterFunc(am.debounce, func() {
		am.pendingMu.Lock()
		delete(am.pending, name)
		am.pendingMu.Unlock()
		am.emit(name)
	})
}

func (am *AssetManager) emit(name string) {
	am.mu.Lock()
	_, known := am.assets[name]
	am.mu.Unlock()

	op := EventCreated
	code := core.EVENT_CODE_ASSET_CREATED
	if known {
		op = EventModified
		code = core.EVENT_CODE_ASSET_MODIFIED
	}
	t := am.indexFile(filepath.Join(am.root, filepath.FromSlash(name)))
	if t == ResourceTypeNone {
		return
	}

	core.EventFire(code, am, core.EventContext{Path: name})
	select {
	case am.events <- Event{Path: name, Type: t, Op: op}:
	case <-am.done:
	}
}

// indexFile classifies and records a file, returning its type.
func (am *AssetManager) indexFile(fullPath string) ResourceType {
	name, ok := am.relPath(fullPath)
	if !ok {
		return ResourceTypeNone
	}
	t := DetermineResourceType(name)
	if t == ResourceTypeNone {
		return ResourceTypeNone
	}
	am.mu.Lock()
	am.assets[name] = AssetInfo{Path: name, Type: t}
	am.mu.Unlock()
	return t
}

func (am *AssetManager) removeAsset(name string) {
	am.mu.Lock()
	info, ok := am.assets[name]
	delete(am.assets, name)
	am.mu.Unlock()
	if !ok {
		return
	}

	core.EventFire(core.EVENT_CODE_ASSET_REMOVED, am, core.EventContext{Path: name})
	select {
	case am.events <- Event{Path: name, Type: info.Type, Op: EventRemoved}:
	case <-am.done:
	}
}

func (am *AssetManager) relPath(fullPath string) (string, bool) {
	rel, err := filepath.Rel(am.root, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (am *AssetManager) cancelPending() {
	am.pendingMu.Lock()
	for _, t := range maps.Values(am.pending) {
		t.Stop()
	}
	maps.Clear(am.pending)
	am.pendingMu.Unlock()
}
