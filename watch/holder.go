// Package watch keeps a resolved site configuration current while its source
// file changes.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ZacxDev/go-docs-site/config"
	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultDebounce = 200 * time.Millisecond

// Holder owns the current Site. A failed reload leaves the previous Site in
// place.
type Holder struct {
	path     string
	cache    *config.Cache
	debounce time.Duration
	logger   zerolog.Logger

	mu      sync.RWMutex
	current config.Site
	loaded  bool

	watcher *fsnotify.Watcher
	done    chan struct{}

	// reloadMu serializes debounced reloads with Stop.
	reloadMu sync.Mutex
	stopped  bool

	listenMu  sync.RWMutex
	listeners []chan<- config.Site
}

type Option func(*Holder)

// WithDebounce sets how long the holder waits after the last file event
// before reloading.
func WithDebounce(d time.Duration) Option {
	return func(h *Holder) { h.debounce = d }
}

func NewHolder(path string, cache *config.Cache, opts ...Option) *Holder {
	if cache == nil {
		cache = config.NewCache()
	}
	h := &Holder{
		path:     path,
		cache:    cache,
		debounce: defaultDebounce,
		logger:   logging.WithComponent("watch"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Current returns the last successfully composed Site and whether one has
// been loaded yet.
func (h *Holder) Current() (config.Site, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.loaded
}

// Reload loads and composes the config file and swaps it in.
func (h *Holder) Reload(_ context.Context) error {
	raw, err := config.Load(h.path)
	if err != nil {
		h.logger.Error().Err(err).Str(logging.FieldEvent, "config.load_failed").Str(logging.FieldPath, h.path).Msg("failed to load site config")
		return err
	}

	site, err := h.cache.Compose(raw)
	if err != nil {
		h.logger.Error().Err(err).Str(logging.FieldEvent, "config.resolve_failed").Str(logging.FieldPath, h.path).Msg("site config rejected, keeping previous")
		return errors.Wrapf(err, "resolve %s", h.path)
	}

	h.mu.Lock()
	h.current = site
	h.loaded = true
	h.mu.Unlock()

	h.notify(site)

	h.logger.Info().
		Str(logging.FieldEvent, "config.reloaded").
		Str(logging.FieldPath, h.path).
		Int(logging.FieldPages, len(site.Navigation)).
		Msg("site config resolved")
	return nil
}

// Subscribe registers ch to receive every Site swapped in. Sends never
// block; a full channel misses the update.
func (h *Holder) Subscribe(ch chan<- config.Site) {
	h.listenMu.Lock()
	defer h.listenMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notify(site config.Site) {
	h.listenMu.RLock()
	defer h.listenMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- site:
		default:
			h.logger.Warn().Str(logging.FieldEvent, "config.listener_skip").Msg("listener channel full")
		}
	}
}

// Start watches the config file until ctx is done or Stop is called. It does
// not perform an initial Reload.
//
// The parent directory is watched rather than the file, so saves that
// replace the file by renaming a temporary file over it keep being seen.
func (h *Holder) Start(ctx context.Context) error {
	if _, err := os.Stat(h.path); err != nil {
		return errors.Wrapf(err, "watch %s", h.path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		_ = watcher.Close()
		return errors.Wrapf(err, "watch %s", h.path)
	}

	h.reloadMu.Lock()
	h.stopped = false
	h.reloadMu.Unlock()

	h.watcher = watcher
	h.done = make(chan struct{})
	go h.loop(ctx)

	h.logger.Info().Str(logging.FieldEvent, "config.watch_started").Str(logging.FieldPath, h.path).Msg("watching site config")
	return nil
}

// Stop closes the watcher and waits for the watch loop and any reload it
// triggered to finish. No reload runs after Stop returns.
func (h *Holder) Stop() {
	if h.watcher == nil {
		return
	}
	_ = h.watcher.Close()
	<-h.done

	h.reloadMu.Lock()
	h.stopped = true
	h.reloadMu.Unlock()
}

func (h *Holder) debouncedReload(ctx context.Context) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	if h.stopped || ctx.Err() != nil {
		return
	}
	// Errors are logged by Reload.
	_ = h.Reload(ctx)
}

func (h *Holder) loop(ctx context.Context) {
	defer close(h.done)

	target := filepath.Clean(h.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = h.watcher.Close()
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().Str(logging.FieldEvent, "config.file_changed").Str("op", event.Op.String()).Msg("site config changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(h.debounce, func() { h.debouncedReload(ctx) })

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Str(logging.FieldEvent, "config.watch_error").Msg("watcher error")
		}
	}
}
