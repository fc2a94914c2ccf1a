package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ironsheep/polaroid-compose/internal/log"
)

// DefaultDebounce is how long the inbox must stay quiet before a pass runs.
const DefaultDebounce = 750 * time.Millisecond

// Watch runs a pass immediately and then again whenever supported files are
// created in or moved into the inbox, until ctx is cancelled. Bursts of
// events within debounce of each other trigger a single pass.
//
// When branding is enabled the logo directory is watched too. An edited logo
// is dropped from the cache and picked up by the next pass.
func (r *Runner) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if err := r.EnsureDirs(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(r.cfg.InboxDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.cfg.InboxDir, err)
	}
	if dir := r.logoDir(); dir != "" {
		if err := watcher.Add(dir); err != nil {
			log.Warnf("logo directory not watched: %v", err)
		}
	}

	if _, err := r.RunOnce(ctx); err != nil {
		log.Errorf("initial pass failed: %v", err)
	}
	log.Infof("watching %s", r.cfg.InboxDir)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infof("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if r.handleEvent(event) {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: %v", err)

		case <-timer.C:
			if _, err := r.RunOnce(ctx); err != nil {
				log.Errorf("pass failed: %v", err)
			}
		}
	}
}

// handleEvent reacts to one watcher event and reports whether a pass should
// be scheduled.
func (r *Runner) handleEvent(event fsnotify.Event) bool {
	if dir := r.logoDir(); dir != "" && filepath.Clean(filepath.Dir(event.Name)) == dir {
		if strings.EqualFold(filepath.Ext(event.Name), ".png") {
			r.resolver.Forget(event.Name)
			log.Debugf("logo %s changed (%s), %d logos cached", filepath.Base(event.Name), event.Op, r.resolver.CachedLogos())
		}
		return false
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	if !r.Supported(event.Name) {
		return false
	}
	log.Debugf("inbox event %s", event)
	return true
}

// logoDir is the cleaned logo directory to watch, or "" when branding is off,
// the directory is missing or it is the inbox itself.
func (r *Runner) logoDir() string {
	lc := r.cfg.Logo
	if !lc.Enabled || lc.Dir == "" {
		return ""
	}
	dir := filepath.Clean(lc.Dir)
	if dir == filepath.Clean(r.cfg.InboxDir) {
		return ""
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return ""
	}
	return dir
}
