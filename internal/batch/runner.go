package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/polaroid-compose/internal/compose"
	"github.com/ironsheep/polaroid-compose/internal/config"
	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/log"
	"github.com/ironsheep/polaroid-compose/internal/logo"
)

// Options control a Runner beyond the configuration file.
type Options struct {
	// DryRun logs the planned work without writing or moving anything.
	DryRun bool
}

// Summary reports the outcome of one pass.
type Summary struct {
	RunID     string        `json:"run_id"`
	Found     int           `json:"found"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// Runner processes the inbox described by a configuration.
type Runner struct {
	cfg      *config.Config
	params   compose.Params
	resolver *logo.Resolver
	engine   *compose.Engine
	opts     Options
}

// NewRunner validates cfg and prepares the engine. The logo resolver, and so
// its cache, is shared by every pass of the Runner.
func NewRunner(cfg *config.Config, opts Options) (*Runner, error) {
	params, err := cfg.ComposeParams()
	if err != nil {
		return nil, err
	}
	resolver := cfg.Resolver()
	return &Runner{
		cfg:      cfg,
		params:   params,
		resolver: resolver,
		engine:   compose.NewEngine(resolver),
		opts:     opts,
	}, nil
}

// EnsureDirs creates the inbox, output and (when used) done directories.
func (r *Runner) EnsureDirs() error {
	dirs := []string{r.cfg.InboxDir, r.cfg.OutDir}
	if r.cfg.MoveProcessedToDone {
		dirs = append(dirs, r.cfg.DoneDir)
	}
	for _, d := range dirs {
		if r.opts.DryRun {
			log.Infof("[DRY-RUN] ensure directory %s", d)
			continue
		}
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}
	return nil
}

// Scan returns the inbox files with a supported extension, sorted by name.
// A missing inbox yields no files.
func (r *Runner) Scan() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.InboxDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !r.Supported(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(r.cfg.InboxDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Supported reports whether name has one of the configured extensions.
func (r *Runner) Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, s := range r.cfg.SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// OutputPath is where the composition of src is written.
func (r *Runner) OutputPath(src string) string {
	return filepath.Join(r.cfg.OutDir, stem(src)+r.cfg.OutputSuffix+"."+r.cfg.OutputExtension)
}

// GuidesPath is where the layout debug image of src is written.
func (r *Runner) GuidesPath(src string) string {
	return filepath.Join(r.cfg.OutDir, stem(src)+"_guides.png")
}

// DonePath is where src is moved after processing.
func (r *Runner) DonePath(src string) string {
	return filepath.Join(r.cfg.DoneDir, filepath.Base(src))
}

// RunOnce processes every file currently in the inbox. Per-file failures are
// counted in the summary; the returned error is reserved for failures of the
// pass itself, such as an unreadable inbox.
func (r *Runner) RunOnce(ctx context.Context) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: uuid.NewString()}

	if err := r.EnsureDirs(); err != nil {
		return sum, err
	}
	files, err := r.Scan()
	if err != nil {
		return sum, err
	}
	sum.Found = len(files)
	if len(files) == 0 {
		log.Infof("run %s: no images found in %s", sum.RunID, r.cfg.InboxDir)
		return sum, nil
	}

	var processed, failed, skipped atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for _, path := range files {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				skipped.Add(1)
				return nil
			}
			if err := r.ProcessFile(path); err != nil {
				log.Errorf("run %s: %s: %v", sum.RunID, filepath.Base(path), err)
				failed.Add(1)
				return nil
			}
			processed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	sum.Processed = int(processed.Load())
	sum.Failed = int(failed.Load())
	sum.Skipped = int(skipped.Load())
	sum.Duration = time.Since(start)
	log.Infof("run %s: %d found, %d processed, %d failed, %d skipped in %s",
		sum.RunID, sum.Found, sum.Processed, sum.Failed, sum.Skipped, sum.Duration.Round(time.Millisecond))
	return sum, nil
}

// ProcessFile composes one source file and writes its outputs.
func (r *Runner) ProcessFile(path string) error {
	out := r.OutputPath(path)
	log.Infof("processing %s -> %s", filepath.Base(path), out)
	if r.cfg.MoveProcessedToDone {
		log.Infof("  move source -> %s", r.DonePath(path))
	}
	if r.opts.DryRun {
		return nil
	}

	src, err := imaging.Open(path)
	if err != nil {
		return err
	}
	res := r.engine.ComposeResult(src, r.params)
	if log.DebugEnabled() {
		if data, err := json.Marshal(res.Layout); err == nil {
			log.Debugf("%s: layout %s, overlay %v", filepath.Base(path), data, res.Overlay)
		}
	}

	if err := Save(out, res.Image, r.cfg.JPEGQuality); err != nil {
		return err
	}
	if r.cfg.DebugGuides {
		guides := compose.Guides(res.Image, res.Layout, res.Overlay)
		if err := Save(r.GuidesPath(path), guides, r.cfg.JPEGQuality); err != nil {
			log.Warnf("%s: guides not written: %v", filepath.Base(path), err)
		}
	}

	if r.cfg.MoveProcessedToDone {
		if err := moveFile(path, r.DonePath(path)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) workers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.NumCPU()
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// moveFile renames src to dst, copying across filesystems when rename fails.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to move source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to move source: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy source: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to copy source: %w", err)
	}
	in.Close()
	return os.Remove(src)
}
