package logo

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"

	"github.com/ironsheep/polaroid-compose/internal/imaging"
	"github.com/ironsheep/polaroid-compose/internal/log"
)

// Resolver turns Items into rasters. Logo files are looked up in Dir, either
// through the explicit List or, with AutoScan, through the sorted *.png files
// of the directory. Decoded logos and parsed fonts are cached, so one
// Resolver should serve a whole batch. It is safe for concurrent use.
//
// Resolution never fails hard: a missing file, an ambiguous name or a bad
// font is logged as a warning and the item is treated as absent.
type Resolver struct {
	Dir      string
	List     []string
	AutoScan bool

	cache *imaging.ImageCache

	mu    sync.Mutex
	fonts map[string]*opentype.Font
}

// NewResolver creates a Resolver with empty caches.
func NewResolver(dir string, list []string, autoScan bool) *Resolver {
	return &Resolver{
		Dir:      dir,
		List:     list,
		AutoScan: autoScan,
		cache:    imaging.NewImageCache(),
		fonts:    make(map[string]*opentype.Font),
	}
}

// NormalizeName reduces a file name to its lowercase stem without
// underscores, the key used for fuzzy lookups.
func NormalizeName(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.ReplaceAll(strings.ToLower(stem), "_", "")
}

// Available lists the *.png files in Dir, sorted by name.
func (r *Resolver) Available() []string {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".png" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Candidates is the list that logo IDs index into.
func (r *Resolver) Candidates() []string {
	if r.AutoScan {
		return r.Available()
	}
	return append([]string(nil), r.List...)
}

// ResolveID maps a one-based logo ID to a file path. ID 1 means no logo.
func (r *Resolver) ResolveID(id int) (string, bool) {
	if id == 1 {
		return "", false
	}
	candidates := r.Candidates()
	idx := id - 2
	if idx < 0 || idx >= len(candidates) {
		log.Warnf("logo id %d out of range, available: %s", id, listOrEmpty(candidates))
		return "", false
	}
	return r.ResolveName(candidates[idx])
}

// ResolveName finds a logo file by name: exactly first, then by normalized
// key among the directory's PNG files. A fuzzy lookup only succeeds when
// exactly one file matches.
func (r *Resolver) ResolveName(name string) (string, bool) {
	exact := filepath.Join(r.Dir, name)
	if fi, err := os.Stat(exact); err == nil && fi.Mode().IsRegular() {
		log.Debugf("using logo %s", exact)
		return exact, true
	}

	available := r.Available()
	key := NormalizeName(name)
	var matched []string
	for _, n := range available {
		if NormalizeName(n) == key {
			matched = append(matched, n)
		}
	}

	switch len(matched) {
	case 1:
		path := filepath.Join(r.Dir, matched[0])
		log.Warnf("logo %q not found, matched %q instead", name, matched[0])
		return path, true
	case 0:
		log.Warnf("logo %q not found and nothing similar in %s, available: %s", name, r.Dir, listOrEmpty(available))
	default:
		log.Warnf("logo %q is ambiguous, candidates: %s; skipped", name, strings.Join(matched, ", "))
	}
	return "", false
}

// Path resolves an image item to a file path.
func (r *Resolver) Path(it Item) (string, bool) {
	if it.Name != "" {
		return r.ResolveName(it.Name)
	}
	return r.ResolveID(it.ID)
}

// Render returns the item's raster scaled to exactly height pixels, or nil
// when the item is absent or could not be produced.
func (r *Resolver) Render(it Item, height int) *image.NRGBA {
	if it.IsZero() {
		return nil
	}
	if err := it.Validate(); err != nil {
		log.Warnf("%v; skipped", err)
		return nil
	}

	switch it.EffectiveKind() {
	case KindText:
		return r.renderText(it, height)
	default:
		return r.renderImage(it, height)
	}
}

func (r *Resolver) renderImage(it Item, height int) *image.NRGBA {
	path, ok := r.Path(it)
	if !ok {
		return nil
	}
	img, err := r.cache.Load(path)
	if err != nil {
		log.Warnf("%s unusable: %v", it, err)
		return nil
	}
	return imaging.ResizeToHeight(img, height)
}

func (r *Resolver) renderText(it Item, height int) *image.NRGBA {
	c, err := imaging.ParseColor(it.Color)
	if err != nil {
		log.Warnf("%s: %v; using white", it, err)
		c, _ = imaging.ParseColor("")
	}
	img, err := imaging.RenderText(it.Text, height, r.font(it.FontPath), c)
	if err != nil {
		log.Warnf("%s not rendered: %v", it, err)
		return nil
	}
	return img
}

// font returns the parsed font at path, or the embedded default when path is
// empty or unusable.
func (r *Resolver) font(path string) *opentype.Font {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.fonts[path]; ok {
		return f
	}
	var f *opentype.Font
	if path != "" {
		var err error
		f, err = imaging.LoadFont(path)
		if err != nil {
			log.Warnf("font unavailable, using default: %v", err)
		}
	}
	if f == nil {
		f = imaging.DefaultFont()
	}
	r.fonts[path] = f
	return f
}

// Forget drops the cached raster of a logo file so the next render decodes
// it again. Only the base name of path is used, matched inside Dir.
func (r *Resolver) Forget(path string) {
	r.cache.Evict(filepath.Join(r.Dir, filepath.Base(path)))
}

// CachedLogos reports how many decoded logo files are cached.
func (r *Resolver) CachedLogos() int {
	return r.cache.Len()
}

func listOrEmpty(names []string) string {
	if len(names) == 0 {
		return "(empty)"
	}
	return strings.Join(names, ", ")
}
