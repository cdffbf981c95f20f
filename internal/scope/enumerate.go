package scope

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	gopath "path"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// DefaultBatchSize is the checkpoint interval when the caller does not
// supply one.
const DefaultBatchSize = 100

// Progress controls checkpoint emission during an enumeration. Precount
// feeds checkpoint percentages and takes effect only when Enabled.
type Progress struct {
	Enabled   bool
	BatchSize int
	Precount  bool
}

// Checkpoint is a progress snapshot taken while an enumeration advances.
// Total and Percentage stay nil when no pre-count was taken.
type Checkpoint struct {
	Processed  int      `json:"processed"`
	Total      *int     `json:"total,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	ElapsedMS  float64  `json:"elapsed_ms"`
}

// Enumeration is the terminal value of a listing or discovery walk. Errors
// holds the per-entry failures that were skipped along the way.
type Enumeration struct {
	Entries     []Resource   `json:"entries"`
	TotalItems  int          `json:"total_items"`
	DurationMS  float64      `json:"processing_time_ms"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
}

// Enumerator walks directories within the configured scope. Shallow listings
// read one directory level; discovery walks whole trees, applying the guard
// to every visited path and extension filtering to files.
type Enumerator struct {
	guard      *Guard
	classifier *Classifier
	ignore     []string
}

// NewEnumerator creates an enumerator. Ignore patterns are doublestar globs
// matched against both the full normalized path and the entry name.
func NewEnumerator(guard *Guard, classifier *Classifier, ignore []string) *Enumerator {
	return &Enumerator{guard: guard, classifier: classifier, ignore: ignore}
}

// List performs a single-level directory listing. Every child appears in the
// result; files outside the extension allow-list carry no permitted actions.
func (e *Enumerator) List(dir string, prog Progress) (*Enumeration, error) {
	p := Normalize(dir)
	if !e.guard.Allowed(p) {
		return nil, Errorf(CodeAccessDenied, "access to %s is not allowed", p)
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, Classify(err)
	}
	if !info.IsDir() {
		return nil, Errorf(CodeNotADirectory, "%s is not a directory", p)
	}
	dirents, err := os.ReadDir(p)
	if err != nil {
		return nil, Classify(err)
	}

	total := len(dirents)
	t := newTracker(prog, &total)
	out := &Enumeration{Entries: make([]Resource, 0, total)}
	for _, de := range dirents {
		out.Entries = append(out.Entries, e.describe(gopath.Join(p, de.Name()), de))
		t.bump()
	}
	out.Checkpoints, out.TotalItems, out.DurationMS = t.finish()
	return out, nil
}

// Discover recursively walks root, or every configured root when root is
// empty. Directories are included whenever allowed; files only when both
// allowed and extension-permitted. Per-entry read failures are recorded and
// skipped, never aborting the walk.
func (e *Enumerator) Discover(root string, prog Progress) (*Enumeration, error) {
	var roots []string
	if root == "" {
		roots = e.guard.Roots()
	} else {
		p := Normalize(root)
		if !e.guard.Allowed(p) {
			return nil, Errorf(CodeAccessDenied, "access to %s is not allowed", p)
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, Classify(err)
		}
		if !info.IsDir() {
			return nil, Errorf(CodeNotADirectory, "%s is not a directory", p)
		}
		roots = []string{p}
	}

	// The pre-count only feeds checkpoint percentages; without progress
	// enabled it would be a wasted walk.
	var total *int
	if prog.Enabled && prog.Precount {
		if n := e.count(roots); n >= 0 {
			total = &n
		}
	}

	t := newTracker(prog, total)
	out := &Enumeration{Entries: []Resource{}}
	var mu sync.Mutex

	conf := fastwalk.Config{Follow: false}
	for _, r := range roots {
		walkErr := fastwalk.Walk(&conf, r, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				mu.Lock()
				out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", p, err))
				mu.Unlock()
				return nil
			}
			n := Normalize(p)
			if !e.guard.Allowed(n) || e.ignored(n) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			res, ok := e.discoverEntry(n, d)
			if !ok {
				return nil
			}
			mu.Lock()
			out.Entries = append(out.Entries, res)
			mu.Unlock()
			t.bump()
			return nil
		})
		if walkErr != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", r, walkErr))
		}
	}

	// Walk order is not significant to callers; sort for stable output.
	sort.Slice(out.Entries, func(i, j int) bool { return out.Entries[i].Path < out.Entries[j].Path })
	out.Checkpoints, out.TotalItems, out.DurationMS = t.finish()
	return out, nil
}

// describe builds a shallow-listing entry without re-statting when possible.
func (e *Enumerator) describe(path string, de fs.DirEntry) Resource {
	if de.IsDir() {
		return *e.classifier.describeDir(path)
	}
	info, _ := de.Info()
	if de.Type().IsRegular() && e.classifier.AllowedExt(path) {
		return *e.classifier.describeFile(path, info)
	}
	meta := map[string]interface{}{}
	if info != nil {
		meta["size"] = info.Size()
		meta["modified"] = info.ModTime().UTC().Format(time.RFC3339)
	}
	return Resource{
		ID:       path,
		Type:     TypeFile,
		Name:     de.Name(),
		Path:     path,
		Metadata: meta,
		Actions:  []string{},
	}
}

// discoverEntry converts a visited entry, reporting false when filtered out.
func (e *Enumerator) discoverEntry(path string, d fs.DirEntry) (Resource, bool) {
	if d.IsDir() {
		return *e.classifier.describeDir(path), true
	}
	if !d.Type().IsRegular() || !e.classifier.AllowedExt(path) {
		return Resource{}, false
	}
	info, _ := d.Info()
	return *e.classifier.describeFile(path, info), true
}

// count is the best-effort pre-pass over the tree, applying the same filters
// as the real walk so percentages line up. Returns -1 when the count could
// not be taken.
func (e *Enumerator) count(roots []string) int {
	var n atomic.Int64
	conf := fastwalk.Config{Follow: false}
	for _, r := range roots {
		err := fastwalk.Walk(&conf, r, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			np := Normalize(p)
			if !e.guard.Allowed(np) || e.ignored(np) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || (d.Type().IsRegular() && e.classifier.AllowedExt(np)) {
				n.Add(1)
			}
			return nil
		})
		if err != nil {
			return -1
		}
	}
	return int(n.Load())
}

func (e *Enumerator) ignored(path string) bool {
	base := Base(path)
	for _, pat := range e.ignore {
		if ok, _ := doublestar.Match(pat, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, base); ok {
			return true
		}
	}
	return false
}

// tracker accumulates per-call progress state. Walk callbacks may run
// concurrently; all fields are guarded by mu.
type tracker struct {
	mu          sync.Mutex
	started     time.Time
	enabled     bool
	batch       int
	total       *int
	processed   int
	checkpoints []Checkpoint
}

func newTracker(prog Progress, total *int) *tracker {
	batch := prog.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &tracker{
		started: time.Now(),
		enabled: prog.Enabled,
		batch:   batch,
		total:   total,
	}
}

// bump counts one processed item, snapshotting at batch boundaries.
func (t *tracker) bump() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processed++
	if t.enabled && t.processed%t.batch == 0 {
		t.checkpoints = append(t.checkpoints, t.snapshot())
	}
}

// snapshot builds a checkpoint. Callers must hold mu.
func (t *tracker) snapshot() Checkpoint {
	cp := Checkpoint{
		Processed: t.processed,
		ElapsedMS: float64(time.Since(t.started).Microseconds()) / 1000.0,
	}
	if t.total != nil {
		total := *t.total
		cp.Total = &total
		if total > 0 {
			pct := math.Round(float64(t.processed)/float64(total)*100*100) / 100
			cp.Percentage = &pct
		}
	}
	return cp
}

// finish emits the unconditional final checkpoint and closes the sequence.
func (t *tracker) finish() ([]Checkpoint, int, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.enabled {
		if n := len(t.checkpoints); n == 0 || t.checkpoints[n-1].Processed != t.processed {
			t.checkpoints = append(t.checkpoints, t.snapshot())
		}
	}
	return t.checkpoints, t.processed, float64(time.Since(t.started).Microseconds()) / 1000.0
}
