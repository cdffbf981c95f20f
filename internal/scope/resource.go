package scope

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// ResourceType classifies a filesystem entry.
type ResourceType string

const (
	TypeFile      ResourceType = "file"
	TypeDirectory ResourceType = "directory"
)

// Permitted actions per resource type.
const (
	ActionList       = "list"
	ActionRead       = "read"
	ActionReadBinary = "read_binary"
)

// Resource is the externally visible descriptor of a filesystem entry. The
// normalized absolute path doubles as the identity. Descriptors are built on
// demand per request and never cached between calls.
type Resource struct {
	ID       string                 `json:"id"`
	Type     ResourceType           `json:"type"`
	Name     string                 `json:"name"`
	Path     string                 `json:"path"`
	Metadata map[string]interface{} `json:"metadata"`
	Actions  []string               `json:"actions"`
}

// Classifier builds resource descriptors, gating file actions on the
// configured extension allow-list. An empty allow-list means no file may be
// read; directories may still be listed.
type Classifier struct {
	exts map[string]bool
}

// NewClassifier normalizes the extension allow-list once at load time:
// lowercased, leading dot enforced, blanks dropped.
func NewClassifier(extensions []string) *Classifier {
	m := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return &Classifier{exts: m}
}

// AllowedExt reports whether a file's extension is permitted for reads.
func (c *Classifier) AllowedExt(path string) bool {
	return c.exts[Ext(path)]
}

// Extensions returns the normalized allow-list, sorted.
func (c *Classifier) Extensions() []string {
	out := make([]string, 0, len(c.exts))
	for e := range c.exts {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Classify builds the descriptor for a normalized, allowed path.
// Special files, broken link targets, and unreadable entries classify as
// not-found with the underlying reason preserved as diagnostic text.
func (c *Classifier) Classify(path string) (*Resource, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Errorf(CodeNotFound, "path does not exist: %s", path)
		}
		return nil, Errorf(CodeNotFound, "cannot stat %s: %v", path, err)
	}

	switch {
	case info.IsDir():
		return c.describeDir(path), nil
	case info.Mode().IsRegular():
		if !c.AllowedExt(path) {
			return nil, Errorf(CodeDisallowedExtension, "file type %q is not allowed for reading", Ext(path))
		}
		res := c.describeFile(path, info)
		// Content sniffing is reserved for single-entry classification; bulk
		// enumeration stays stat-only.
		if mt, err := mimetype.DetectFile(path); err == nil {
			res.Metadata["mime"] = mt.String()
		}
		return res, nil
	default:
		return nil, Errorf(CodeNotFound, "unsupported entry type %v: %s", info.Mode().Type(), path)
	}
}

func (c *Classifier) describeDir(path string) *Resource {
	return &Resource{
		ID:       path,
		Type:     TypeDirectory,
		Name:     Base(path),
		Path:     path,
		Metadata: map[string]interface{}{},
		Actions:  []string{ActionList},
	}
}

// describeFile builds a file descriptor from an already obtained stat. A nil
// info degrades metadata to absent rather than failing the classification.
func (c *Classifier) describeFile(path string, info fs.FileInfo) *Resource {
	meta := map[string]interface{}{}
	if info != nil {
		meta["size"] = info.Size()
		meta["modified"] = info.ModTime().UTC().Format(time.RFC3339)
	}
	return &Resource{
		ID:       path,
		Type:     TypeFile,
		Name:     Base(path),
		Path:     path,
		Metadata: meta,
		Actions:  []string{ActionRead, ActionReadBinary},
	}
}
