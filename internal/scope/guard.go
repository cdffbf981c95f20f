package scope

import (
	"runtime"
	"strings"
)

// Guard decides ALLOW/DENY for a normalized path against the configured root
// set. Containment is a segment-wise prefix match, never a raw string prefix,
// so sibling directories sharing a name prefix (/a/b vs /a/bb) are not
// conflated. An empty root set denies everything.
type Guard struct {
	roots    []string
	segs     [][]string
	foldCase bool
}

// NewGuard builds a guard from the configured root directories. Roots are
// normalized once here; no comparison ever runs against an un-normalized root.
// Case is folded on case-insensitive host platforms.
func NewGuard(roots []string) *Guard {
	return newGuard(roots, runtime.GOOS == "windows" || runtime.GOOS == "darwin")
}

func newGuard(roots []string, foldCase bool) *Guard {
	g := &Guard{foldCase: foldCase}
	for _, r := range roots {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		n := Normalize(r)
		g.roots = append(g.roots, n)
		g.segs = append(g.segs, segments(n))
	}
	return g
}

// Roots returns the normalized root set in configuration order.
func (g *Guard) Roots() []string {
	out := make([]string, len(g.roots))
	copy(out, g.roots)
	return out
}

// Allowed reports whether path is equal to, or a descendant of, at least one
// configured root. The path must already be normalized; Allowed is a pure
// function of the string and never touches the filesystem.
func (g *Guard) Allowed(path string) bool {
	ps := segments(path)
	for _, rs := range g.segs {
		if g.contains(rs, ps) {
			return true
		}
	}
	return false
}

func (g *Guard) contains(root, path []string) bool {
	if len(path) < len(root) {
		return false
	}
	for i, seg := range root {
		a, b := seg, path[i]
		if g.foldCase {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		if a != b {
			return false
		}
	}
	return true
}
