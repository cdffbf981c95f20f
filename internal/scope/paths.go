package scope

import (
	"os"
	gopath "path"
	"path/filepath"
	"strings"
)

// Normalize canonicalizes a caller-supplied path: backslash separators become
// forward slashes, relative paths resolve against the process working
// directory, and "."/".." segments collapse. The result always uses forward
// slashes regardless of host platform.
//
// Normalize is idempotent and never consults the filesystem; existence checks
// happen downstream. Any input string maps to some canonical path.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "/")
	if isAbs(s) {
		return gopath.Clean(s)
	}
	cwd, err := os.Getwd()
	if err != nil {
		// No working directory to anchor against; best-effort clean.
		return gopath.Clean(s)
	}
	return gopath.Join(filepath.ToSlash(cwd), s)
}

// isAbs reports whether a separator-unified path is absolute, treating a
// Windows drive specifier ("C:/...") as absolute on every platform so that
// normalization behaves the same for configuration written on either side.
func isAbs(s string) bool {
	return strings.HasPrefix(s, "/") || hasDrive(s)
}

func hasDrive(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return false
	}
	return len(s) == 2 || s[2] == '/'
}

// segments decomposes a normalized path into the list used for containment
// comparison. The leading slash of rooted paths is dropped; a drive specifier
// stays as the first segment. The filesystem root yields an empty list.
func segments(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Ext returns the lowercased extension of a path, leading dot included.
func Ext(p string) string {
	return strings.ToLower(gopath.Ext(p))
}

// Base returns the final segment of a normalized path.
func Base(p string) string {
	return gopath.Base(p)
}
