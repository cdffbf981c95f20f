package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardEmptyRootsDeniesEverything(t *testing.T) {
	g := newGuard(nil, false)

	assert.False(t, g.Allowed("/"))
	assert.False(t, g.Allowed("/data"))
	assert.False(t, g.Allowed("/anything/at/all"))
}

func TestGuardAllowsRootAndDescendants(t *testing.T) {
	g := newGuard([]string{"/data"}, false)

	assert.True(t, g.Allowed("/data"))
	assert.True(t, g.Allowed("/data/files"))
	assert.True(t, g.Allowed("/data/files/deep/nested.txt"))
	assert.False(t, g.Allowed("/other"))
	assert.False(t, g.Allowed("/"))
}

func TestGuardSiblingPrefixNotConflated(t *testing.T) {
	g := newGuard([]string{"/a/b"}, false)

	assert.True(t, g.Allowed("/a/b/x"))
	assert.False(t, g.Allowed("/a/bb/x"))
	assert.False(t, g.Allowed("/a/bc"))
}

func TestGuardMultipleRoots(t *testing.T) {
	g := newGuard([]string{"/data", "/srv/shared"}, false)

	assert.True(t, g.Allowed("/data/x"))
	assert.True(t, g.Allowed("/srv/shared/y"))
	assert.False(t, g.Allowed("/srv/other"))
}

func TestGuardCaseFolding(t *testing.T) {
	sensitive := newGuard([]string{"/Data"}, false)
	assert.False(t, sensitive.Allowed("/data/x"))

	insensitive := newGuard([]string{"/Data"}, true)
	assert.True(t, insensitive.Allowed("/data/x"))
	assert.True(t, insensitive.Allowed("/DATA/X"))
}

func TestGuardNormalizesRoots(t *testing.T) {
	g := newGuard([]string{`C:\data\`, "  /srv/x/../y  "}, false)

	assert.Equal(t, []string{"C:/data", "/srv/y"}, g.Roots())
	assert.True(t, g.Allowed("C:/data/file.txt"))
	assert.True(t, g.Allowed("/srv/y/z"))
}

func TestGuardBlankRootsSkipped(t *testing.T) {
	g := newGuard([]string{"", "  ", "/data"}, false)

	assert.Equal(t, []string{"/data"}, g.Roots())
	assert.True(t, g.Allowed("/data/x"))
}

func TestGuardTraversalEscapesDenied(t *testing.T) {
	g := newGuard([]string{"/data"}, false)

	// Callers normalize before asking; a traversal that escapes the root
	// resolves outside it and is denied.
	assert.False(t, g.Allowed(Normalize("/data/../etc/passwd")))
}
