package scope

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(t *testing.T, root string, exts []string) *Reader {
	t.Helper()
	return NewReader(newGuard([]string{root}, false), NewClassifier(exts))
}

func TestReaderText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	r := newTestReader(t, dir, []string{".txt"})
	out, err := r.Text(path)
	require.NoError(t, err)

	assert.Equal(t, "hi", out.Content)
	assert.Equal(t, 2, out.Size)
	assert.Empty(t, out.Charset)
	assert.Equal(t, Normalize(path), out.Path)
}

func TestReaderTextInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin.txt")
	// ISO-8859-1 "café"
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o644))

	r := newTestReader(t, dir, []string{".txt"})
	out, err := r.Text(path)
	require.NoError(t, err)

	assert.Contains(t, out.Content, "caf")
	assert.Contains(t, out.Content, "�")
	assert.Equal(t, 4, out.Size)
}

func TestReaderBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.dat")
	raw := []byte{0x00, 0x01, 0xfe, 0xff}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	r := newTestReader(t, dir, []string{".dat"})
	out, err := r.Binary(path)
	require.NoError(t, err)

	assert.Equal(t, "base64", out.Encoding)
	assert.Equal(t, len(raw), out.Size)

	decoded, err := base64.StdEncoding.DecodeString(out.Content)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestReaderDeniesOutsideRoots(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	path := filepath.Join(other, "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := newTestReader(t, dir, []string{".txt"})
	_, err := r.Text(path)

	assert.Equal(t, CodeAccessDenied, CodeOf(err))
}

func TestReaderDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	r := newTestReader(t, dir, []string{".txt"})
	_, err := r.Text(path)

	assert.Equal(t, CodeDisallowedExtension, CodeOf(err))
}

func TestReaderNotAFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	r := newTestReader(t, dir, []string{".txt"})
	_, err := r.Text(sub)

	assert.Equal(t, CodeNotAFile, CodeOf(err))
}

func TestReaderNotFound(t *testing.T) {
	dir := t.TempDir()

	r := newTestReader(t, dir, []string{".txt"})
	_, err := r.Text(filepath.Join(dir, "missing.txt"))

	assert.Equal(t, CodeNotFound, CodeOf(err))
}
