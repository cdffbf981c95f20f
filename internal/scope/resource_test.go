package scope

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifierNormalizesExtensions(t *testing.T) {
	c := NewClassifier([]string{"TXT", ".Md", "  .json  ", ""})

	assert.Equal(t, []string{".json", ".md", ".txt"}, c.Extensions())
	assert.True(t, c.AllowedExt("/data/a.txt"))
	assert.True(t, c.AllowedExt("/data/b.MD"))
	assert.False(t, c.AllowedExt("/data/c.bin"))
}

func TestClassifierEmptyAllowListDeniesAllFiles(t *testing.T) {
	c := NewClassifier(nil)

	assert.False(t, c.AllowedExt("/data/a.txt"))
	assert.Empty(t, c.Extensions())
}

func TestClassifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	c := NewClassifier([]string{".txt"})
	res, err := c.Classify(Normalize(path))
	require.NoError(t, err)

	assert.Equal(t, TypeFile, res.Type)
	assert.Equal(t, res.Path, res.ID)
	assert.Equal(t, "note.txt", res.Name)
	assert.Equal(t, []string{ActionRead, ActionReadBinary}, res.Actions)
	assert.Equal(t, int64(5), res.Metadata["size"])
	assert.NotEmpty(t, res.Metadata["modified"])
	assert.NotEmpty(t, res.Metadata["mime"])
}

func TestClassifyDirectory(t *testing.T) {
	dir := t.TempDir()

	c := NewClassifier(nil)
	res, err := c.Classify(Normalize(dir))
	require.NoError(t, err)

	assert.Equal(t, TypeDirectory, res.Type)
	assert.Equal(t, []string{ActionList}, res.Actions)
	assert.Empty(t, res.Metadata)
}

func TestClassifyDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00}, 0o644))

	c := NewClassifier([]string{".txt"})
	_, err := c.Classify(Normalize(path))

	assert.Equal(t, CodeDisallowedExtension, CodeOf(err))
}

func TestClassifyMissingPath(t *testing.T) {
	c := NewClassifier(nil)
	_, err := c.Classify("/no/such/path")

	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestDescribeFileNilInfoDegrades(t *testing.T) {
	c := NewClassifier([]string{".txt"})
	res := c.describeFile("/data/a.txt", nil)

	assert.Empty(t, res.Metadata)
	assert.Equal(t, []string{ActionRead, ActionReadBinary}, res.Actions)
}
