package scope

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	err := Errorf(CodeAccessDenied, "access to %s is not allowed", "/etc")
	assert.Equal(t, "access_denied: access to /etc is not allowed", err.Error())
}

func TestClassifyOSErrors(t *testing.T) {
	assert.Equal(t, CodeNotFound, Classify(fs.ErrNotExist).Code)
	assert.Equal(t, CodePermissionDenied, Classify(fs.ErrPermission).Code)
	assert.Equal(t, CodeIOError, Classify(errors.New("disk on fire")).Code)
}

func TestClassifyWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("open /x: %w", fs.ErrPermission)
	assert.Equal(t, CodePermissionDenied, Classify(wrapped).Code)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotAFile, CodeOf(Errorf(CodeNotAFile, "nope")))
	assert.Equal(t, CodeNotAFile, CodeOf(fmt.Errorf("wrapped: %w", Errorf(CodeNotAFile, "nope"))))
	assert.Equal(t, CodeIOError, CodeOf(errors.New("plain")))
}
