package gateway

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsgateway/fsgateway/internal/types"
)

// initialize verifies every configured root exists, is a directory, and is
// listable. It never fails the call; the report itself carries the outcome.
func (p *Provider) initialize() (*types.Result, error) {
	roots := p.ops.Guard.Roots()

	accessible := []string{}
	inaccessible := []string{}
	details := []string{}

	for _, root := range roots {
		if reason := checkRoot(root); reason != "" {
			inaccessible = append(inaccessible, root)
			details = append(details, reason)
			continue
		}
		accessible = append(accessible, root)
	}

	ok := len(roots) > 0 && len(inaccessible) == 0
	message := "OK"
	switch {
	case len(roots) == 0:
		message = "no roots configured; all access is denied"
	case len(inaccessible) > 0:
		message = fmt.Sprintf("some allowed directories are not accessible: %s", details[0])
	}

	return Success(map[string]interface{}{
		"ok":                    ok,
		"message":               message,
		"allowed_roots":         roots,
		"accessible_roots":      accessible,
		"inaccessible_roots":    inaccessible,
		"error_details":         details,
		"total_allowed":         len(roots),
		"total_accessible":      len(accessible),
		"extensions_configured": len(p.ops.Classifier.Extensions()),
	})
}

// checkRoot returns a failure reason, or "" when the root is usable.
func checkRoot(root string) string {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Sprintf("directory does not exist: %s", root)
		}
		return fmt.Sprintf("error accessing directory %s: %v", root, err)
	}
	if !info.IsDir() {
		return fmt.Sprintf("path exists but is not a directory: %s", root)
	}

	f, err := os.Open(root)
	if err != nil {
		return fmt.Sprintf("permission denied accessing directory: %s", root)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && err != io.EOF {
		return fmt.Sprintf("cannot list directory %s: %v", root, err)
	}
	return ""
}
