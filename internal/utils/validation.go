// Package utils holds request validation shared by the API layer.
package utils

import (
	"fmt"
	"strings"
)

// Request body limits (in bytes).
const (
	MaxJSONSize    = 1 * 1024 * 1024 // maximum JSON payload size
	MaxToolIDLen   = 128
	MaxPathLen     = 4096
	MaxCallerIDLen = 128
)

// ValidateToolID checks a tool identifier: non-empty, dotted form
// "service.tool", restricted character set, bounded length.
func ValidateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool_id is required")
	}
	if len(toolID) > MaxToolIDLen {
		return fmt.Errorf("tool_id exceeds %d characters", MaxToolIDLen)
	}
	if !strings.Contains(toolID, ".") {
		return fmt.Errorf("tool_id must be of the form service.tool")
	}
	for _, r := range toolID {
		if !isToolIDRune(r) {
			return fmt.Errorf("tool_id contains invalid character %q", r)
		}
	}
	return nil
}

func isToolIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}

// ValidateCallerID bounds an optional caller identifier.
func ValidateCallerID(callerID string) error {
	if len(callerID) > MaxCallerIDLen {
		return fmt.Errorf("caller_id exceeds %d characters", MaxCallerIDLen)
	}
	return nil
}

// ValidatePathParam bounds a path-valued tool parameter before it reaches
// the filesystem layer. Scope checks happen downstream; this only rejects
// abusive payloads.
func ValidatePathParam(path string) error {
	if len(path) > MaxPathLen {
		return fmt.Errorf("path exceeds %d characters", MaxPathLen)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte")
	}
	return nil
}
