package gateway

import (
	"github.com/fsgateway/fsgateway/internal/scope"
	"github.com/fsgateway/fsgateway/internal/types"
)

// listResources recursively discovers resources under the given root, or all
// configured roots when no path is supplied.
func (p *Provider) listResources(params map[string]interface{}) (*types.Result, error) {
	path, _ := params["path"].(string)

	prog := progressParams(params)
	enum, err := p.ops.Enumerator.Discover(path, prog)
	if err != nil {
		return Failure(err)
	}

	data := map[string]interface{}{
		"resources":          enum.Entries,
		"count":              enum.TotalItems,
		"processing_time_ms": enum.DurationMS,
	}
	if prog.Enabled {
		data["checkpoints"] = enum.Checkpoints
	}
	if len(enum.Errors) > 0 {
		data["skipped"] = enum.Errors
	}
	return Success(data)
}

// getResource classifies a single path into a resource descriptor.
func (p *Provider) getResource(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failMsg("path parameter required")
	}

	normalized := scope.Normalize(path)
	if !p.ops.Guard.Allowed(normalized) {
		return Failure(scope.Errorf(scope.CodeAccessDenied, "access to %s is not allowed", normalized))
	}

	res, err := p.ops.Classifier.Classify(normalized)
	if err != nil {
		return Failure(err)
	}

	return Success(map[string]interface{}{
		"resource": res,
	})
}
