package gateway

import (
	"github.com/fsgateway/fsgateway/internal/scope"
	"github.com/fsgateway/fsgateway/internal/types"
)

// list performs a shallow directory listing. The response carries both the
// plain name array and the typed entries.
func (p *Provider) list(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failMsg("path parameter required")
	}

	prog := progressParams(params)
	enum, err := p.ops.Enumerator.List(path, prog)
	if err != nil {
		return Failure(err)
	}

	names := make([]string, len(enum.Entries))
	for i, entry := range enum.Entries {
		names[i] = entry.Name
	}

	data := map[string]interface{}{
		"path":    scope.Normalize(path),
		"files":   names,
		"entries": enum.Entries,
		"count":   enum.TotalItems,
	}
	if prog.Enabled {
		data["checkpoints"] = enum.Checkpoints
		data["processing_time_ms"] = enum.DurationMS
	}
	return Success(data)
}
