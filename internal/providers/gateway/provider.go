package gateway

import (
	"context"
	"fmt"

	"github.com/fsgateway/fsgateway/internal/types"
)

// Provider is the gateway service surface.
type Provider struct {
	ops *Ops
}

// NewProvider creates a gateway provider over an already wired Ops set.
func NewProvider(ops *Ops) *Provider {
	return &Provider{ops: ops}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "gateway",
		Name:        "Filesystem Gateway",
		Description: "Scoped filesystem access: listing, reading, and resource discovery within configured roots",
		Category:    types.CategoryGateway,
		Capabilities: []string{
			"init",
			"list",
			"read",
			"read_binary",
			"resources",
		},
		Tools: []types.Tool{
			{
				ID:          "gateway.init",
				Name:        "Initialize",
				Description: "Verify every configured root exists, is a directory, and is listable",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "gateway.list",
				Name:        "List Directory",
				Description: "List contents of a directory (single level)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "progress", Type: "boolean", Description: "Include progress checkpoints", Required: false},
					{Name: "batch_size", Type: "number", Description: "Checkpoint interval (default 100)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "gateway.read",
				Name:        "Read File",
				Description: "Read file contents as UTF-8 text",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "gateway.read_binary",
				Name:        "Read Binary File",
				Description: "Read file contents as base64-encoded bytes",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "gateway.resources.list",
				Name:        "List Resources",
				Description: "Recursively discover resources under a root (or all configured roots)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Root to walk (defaults to all configured roots)", Required: false},
					{Name: "progress", Type: "boolean", Description: "Include progress checkpoints", Required: false},
					{Name: "batch_size", Type: "number", Description: "Checkpoint interval (default 100)", Required: false},
					{Name: "precount", Type: "boolean", Description: "Pre-count items for percentages (default true)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "gateway.resources.get",
				Name:        "Get Resource",
				Description: "Fetch the descriptor of a single file or directory",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				},
				Returns: "object",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "Resource",
				Fields: map[string]string{
					"id":       "string",
					"type":     "file | directory",
					"name":     "string",
					"path":     "string",
					"metadata": "object",
					"actions":  "array",
				},
			},
			{
				Name: "Checkpoint",
				Fields: map[string]string{
					"processed":  "number",
					"total":      "number | null",
					"percentage": "number | null",
					"elapsed_ms": "number",
				},
			},
		},
	}
}

// Execute runs a gateway operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "gateway.init":
		return p.initialize()
	case "gateway.list":
		return p.list(params)
	case "gateway.read":
		return p.read(params)
	case "gateway.read_binary":
		return p.readBinary(params)
	case "gateway.resources.list":
		return p.listResources(params)
	case "gateway.resources.get":
		return p.getResource(params)
	default:
		return failMsg(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
