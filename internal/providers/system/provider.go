// Package system provides server information and liveness tools.
package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/fsgateway/fsgateway/internal/types"
)

// Provider implements system information and utilities
type Provider struct {
	startTime time.Time
}

// NewProvider creates a system provider
func NewProvider() *Provider {
	return &Provider{startTime: time.Now()}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Server information and liveness",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"info",
			"monitoring",
		},
		Tools: []types.Tool{
			{
				ID:          "system.info",
				Name:        "System Info",
				Description: "Get server runtime information",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.time",
				Name:        "Current Time",
				Description: "Get current server time",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.ping",
				Name:        "Ping",
				Description: "Test service availability",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a system operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, reqCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "system.info":
		return p.info()
	case "system.time":
		return p.currentTime()
	case "system.ping":
		return p.ping()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) info() (*types.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return success(map[string]interface{}{
		"go_version":     runtime.Version(),
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_alloc":   m.Alloc,
		"memory_sys":     m.Sys,
		"uptime_seconds": time.Since(p.startTime).Seconds(),
	})
}

func (p *Provider) currentTime() (*types.Result, error) {
	now := time.Now()
	return success(map[string]interface{}{
		"unix":     now.Unix(),
		"unix_ms":  now.UnixMilli(),
		"iso":      now.UTC().Format(time.RFC3339),
		"timezone": now.Location().String(),
	})
}

func (p *Provider) ping() (*types.Result, error) {
	return success(map[string]interface{}{
		"pong":      true,
		"timestamp": time.Now().UnixMilli(),
	})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}
