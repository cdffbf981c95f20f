package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsgateway/fsgateway/internal/api/middleware"
	"github.com/fsgateway/fsgateway/internal/logging"
	"github.com/fsgateway/fsgateway/internal/monitoring"
	"github.com/fsgateway/fsgateway/internal/service"
	"github.com/fsgateway/fsgateway/internal/types"
	"github.com/fsgateway/fsgateway/internal/utils"
)

// Version is the reported service version.
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	started  time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		started:  time.Now(),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "fsgateway",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	snap := h.metrics.Snapshot()

	avgDuration := 0.0
	if snap.RequestCount > 0 {
		avgDuration = snap.TotalDuration / float64(snap.RequestCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"uptime_seconds":   time.Since(h.started).Seconds(),
		"service_registry": h.registry.Stats(),
		"requests": gin.H{
			"total":            snap.TotalRequests,
			"errors":           snap.TotalErrors,
			"avg_duration_sec": avgDuration,
		},
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CallerID != nil {
		if err := utils.ValidateCallerID(*req.CallerID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if p, ok := req.Params["path"].(string); ok {
		if err := utils.ValidatePathParam(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	requestID := middleware.GetRequestID(c)
	reqCtx := &types.Context{
		CallerID:  req.CallerID,
		RequestID: &requestID,
	}

	serviceID, tool := splitToolID(req.ToolID)
	timer := monitoring.NewTimer(h.metrics, serviceID, tool)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, reqCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(serviceID, tool, "execute_failed")
		h.logger.Error("tool execution failed",
			logging.String("tool_id", req.ToolID),
			logging.String("request_id", requestID),
			logging.Err(err),
		)
		if result == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	if result.Success {
		timer.Stop("success")
		h.recordGatewayActivity(result.Data)
	} else {
		timer.Stop("failure")
		if code, ok := result.Data["code"].(string); ok {
			h.metrics.RecordToolError(serviceID, tool, code)
			if code == "access_denied" {
				h.metrics.IncAccessDenials()
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

// recordGatewayActivity feeds the gateway counters from a successful result's
// well-known fields.
func (h *Handlers) recordGatewayActivity(data map[string]interface{}) {
	if n, ok := data["count"].(int); ok {
		h.metrics.AddItemsEnumerated(n)
	}
	if n, ok := data["size"].(int); ok {
		h.metrics.AddBytesRead(n)
	}
	if skipped, ok := data["skipped"].([]string); ok {
		for range skipped {
			h.metrics.IncEntriesSkipped()
		}
	}
}

func splitToolID(toolID string) (service, tool string) {
	for i := 0; i < len(toolID); i++ {
		if toolID[i] == '.' {
			return toolID[:i], toolID[i+1:]
		}
	}
	return toolID, ""
}
