package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/response"
	"github.com/hostelhq/outpass-backend/internal/service"
	"github.com/rs/zerolog"
)

// DashboardHandler serves the counters both dashboards poll for their
// notification badges.
type DashboardHandler struct {
	gatePassService *service.GatePassService
	log             zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(gatePassService *service.GatePassService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{gatePassService: gatePassService, log: log}
}

// Stats godoc
// GET /dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.gatePassService.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Dashboard stats failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
