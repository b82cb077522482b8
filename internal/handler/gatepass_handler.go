package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
	"github.com/hostelhq/outpass-backend/internal/response"
	"github.com/hostelhq/outpass-backend/internal/service"
	"github.com/hostelhq/outpass-backend/internal/validator"
	"github.com/rs/zerolog"
)

// GatePassHandler handles outing request endpoints.
type GatePassHandler struct {
	gatePassService *service.GatePassService
	log             zerolog.Logger
}

// NewGatePassHandler creates a new GatePassHandler.
func NewGatePassHandler(gatePassService *service.GatePassService, log zerolog.Logger) *GatePassHandler {
	return &GatePassHandler{gatePassService: gatePassService, log: log}
}

// Create godoc
// POST /requests
// Records a new outing request submitted by a student.
func (h *GatePassHandler) Create(c *gin.Context) {
	var req model.CreateGatePassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	pass, err := h.gatePassService.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("Gate-pass creation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": pass})
}

// List godoc
// GET /requests?submitted=&returned=&from=&to=
// Lists outing requests for the dashboards, newest first.
func (h *GatePassHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	passes, err := h.gatePassService.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Gate-pass listing failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if passes == nil {
		passes = []model.GatePassRequest{}
	}

	response.Success(c, http.StatusOK, gin.H{"requests": passes})
}

// Get godoc
// GET /requests/:id
func (h *GatePassHandler) Get(c *gin.Context) {
	pass, err := h.gatePassService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failLookup(c, err, "Gate-pass lookup failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": pass})
}

// Approve godoc
// PUT /requests/:id
// Marks a request submitted and records the approver's display name.
func (h *GatePassHandler) Approve(c *gin.Context) {
	var req model.ApproveGatePassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	pass, err := h.gatePassService.Approve(c.Request.Context(), c.Param("id"), req.Approver)
	if err != nil {
		h.failLookup(c, err, "Gate-pass approval failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": pass})
}

// MarkOut godoc
// POST /requests/:id/out
// Watchman records the student leaving through the gate.
func (h *GatePassHandler) MarkOut(c *gin.Context) {
	pass, err := h.gatePassService.MarkOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failLookup(c, err, "Gate check-out failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": pass})
}

// MarkIn godoc
// POST /requests/:id/in
// Watchman records the student returning through the gate.
func (h *GatePassHandler) MarkIn(c *gin.Context) {
	pass, err := h.gatePassService.MarkIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.failLookup(c, err, "Gate check-in failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": pass})
}

// DeleteMany godoc
// POST /requests/delete-many
// Removes the identified requests. Unknown ids are ignored.
func (h *GatePassHandler) DeleteMany(c *gin.Context) {
	var req model.BulkDeleteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	deleted, err := h.gatePassService.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		h.log.Error().Err(err).Msg("Gate-pass bulk delete failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.BulkDeleteResponse{DeletedIDs: deleted})
}

func (h *GatePassHandler) failLookup(c *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	h.log.Error().Err(err).Msg(msg)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// parseFilter reads the optional listing query params. Responds with a 400
// and returns false when a param is malformed.
func parseFilter(c *gin.Context) (model.GatePassFilter, bool) {
	var filter model.GatePassFilter

	for _, q := range []struct {
		name string
		dst  **bool
	}{
		{"submitted", &filter.Submitted},
		{"returned", &filter.Returned},
	} {
		if raw := c.Query(q.name); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
				return filter, false
			}
			*q.dst = &v
		}
	}

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		if raw := c.Query(q.name); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				// Also accept bare dates from the dashboard date pickers.
				t, err = time.Parse("2006-01-02", raw)
				if err != nil {
					response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
					return filter, false
				}
			}
			*q.dst = &t
		}
	}

	return filter, true
}
