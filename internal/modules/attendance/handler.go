package attendance

import (
	"errors"
	"net/http"

	"studiodesk/internal/middleware"
	"studiodesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/attendance/clock-in", h.ClockIn)
	rg.POST("/attendance/clock-out", h.ClockOut)
	rg.GET("/attendance", h.List)
}

func (h *Handler) ClockIn(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req ClockInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	record, err := h.service.ClockIn(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"attendance": record})
}

func (h *Handler) ClockOut(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	record, err := h.service.ClockOut(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": record})
}

func (h *Handler) List(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req ListAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	records, err := h.service.List(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid attendance parameters")
	case errors.Is(err, ErrAlreadyOpen):
		response.Error(c, http.StatusConflict, "ALREADY_CLOCKED_IN", "An open attendance record already exists for today")
	case errors.Is(err, ErrNoOpenRecord):
		response.Error(c, http.StatusConflict, "NOT_CLOCKED_IN", "No open attendance record to clock out")
	case errors.Is(err, ErrNoDepartment):
		response.Error(c, http.StatusBadRequest, "NO_DEPARTMENT", "User has no department assignment")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
