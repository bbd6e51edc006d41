package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/db"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/http/middleware"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/service"
)

type Handler struct {
	Service *service.DashboardService
	Logger  zerolog.Logger
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// fail maps a service error to a response. Validation messages are returned
// as-is; anything else is logged and reported as message with a 500.
func (h *Handler) fail(c *gin.Context, err error, message string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Message)
		return
	}

	ev := h.Logger.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDHeader))
	var dbErr *db.DatabaseError
	if errors.As(err, &dbErr) {
		ev = ev.Str("op", dbErr.Op)
	}
	ev.Msg(message)
	writeError(c, http.StatusInternalServerError, message)
}
