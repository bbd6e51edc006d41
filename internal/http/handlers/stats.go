package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
