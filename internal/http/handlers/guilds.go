package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/service"
)

// @Summary List guild configurations
// @Tags guilds
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Guild id substring"
// @Success 200 {object} service.GuildPage
// @Failure 500 {object} ErrorResponse
// @Router /api/guilds [get]
func (h *Handler) GuildsList(c *gin.Context) {
	page := query.ParsePage(c.Query("page"), c.Query("limit"), service.GuildsDefaultLimit)
	result, err := h.Service.ListGuilds(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		h.fail(c, err, "Failed to fetch guilds")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Delete a guild configuration
// @Description Support roles are removed by the foreign key cascade. Unknown ids succeed.
// @Tags guilds
// @Produce json
// @Param guildId query string true "Guild id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/guilds [delete]
func (h *Handler) GuildDelete(c *gin.Context) {
	if err := h.Service.DeleteGuild(c.Request.Context(), c.Query("guildId")); err != nil {
		h.fail(c, err, "Failed to delete guild")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
