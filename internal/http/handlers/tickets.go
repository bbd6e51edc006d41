package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/service"
)

type CreateTicketResponse struct {
	Success bool             `json:"success"`
	Ticket  models.TicketLog `json:"ticket"`
}

// @Summary List ticket logs
// @Tags tickets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "all, open or closed" default(all)
// @Param type query string false "all or a ticket type" default(all)
// @Param guildId query string false "Guild id"
// @Param search query string false "Channel name or owner id substring"
// @Success 200 {object} service.TicketPage
// @Failure 500 {object} ErrorResponse
// @Router /api/tickets [get]
func (h *Handler) TicketsList(c *gin.Context) {
	filter := models.TicketFilter{
		Status:  c.DefaultQuery("status", query.All),
		Type:    c.DefaultQuery("type", query.All),
		GuildID: c.Query("guildId"),
		Search:  c.Query("search"),
	}
	page := query.ParsePage(c.Query("page"), c.Query("limit"), service.TicketsDefaultLimit)

	result, err := h.Service.ListTickets(c.Request.Context(), filter, page)
	if err != nil {
		h.fail(c, err, "Failed to fetch tickets")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Create a ticket log manually
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body models.NewTicket true "Ticket log"
// @Success 200 {object} CreateTicketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/tickets [post]
func (h *Handler) TicketCreate(c *gin.Context) {
	var req models.NewTicket
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	ticket, err := h.Service.CreateTicket(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create ticket log")
		return
	}
	c.JSON(http.StatusOK, CreateTicketResponse{Success: true, Ticket: ticket})
}
