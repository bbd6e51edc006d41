package service

import (
	"context"
	"strings"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/utils"
)

// ListTickets returns one filtered page of tickets with resolution hours attached.
func (s *DashboardService) ListTickets(ctx context.Context, f models.TicketFilter, page query.Page) (TicketPage, error) {
	if f.Status == "" {
		f.Status = query.All
	}
	if f.Type == "" {
		f.Type = query.All
	}
	tickets, total, err := s.Store.ListTickets(ctx, f, page)
	if err != nil {
		return TicketPage{}, err
	}

	out := make([]models.TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, models.TicketSummary{TicketLog: t, ResolutionHours: ResolutionHours(t)})
	}
	return TicketPage{Tickets: out, Pagination: query.NewPagination(page, total)}, nil
}

// ResolutionHours is nil until the ticket is closed, then the open duration in
// hours rounded to two decimals.
func ResolutionHours(t models.TicketLog) *float64 {
	if t.Status == models.TicketStatusOpen || t.ClosedAt == nil {
		return nil
	}
	h := utils.RoundTo(utils.HoursBetween(t.CreatedAt, *t.ClosedAt), 2)
	return &h
}

// CreateTicket validates t, defaults its status to open and inserts it.
func (s *DashboardService) CreateTicket(ctx context.Context, t models.NewTicket) (models.TicketLog, error) {
	t.GuildID = strings.TrimSpace(t.GuildID)
	t.OwnerID = strings.TrimSpace(t.OwnerID)
	if t.GuildID == "" || t.OwnerID == "" {
		return models.TicketLog{}, &ValidationError{Message: "guild_id and owner_id are required"}
	}
	if t.Status == "" {
		t.Status = models.TicketStatusOpen
	}
	if err := s.Validator.Struct(t); err != nil {
		return models.TicketLog{}, &ValidationError{Message: validationMessage(err)}
	}

	ticket, err := s.Store.InsertTicket(ctx, t)
	if err != nil {
		return models.TicketLog{}, err
	}
	s.Logger.Debug().Int("ticket_id", ticket.ID).Str("guild_id", ticket.GuildID).Msg("ticket log created")
	return ticket, nil
}
