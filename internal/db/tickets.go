package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

const ticketColumns = `id, guild_id, channel_id, channel_name, owner_id, ticket_type, ticket_number,
	status, created_at, closed_at, closed_by`

func ticketWhere(f models.TicketFilter) *query.Where {
	w := &query.Where{}
	w.EqUnless("status", f.Status, query.All)
	w.EqUnless("ticket_type", f.Type, query.All)
	w.EqUnless("guild_id", f.GuildID, "")
	w.ILike(f.Search, "channel_name", "owner_id")
	return w
}

// ListTickets returns one page of tickets, newest first, plus the filtered total.
func (s *Store) ListTickets(ctx context.Context, f models.TicketFilter, page query.Page) ([]models.TicketLog, int, error) {
	w := ticketWhere(f)
	limit, args := w.Paginate(page)

	listSQL := fmt.Sprintf(`SELECT %s FROM ticket_logs %s ORDER BY created_at DESC, id DESC %s`, ticketColumns, w.Clause(), limit)
	tickets, err := queryRows(ctx, s, "list_tickets", listSQL, scanTicket, args...)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.scalar(ctx, "count_tickets", `SELECT COUNT(*) FROM ticket_logs `+w.Clause(), &total, w.Args()...); err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (s *Store) InsertTicket(ctx context.Context, t models.NewTicket) (models.TicketLog, error) {
	sql := `
		INSERT INTO ticket_logs (guild_id, channel_id, channel_name, owner_id, ticket_type, ticket_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ticketColumns
	return queryRow(ctx, s, "insert_ticket", sql, scanTicket,
		t.GuildID, t.ChannelID, t.ChannelName, t.OwnerID, t.TicketType, t.TicketNumber, t.Status)
}

func scanTicket(row pgx.Row) (models.TicketLog, error) {
	var t models.TicketLog
	err := row.Scan(
		&t.ID, &t.GuildID, &t.ChannelID, &t.ChannelName, &t.OwnerID, &t.TicketType, &t.TicketNumber,
		&t.Status, &t.CreatedAt, &t.ClosedAt, &t.ClosedBy,
	)
	return t, err
}
