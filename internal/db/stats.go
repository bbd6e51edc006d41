package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

func (s *Store) CountGuilds(ctx context.Context) (int, error) {
	var n int
	err := s.scalar(ctx, "stats_guilds", `SELECT COUNT(*) FROM guild_configs`, &n)
	return n, err
}

func (s *Store) CountConfiguredGuilds(ctx context.Context) (int, error) {
	var n int
	err := s.scalar(ctx, "stats_configured_guilds", `
		SELECT COUNT(*) FROM guild_configs
		WHERE category_id IS NOT NULL
			AND panel_channel_id IS NOT NULL
			AND transcript_channel_id IS NOT NULL`, &n)
	return n, err
}

// CountTickets counts tickets with the given status, or all tickets when status is "".
func (s *Store) CountTickets(ctx context.Context, status string) (int, error) {
	w := &query.Where{}
	w.EqUnless("status", status, "")
	var n int
	err := s.scalar(ctx, "stats_tickets", `SELECT COUNT(*) FROM ticket_logs `+w.Clause(), &n, w.Args()...)
	return n, err
}

func (s *Store) TicketTypeStats(ctx context.Context) ([]models.TicketTypeStat, error) {
	return queryRows(ctx, s, "stats_ticket_types", `
		SELECT ticket_type,
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE status = 'open') AS open_count,
			COUNT(*) FILTER (WHERE status = 'closed') AS closed_count
		FROM ticket_logs
		WHERE ticket_type IS NOT NULL
		GROUP BY ticket_type
		ORDER BY count DESC, ticket_type`, func(row pgx.Row) (models.TicketTypeStat, error) {
		var st models.TicketTypeStat
		err := row.Scan(&st.TicketType, &st.Count, &st.OpenCount, &st.ClosedCount)
		return st, err
	})
}

// DailyTicketStats returns one row per calendar day for the last `days` days,
// today included. Closures are bucketed by their own close date.
func (s *Store) DailyTicketStats(ctx context.Context, days int) ([]models.DailyStat, error) {
	return queryRows(ctx, s, "stats_daily", `
		SELECT d.day::date AS day,
			(SELECT COUNT(*) FROM ticket_logs t WHERE t.created_at::date = d.day::date) AS tickets_created,
			(SELECT COUNT(*) FROM ticket_logs t WHERE t.closed_at::date = d.day::date) AS tickets_closed
		FROM generate_series(
			(CURRENT_DATE - ($1::int - 1))::timestamp,
			CURRENT_DATE::timestamp,
			INTERVAL '1 day'
		) AS d(day)
		ORDER BY d.day`, func(row pgx.Row) (models.DailyStat, error) {
		var (
			day time.Time
			st  models.DailyStat
		)
		if err := row.Scan(&day, &st.TicketsCreated, &st.TicketsClosed); err != nil {
			return st, err
		}
		st.Date = day.Format(time.DateOnly)
		return st, nil
	}, days)
}

// TopGuilds ranks guilds by ticket volume. Tickets whose guild has no config row
// are still ranked and flagged as not configured.
func (s *Store) TopGuilds(ctx context.Context, limit int) ([]models.TopGuild, error) {
	return queryRows(ctx, s, "stats_top_guilds", `
		SELECT tl.guild_id,
			gc.guild_id IS NOT NULL AS is_configured,
			COUNT(*) AS ticket_count,
			COUNT(*) FILTER (WHERE tl.status = 'open') AS open_tickets,
			MAX(tl.created_at) AS last_ticket_created
		FROM ticket_logs tl
		LEFT JOIN guild_configs gc ON gc.guild_id = tl.guild_id
		GROUP BY tl.guild_id, gc.guild_id
		ORDER BY ticket_count DESC, tl.guild_id
		LIMIT $1`, func(row pgx.Row) (models.TopGuild, error) {
		var g models.TopGuild
		err := row.Scan(&g.GuildID, &g.IsConfigured, &g.TicketCount, &g.OpenTickets, &g.LastTicketCreated)
		return g, err
	}, limit)
}

// AverageResolutionSeconds is nil when no ticket has both timestamps.
func (s *Store) AverageResolutionSeconds(ctx context.Context) (*float64, error) {
	var avg *float64
	err := s.scalar(ctx, "stats_avg_resolution", `
		SELECT AVG(EXTRACT(EPOCH FROM (closed_at - created_at)))::float8
		FROM ticket_logs
		WHERE closed_at IS NOT NULL AND created_at IS NOT NULL`, &avg)
	return avg, err
}
