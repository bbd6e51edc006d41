package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

// DISTINCT keeps the role and ticket joins from multiplying each other.
const listGuildsSQL = `
	SELECT gc.guild_id, gc.category_id, gc.panel_channel_id, gc.transcript_channel_id,
		gc.ticket_counter, gc.created_at, gc.updated_at,
		COUNT(DISTINCT sr.id) AS support_role_count,
		COUNT(DISTINCT tl.id) AS total_tickets,
		COUNT(DISTINCT tl.id) FILTER (WHERE tl.status = 'open') AS open_tickets,
		MAX(tl.created_at) AS last_ticket_created
	FROM guild_configs gc
	LEFT JOIN support_roles sr ON sr.guild_id = gc.guild_id
	LEFT JOIN ticket_logs tl ON tl.guild_id = gc.guild_id
	%s
	GROUP BY gc.guild_id, gc.category_id, gc.panel_channel_id, gc.transcript_channel_id,
		gc.ticket_counter, gc.created_at, gc.updated_at
	ORDER BY gc.updated_at DESC, gc.guild_id
	%s`

func guildWhere(search string) *query.Where {
	w := &query.Where{}
	w.ILike(search, "gc.guild_id")
	return w
}

// ListGuilds returns one page of guild summaries and the total number of guilds
// matching search. Both statements share the same WHERE clause and parameters.
func (s *Store) ListGuilds(ctx context.Context, search string, page query.Page) ([]models.GuildSummary, int, error) {
	w := guildWhere(search)
	limit, args := w.Paginate(page)

	guilds, err := queryRows(ctx, s, "list_guilds", fmt.Sprintf(listGuildsSQL, w.Clause(), limit), scanGuildSummary, args...)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countSQL := `SELECT COUNT(*) FROM guild_configs gc ` + w.Clause()
	if err := s.scalar(ctx, "count_guilds", countSQL, &total, w.Args()...); err != nil {
		return nil, 0, err
	}
	return guilds, total, nil
}

func (s *Store) GuildSupportRoles(ctx context.Context, guildID string) ([]string, error) {
	return queryRows(ctx, s, "guild_support_roles", `SELECT role_id FROM support_roles WHERE guild_id = $1 ORDER BY id`, func(row pgx.Row) (string, error) {
		var roleID string
		err := row.Scan(&roleID)
		return roleID, err
	}, guildID)
}

// DeleteGuild removes the guild config; support roles go with it through the
// foreign key cascade. Deleting an unknown id affects zero rows.
func (s *Store) DeleteGuild(ctx context.Context, guildID string) (int64, error) {
	return s.exec(ctx, "delete_guild", `DELETE FROM guild_configs WHERE guild_id = $1`, guildID)
}

func scanGuildSummary(row pgx.Row) (models.GuildSummary, error) {
	var g models.GuildSummary
	err := row.Scan(
		&g.GuildID, &g.CategoryID, &g.PanelChannelID, &g.TranscriptChannelID,
		&g.TicketCounter, &g.CreatedAt, &g.UpdatedAt,
		&g.SupportRoleCount, &g.TotalTickets, &g.OpenTickets, &g.LastTicketCreated,
	)
	return g, err
}
