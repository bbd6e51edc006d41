package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

// ListGuilds loads one page of guild summaries, then fetches each guild's support
// role ids with a bounded number of concurrent lookups.
func (s *DashboardService) ListGuilds(ctx context.Context, search string, page query.Page) (GuildPage, error) {
	guilds, total, err := s.Store.ListGuilds(ctx, search, page)
	if err != nil {
		return GuildPage{}, err
	}
	if guilds == nil {
		guilds = []models.GuildSummary{}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.roleLookups())
	for i := range guilds {
		i := i
		g.Go(func() error {
			roles, err := s.Store.GuildSupportRoles(gctx, guilds[i].GuildID)
			if err != nil {
				return err
			}
			guilds[i].SupportRoles = roles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return GuildPage{}, err
	}

	for i := range guilds {
		if guilds[i].SupportRoles == nil {
			guilds[i].SupportRoles = []string{}
		}
		guilds[i].IsConfigured = guilds[i].Configured()
	}

	return GuildPage{Guilds: guilds, Pagination: query.NewPagination(page, total)}, nil
}

// DeleteGuild is idempotent: an unknown id is not an error.
func (s *DashboardService) DeleteGuild(ctx context.Context, guildID string) error {
	guildID = strings.TrimSpace(guildID)
	if guildID == "" {
		return &ValidationError{Message: "Guild ID is required"}
	}
	affected, err := s.Store.DeleteGuild(ctx, guildID)
	if err != nil {
		return err
	}
	s.Logger.Debug().Str("guild_id", guildID).Int64("rows", affected).Msg("guild deleted")
	return nil
}

func (s *DashboardService) roleLookups() int {
	if s.RoleLookups <= 0 {
		return defaultRoleLookups
	}
	return s.RoleLookups
}
