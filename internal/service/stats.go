package service

import (
	"context"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/utils"
)

// Stats runs each aggregate one after another. Any failure aborts the whole
// result; the aggregates are not read in one transaction.
func (s *DashboardService) Stats(ctx context.Context) (models.Stats, error) {
	var (
		st  models.Stats
		err error
	)

	if st.Overview.TotalGuilds, err = s.Store.CountGuilds(ctx); err != nil {
		return models.Stats{}, err
	}
	if st.Overview.ConfiguredGuilds, err = s.Store.CountConfiguredGuilds(ctx); err != nil {
		return models.Stats{}, err
	}
	if st.Overview.TotalTickets, err = s.Store.CountTickets(ctx, ""); err != nil {
		return models.Stats{}, err
	}
	if st.Overview.OpenTickets, err = s.Store.CountTickets(ctx, models.TicketStatusOpen); err != nil {
		return models.Stats{}, err
	}
	if st.Overview.ClosedTickets, err = s.Store.CountTickets(ctx, models.TicketStatusClosed); err != nil {
		return models.Stats{}, err
	}
	if st.TicketTypes, err = s.Store.TicketTypeStats(ctx); err != nil {
		return models.Stats{}, err
	}
	if st.DailyStats, err = s.Store.DailyTicketStats(ctx, StatsDays); err != nil {
		return models.Stats{}, err
	}
	if st.TopGuilds, err = s.Store.TopGuilds(ctx, TopGuildsLimit); err != nil {
		return models.Stats{}, err
	}

	avg, err := s.Store.AverageResolutionSeconds(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	if avg != nil {
		st.Overview.AvgResolutionHours = utils.SecondsToWholeHours(*avg)
	}

	if st.TicketTypes == nil {
		st.TicketTypes = []models.TicketTypeStat{}
	}
	if st.DailyStats == nil {
		st.DailyStats = []models.DailyStat{}
	}
	if st.TopGuilds == nil {
		st.TopGuilds = []models.TopGuild{}
	}
	return st, nil
}
