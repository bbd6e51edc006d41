// Package servicetest provides an in-memory service.Store for handler and service tests.
package servicetest

import (
	"context"
	"sync"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

// FakeStore returns canned data and records what it was asked. Set Err to make
// every call fail, or FailOn to fail one named operation.
type FakeStore struct {
	mu sync.Mutex

	Guilds     []models.GuildSummary
	GuildTotal int
	Roles      map[string][]string

	Tickets     []models.TicketLog
	TicketTotal int
	Inserted    []models.NewTicket
	Deleted     []string

	GuildCount       int
	ConfiguredCount  int
	TicketCounts     map[string]int
	TypeStats        []models.TicketTypeStat
	Daily            []models.DailyStat
	Top              []models.TopGuild
	AvgResolutionSec *float64

	Err    error
	FailOn string

	LastSearch       string
	LastPage         query.Page
	LastTicketFilter models.TicketFilter
	Calls            []string
}

func (f *FakeStore) call(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, op)
	if f.Err != nil && (f.FailOn == "" || f.FailOn == op) {
		return f.Err
	}
	return nil
}

func (f *FakeStore) ListGuilds(ctx context.Context, search string, page query.Page) ([]models.GuildSummary, int, error) {
	if err := f.call("ListGuilds"); err != nil {
		return nil, 0, err
	}
	f.mu.Lock()
	f.LastSearch, f.LastPage = search, page
	f.mu.Unlock()
	out := make([]models.GuildSummary, len(f.Guilds))
	copy(out, f.Guilds)
	return out, f.GuildTotal, nil
}

func (f *FakeStore) GuildSupportRoles(ctx context.Context, guildID string) ([]string, error) {
	if err := f.call("GuildSupportRoles"); err != nil {
		return nil, err
	}
	return f.Roles[guildID], nil
}

func (f *FakeStore) DeleteGuild(ctx context.Context, guildID string) (int64, error) {
	if err := f.call("DeleteGuild"); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, guildID)
	for _, g := range f.Guilds {
		if g.GuildID == guildID {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeStore) ListTickets(ctx context.Context, filter models.TicketFilter, page query.Page) ([]models.TicketLog, int, error) {
	if err := f.call("ListTickets"); err != nil {
		return nil, 0, err
	}
	f.mu.Lock()
	f.LastTicketFilter, f.LastPage = filter, page
	f.mu.Unlock()
	return f.Tickets, f.TicketTotal, nil
}

func (f *FakeStore) InsertTicket(ctx context.Context, t models.NewTicket) (models.TicketLog, error) {
	if err := f.call("InsertTicket"); err != nil {
		return models.TicketLog{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Inserted = append(f.Inserted, t)
	owner := t.OwnerID
	return models.TicketLog{
		ID:           len(f.Inserted),
		GuildID:      t.GuildID,
		ChannelID:    t.ChannelID,
		ChannelName:  t.ChannelName,
		OwnerID:      &owner,
		TicketType:   t.TicketType,
		TicketNumber: t.TicketNumber,
		Status:       t.Status,
	}, nil
}

func (f *FakeStore) CountGuilds(ctx context.Context) (int, error) {
	return f.GuildCount, f.call("CountGuilds")
}

func (f *FakeStore) CountConfiguredGuilds(ctx context.Context) (int, error) {
	return f.ConfiguredCount, f.call("CountConfiguredGuilds")
}

func (f *FakeStore) CountTickets(ctx context.Context, status string) (int, error) {
	return f.TicketCounts[status], f.call("CountTickets")
}

func (f *FakeStore) TicketTypeStats(ctx context.Context) ([]models.TicketTypeStat, error) {
	return f.TypeStats, f.call("TicketTypeStats")
}

func (f *FakeStore) DailyTicketStats(ctx context.Context, days int) ([]models.DailyStat, error) {
	return f.Daily, f.call("DailyTicketStats")
}

func (f *FakeStore) TopGuilds(ctx context.Context, limit int) ([]models.TopGuild, error) {
	return f.Top, f.call("TopGuilds")
}

func (f *FakeStore) AverageResolutionSeconds(ctx context.Context) (*float64, error) {
	return f.AvgResolutionSec, f.call("AverageResolutionSeconds")
}
