package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/query"
)

const (
	GuildsDefaultLimit  = 10
	TicketsDefaultLimit = 20

	StatsDays      = 7
	TopGuildsLimit = 10

	defaultRoleLookups = 4
)

// Store is the read/write surface the dashboard needs from Postgres.
type Store interface {
	ListGuilds(ctx context.Context, search string, page query.Page) ([]models.GuildSummary, int, error)
	GuildSupportRoles(ctx context.Context, guildID string) ([]string, error)
	DeleteGuild(ctx context.Context, guildID string) (int64, error)

	ListTickets(ctx context.Context, f models.TicketFilter, page query.Page) ([]models.TicketLog, int, error)
	InsertTicket(ctx context.Context, t models.NewTicket) (models.TicketLog, error)

	CountGuilds(ctx context.Context) (int, error)
	CountConfiguredGuilds(ctx context.Context) (int, error)
	CountTickets(ctx context.Context, status string) (int, error)
	TicketTypeStats(ctx context.Context) ([]models.TicketTypeStat, error)
	DailyTicketStats(ctx context.Context, days int) ([]models.DailyStat, error)
	TopGuilds(ctx context.Context, limit int) ([]models.TopGuild, error)
	AverageResolutionSeconds(ctx context.Context) (*float64, error)
}

type DashboardService struct {
	Store     Store
	Validator *validator.Validate
	Logger    zerolog.Logger
	// RoleLookups caps concurrent support role queries for one guild page.
	RoleLookups int
}

func NewDashboardService(store Store, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		Store:       store,
		Validator:   NewValidator(),
		Logger:      logger,
		RoleLookups: defaultRoleLookups,
	}
}

type GuildPage struct {
	Guilds     []models.GuildSummary `json:"guilds"`
	Pagination query.Pagination      `json:"pagination"`
}

type TicketPage struct {
	Tickets    []models.TicketSummary `json:"tickets"`
	Pagination query.Pagination       `json:"pagination"`
}
