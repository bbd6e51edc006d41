package models

import "time"

const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

type GuildConfig struct {
	GuildID             string    `json:"guild_id"`
	CategoryID          *string   `json:"category_id"`
	PanelChannelID      *string   `json:"panel_channel_id"`
	TranscriptChannelID *string   `json:"transcript_channel_id"`
	TicketCounter       int       `json:"ticket_counter"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Configured reports whether all three channel references are set.
func (g GuildConfig) Configured() bool {
	return g.CategoryID != nil && g.PanelChannelID != nil && g.TranscriptChannelID != nil
}

type GuildSummary struct {
	GuildConfig
	SupportRoleCount  int        `json:"support_role_count"`
	TotalTickets      int        `json:"total_tickets"`
	OpenTickets       int        `json:"open_tickets"`
	LastTicketCreated *time.Time `json:"last_ticket_created"`
	SupportRoles      []string   `json:"support_roles"`
	IsConfigured      bool       `json:"is_configured"`
}

type SupportRole struct {
	ID      int    `json:"id"`
	GuildID string `json:"guild_id"`
	RoleID  string `json:"role_id"`
}

type TicketLog struct {
	ID           int        `json:"id"`
	GuildID      string     `json:"guild_id"`
	ChannelID    *string    `json:"channel_id"`
	ChannelName  *string    `json:"channel_name"`
	OwnerID      *string    `json:"owner_id"`
	TicketType   *string    `json:"ticket_type"`
	TicketNumber *int       `json:"ticket_number"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ClosedAt     *time.Time `json:"closed_at"`
	ClosedBy     *string    `json:"closed_by"`
}

type TicketSummary struct {
	TicketLog
	ResolutionHours *float64 `json:"resolution_hours"`
}

// TicketFilter holds the raw listing filters. "all" and "" mean unfiltered.
type TicketFilter struct {
	Status  string
	Type    string
	GuildID string
	Search  string
}

type NewTicket struct {
	GuildID      string  `json:"guild_id" validate:"required,snowflake"`
	ChannelID    *string `json:"channel_id"`
	ChannelName  *string `json:"channel_name"`
	OwnerID      string  `json:"owner_id" validate:"required,snowflake"`
	TicketType   *string `json:"ticket_type"`
	TicketNumber *int    `json:"ticket_number"`
	Status       string  `json:"status" validate:"omitempty,oneof=open closed"`
}

type Overview struct {
	TotalGuilds        int `json:"totalGuilds"`
	ConfiguredGuilds   int `json:"configuredGuilds"`
	TotalTickets       int `json:"totalTickets"`
	OpenTickets        int `json:"openTickets"`
	ClosedTickets      int `json:"closedTickets"`
	AvgResolutionHours int `json:"avgResolutionHours"`
}

type TicketTypeStat struct {
	TicketType  string `json:"ticket_type"`
	Count       int    `json:"count"`
	OpenCount   int    `json:"open_count"`
	ClosedCount int    `json:"closed_count"`
}

type DailyStat struct {
	Date           string `json:"date"`
	TicketsCreated int    `json:"tickets_created"`
	TicketsClosed  int    `json:"tickets_closed"`
}

type TopGuild struct {
	GuildID           string     `json:"guildId"`
	IsConfigured      bool       `json:"isConfigured"`
	TicketCount       int        `json:"ticketCount"`
	OpenTickets       int        `json:"openTickets"`
	LastTicketCreated *time.Time `json:"lastTicketCreated"`
}

type Stats struct {
	Overview    Overview         `json:"overview"`
	TicketTypes []TicketTypeStat `json:"ticketTypes"`
	DailyStats  []DailyStat      `json:"dailyStats"`
	TopGuilds   []TopGuild       `json:"topGuilds"`
}
