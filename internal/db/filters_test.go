package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/models"
)

func TestTicketWhereDefaults(t *testing.T) {
	w := ticketWhere(models.TicketFilter{Status: "all", Type: "all"})
	assert.Equal(t, "", w.Clause())
	assert.Empty(t, w.Args())
}

func TestTicketWhereAllFilters(t *testing.T) {
	w := ticketWhere(models.TicketFilter{Status: "open", Type: "report", GuildID: "123", Search: "ticket-7"})
	assert.Equal(t,
		"WHERE status = $1 AND ticket_type = $2 AND guild_id = $3 AND (channel_name ILIKE $4 OR owner_id ILIKE $4)",
		w.Clause())
	assert.Equal(t, []any{"open", "report", "123", "%ticket-7%"}, w.Args())
}

func TestGuildWhereSearch(t *testing.T) {
	w := guildWhere("42")
	assert.Equal(t, "WHERE gc.guild_id ILIKE $1", w.Clause())
	assert.Equal(t, []any{"%42%"}, w.Args())

	assert.Equal(t, "", guildWhere("").Clause())
}
