package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereEmpty(t *testing.T) {
	var w Where
	assert.Equal(t, "", w.Clause())
	assert.Empty(t, w.Args())

	limit, args := w.Paginate(Page{Number: 1, Limit: 10})
	assert.Equal(t, "LIMIT $1 OFFSET $2", limit)
	assert.Equal(t, []any{10, 0}, args)
}

func TestWhereTicketFilters(t *testing.T) {
	var w Where
	w.EqUnless("status", "closed", All)
	w.EqUnless("ticket_type", "support", All)
	w.EqUnless("guild_id", "123", "")
	w.ILike("bob", "channel_name", "owner_id")

	assert.Equal(t,
		"WHERE status = $1 AND ticket_type = $2 AND guild_id = $3 AND (channel_name ILIKE $4 OR owner_id ILIKE $4)",
		w.Clause())
	assert.Equal(t, []any{"closed", "support", "123", "%bob%"}, w.Args())

	limit, args := w.Paginate(Page{Number: 3, Limit: 20})
	assert.Equal(t, "LIMIT $5 OFFSET $6", limit)
	assert.Equal(t, []any{"closed", "support", "123", "%bob%", 20, 40}, args)

	// counting must keep working after the page query was built
	assert.Equal(t, []any{"closed", "support", "123", "%bob%"}, w.Args())
}

func TestWhereSkipsSentinels(t *testing.T) {
	var w Where
	w.EqUnless("status", All, All)
	w.EqUnless("ticket_type", "", All)
	w.EqUnless("guild_id", "", "")
	w.ILike("", "guild_id")

	assert.Empty(t, w.Predicates())
	assert.Equal(t, "", w.Clause())
}

func TestWherePlaceholdersFollowInsertionOrder(t *testing.T) {
	var w Where
	w.ILike("42", "gc.guild_id")
	w.EqUnless("status", "open", All)

	require.Equal(t, []string{"gc.guild_id ILIKE $1", "status = $2"}, w.Predicates())
	assert.Equal(t, []any{"%42%", "open"}, w.Args())
}

func TestPageOffset(t *testing.T) {
	for _, tc := range []struct {
		page, limit, offset int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 20, 80},
	} {
		assert.Equal(t, tc.offset, Page{Number: tc.page, Limit: tc.limit}.Offset())
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: 20}, ParsePage("", "", 20))
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("0", "abc", 10))
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("-3", "-1", 10))
	assert.Equal(t, Page{Number: 4, Limit: 25}, ParsePage("4", "25", 10))
	assert.Equal(t, Page{Number: 2, Limit: MaxPageLimit}, ParsePage("2", "5000", 10))
}

func TestParsePageHugeNumberKeepsOffsetPositive(t *testing.T) {
	p := ParsePage("922337203685477581", "100", 10)
	assert.Equal(t, math.MaxInt/100, p.Number)
	assert.Positive(t, p.Offset())

	limit, args := (&Where{}).Paginate(p)
	assert.Equal(t, "LIMIT $1 OFFSET $2", limit)
	assert.GreaterOrEqual(t, args[1].(int), 0)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(Page{Number: 1, Limit: 10}, 0)
	assert.Equal(t, Pagination{CurrentPage: 1}, p)

	p = NewPagination(Page{Number: 2, Limit: 10}, 25)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(Page{Number: 3, Limit: 10}, 30)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
}
