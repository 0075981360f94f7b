package query

import (
	"testing"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_EmptyClauses(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile(nil)

	require.NoError(t, err)
	assert.Equal(t, "Conference", q.Kind)
	assert.Empty(t, q.Filters)
	require.Len(t, q.Orders, 1)
	assert.Equal(t, "name", q.Orders[0].Field)
}

func TestCompile_EqualityFilter(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile([]Clause{{Field: "CITY", Operator: "EQ", Value: "London"}})

	require.NoError(t, err)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, store.Filter{Field: "city", Op: store.OpEqual, Value: "London"}, q.Filters[0])
	require.Len(t, q.Orders, 1)
	assert.Equal(t, "name", q.Orders[0].Field)
}

func TestCompile_TopicBecomesMembershipTest(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile([]Clause{{Field: "TOPIC", Operator: "EQ", Value: "Go"}})

	require.NoError(t, err)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, "topics", q.Filters[0].Field)
	assert.Equal(t, store.Contains("Go"), q.Filters[0].Value)
}

func TestCompile_TopicRejectsInequality(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	_, err := c.Compile([]Clause{{Field: "TOPIC", Operator: "GT", Value: "Go"}})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCompile_InequalityOrdersByFieldThenName(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile([]Clause{
		{Field: "CITY", Operator: "EQ", Value: "London"},
		{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
	})

	require.NoError(t, err)
	require.Len(t, q.Orders, 2)
	assert.Equal(t, store.Order{Field: "maxAttendees", Numeric: true}, q.Orders[0])
	assert.Equal(t, store.Order{Field: "name"}, q.Orders[1])
}

func TestCompile_IntValueCoercion(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile([]Clause{{Field: "MONTH", Operator: "EQ", Value: "6"}})

	require.NoError(t, err)
	assert.Equal(t, int64(6), q.Filters[0].Value)
}

func TestCompile_BadIntValue(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	_, err := c.Compile([]Clause{{Field: "MONTH", Operator: "EQ", Value: "June"}})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCompile_UnknownField(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	_, err := c.Compile([]Clause{{Field: "VENUE", Operator: "EQ", Value: "x"}})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCompile_UnknownOperator(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	_, err := c.Compile([]Clause{{Field: "CITY", Operator: "LIKE", Value: "Lon%"}})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestCompile_TwoInequalityFieldsRejected(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	_, err := c.Compile([]Clause{
		{Field: "MONTH", Operator: "GT", Value: "5"},
		{Field: "MAX_ATTENDEES", Operator: "LT", Value: "100"},
	})

	assert.ErrorIs(t, err, domain.ErrMultipleInequalityFilters)
}

func TestCompile_SameInequalityFieldTwiceAllowed(t *testing.T) {
	c := NewCompiler(ConferenceFilters())

	q, err := c.Compile([]Clause{
		{Field: "MONTH", Operator: "GTEQ", Value: "5"},
		{Field: "MONTH", Operator: "LTEQ", Value: "9"},
	})

	require.NoError(t, err)
	assert.Len(t, q.Filters, 2)
	require.Len(t, q.Orders, 2)
	assert.Equal(t, "month", q.Orders[0].Field)
}

func TestCompile_SessionTimeFilter(t *testing.T) {
	c := NewCompiler(SessionFilters())

	q, err := c.Compile([]Clause{{Field: "TIME", Operator: "LT", Value: "19:00"}})

	require.NoError(t, err)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, "startTime", q.Filters[0].Field)
	assert.Equal(t, int64(19*60), q.Filters[0].Value)
	assert.Equal(t, store.Order{Field: "startTime", Numeric: true}, q.Orders[0])
}

func TestCompile_SessionBadTime(t *testing.T) {
	c := NewCompiler(SessionFilters())

	_, err := c.Compile([]Clause{{Field: "TIME", Operator: "LT", Value: "evening"}})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}
