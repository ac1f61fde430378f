package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
	assert.Zero(t, f.Offset)
	assert.True(t, f.WithPagination)
	assert.Empty(t, f.Search)
}

func TestParseFilterLimitIsCapped(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"9999"}})
	assert.Equal(t, MaxLimit, f.Limit)
}

func TestParseFilterPageComputesOffset(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"20"}, "page": {"3"}})
	assert.Equal(t, 40, f.Offset)
}

func TestParseFilterExplicitOffsetWins(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"20"}, "page": {"3"}, "offset": {"5"}})
	assert.Equal(t, 5, f.Offset)
}

func TestParseFilterSortAndFilterKeys(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{
		"search":           {"conveyor"},
		"sort[created_at]": {"DESC"},
		"sort[bogus]":      {"sideways"},
		"filter[status]":   {"New"},
		"filter[team_id]":  {"42"},
		"withPagination":   {"false"},
	})

	assert.Equal(t, "conveyor", f.Search)
	assert.Equal(t, "desc", f.Sort["created_at"])
	_, ok := f.Sort["bogus"]
	assert.False(t, ok)
	assert.Equal(t, "New", f.Filter["status"])
	assert.Equal(t, "42", f.Filter["team_id"])
	assert.False(t, f.WithPagination)
}
