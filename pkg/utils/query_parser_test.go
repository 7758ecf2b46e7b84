package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("area_id", "a-1")
	query.Set("sub_area_id", "  ")
	query.Set("search", "ignored")

	filter := ParseFilterFromQuery(query, "area_id", "sub_area_id")

	assert.Equal(t, map[string]string{"area_id": "a-1"}, filter.Filter)
}

func TestParseFilterFromQuery_NoAllowedKeys(t *testing.T) {
	query := url.Values{"area_id": []string{"a-1"}}

	filter := ParseFilterFromQuery(query)

	assert.Empty(t, filter.Filter)
}
