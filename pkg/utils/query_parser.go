package utils

import (
	"net/url"
	"strings"

	"region-service/pkg/types"
)

// ParseFilterFromQuery берет из query только разрешенные ключи. Пустое значение фильтром не считается.
func ParseFilterFromQuery(query url.Values, allowed ...string) types.Filter {
	filter := types.Filter{Filter: make(map[string]string)}
	for _, key := range allowed {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			filter.Filter[key] = value
		}
	}
	return filter
}
