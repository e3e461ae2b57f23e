package shared

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and the non-empty parts into a redis key, e.g. "session:abc".
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// ParseID converts a path parameter into a positive integer id.
func ParseID(value string) (int, bool) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		log.Debug().Str("value", value).Msg("invalid id parameter")

		return 0, false
	}

	return id, true
}
