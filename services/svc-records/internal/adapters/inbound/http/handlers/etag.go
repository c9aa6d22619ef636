package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	headerETag         = "ETag"
	headerIfNoneMatch  = "If-None-Match"
	headerCacheControl = "Cache-Control"
)

// contentETag hashes the JSON form of v. Map keys are marshalled in sorted
// order, so equal result sets always produce the same tag.
func contentETag(v any) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding etag content: %w", err)
	}

	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body)), nil
}

// etagMatches applies weak comparison, as If-None-Match requires.
func etagMatches(ifNoneMatch, etag string) bool {
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == etag {
			return true
		}
	}

	return false
}
