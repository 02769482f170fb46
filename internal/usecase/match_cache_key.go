package usecase

import (
	"strings"

	"github.com/google/uuid"
)

const matchesCachePrefix = "matches:seeker:"

// MatchesCachePattern matches every cached ranking.
const MatchesCachePattern = matchesCachePrefix + "*"

func MatchesCacheKey(userID uuid.UUID) string {
	return matchesCachePrefix + strings.ToLower(userID.String())
}
