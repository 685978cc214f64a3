package i

import (
	"time"
)

// Tokenizer issues and checks the bearer tokens guarding the admin routes.
type Tokenizer interface {
	// Generate creates a token for subject carrying claims, valid for ttl.
	Generate(subject string, claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
