package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding API access tokens.
type Tokenizer interface {
	// Generate creates a token for the subject with the given expiration duration.
	Generate(subject string, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
