package domain

import "time"

// TokenKind tags issued tokens with their purpose.
type TokenKind string

const (
	TokenKindAccess TokenKind = "ACCESS"
)

// Token represents issued bearer token metadata. Tokens are never persisted
// and never revoked server-side; they self-expire at ExpiresAt.
type Token struct {
	SubjectID string
	Kind      TokenKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}
