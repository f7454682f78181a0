package types

import (
	"github.com/google/uuid"
)

// TokenClaims represents the identity carried by a validated bearer token.
// An invalid or missing token uniformly yields no claims at all.
type TokenClaims struct {
	UserID uuid.UUID
	Name   string
}
