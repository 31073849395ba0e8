// Package auth decides whether a request carries a valid identity. It is the
// single source of truth for "is this caller who they claim to be".
package auth

import (
	"net/http"
	"strings"

	"github.com/featherpost/social-api/internal/core/token"
)

// Status is the terminal outcome of resolving a request's credentials.
// Callers map Malformed and Unauthorized to the same HTTP response; the
// distinction exists for diagnostics only.
type Status int

const (
	// StatusMalformed means no bearer credential was found in the headers.
	StatusMalformed Status = iota
	// StatusUnauthorized means a credential was present but failed
	// verification (forged, expired, or garbled).
	StatusUnauthorized
	// StatusAuthorized means the credential verified; claims are trusted.
	StatusAuthorized
)

// Resolver extracts a bearer credential from request headers and verifies it.
// It performs no database lookups: the signature is the proof of identity.
type Resolver struct {
	codec *token.Codec
}

func NewResolver(codec *token.Codec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve locates the credential — the Authorization header (with an
// optional "Bearer " scheme prefix) or a literal Token header — and runs it
// through the codec. Pure with respect to its header input.
func (r *Resolver) Resolve(h http.Header) (*token.Claims, Status) {
	raw := h.Get("Authorization")
	if raw == "" {
		raw = h.Get("Token")
	}
	if raw == "" {
		return nil, StatusMalformed
	}

	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = raw[7:]
	}

	claims, err := r.codec.Verify(raw)
	if err != nil {
		return nil, StatusUnauthorized
	}
	return claims, StatusAuthorized
}
