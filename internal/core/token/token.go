// Package token issues and verifies the signed bearer credentials that bind
// a caller to an account identity.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is the fixed validity window of every issued token. The codec
// deliberately does not support configurable lifetimes.
const Lifetime = 30 * 24 * time.Hour

// Verification failures are values, never panics, regardless of how
// mangled the input token is.
var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature mismatch")
	ErrExpired      = errors.New("token has expired")
)

// Claims is the payload carried by a token: the asserted identity plus the
// embedded expiration instant. Claims are minted at login and reconstructed
// on verification; a verified instance is never persisted.
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	UID      string `json:"uid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a process-wide symmetric keyring.
// Keys are addressed by kid, embedded in the token header, so the active
// signing key can rotate without invalidating tokens minted under an older
// one. The keyring is fixed at startup and safe for concurrent use.
type Codec struct {
	keys      map[string]string
	activeKid string
	now       func() time.Time
}

// NewCodec builds a Codec from a kid→secret keyring. activeKid selects the
// key used for issuance and must be present in the keyring.
func NewCodec(keys map[string]string, activeKid string) (*Codec, error) {
	if len(keys) == 0 {
		return nil, errors.New("token: empty keyring")
	}
	if _, ok := keys[activeKid]; !ok {
		return nil, fmt.Errorf("token: active kid %q not in keyring", activeKid)
	}
	return &Codec{keys: keys, activeKid: activeKid, now: time.Now}, nil
}

// Issue mints a token for the given identity, expiring Lifetime from now.
func (c *Codec) Issue(username, userID, uid string) (string, error) {
	claims := Claims{
		Username: username,
		UserID:   userID,
		UID:      uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Add(Lifetime)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = c.activeKid
	return t.SignedString([]byte(c.keys[c.activeKid]))
}

// Verify checks the signature and the embedded expiration and returns the
// reconstructed claims. Tokens without a kid header are checked against the
// active key; tokens with an unknown kid fail as forged.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return []byte(c.keys[c.activeKid]), nil
		}
		secret, ok := c.keys[kid]
		if !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}
