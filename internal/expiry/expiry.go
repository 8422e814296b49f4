package expiry

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime assumed when the gateway token carries
// no readable exp claim. The gateway issues hour-long tokens; 57 minutes
// leaves room for clock drift on either side.
const DefaultTTL = 57 * time.Minute

// DefaultSkew is subtracted from a deadline before comparison so a token
// is refreshed slightly before the gateway would reject it.
const DefaultSkew = 30 * time.Second

// Deadline returns the instant a token issued at 'issued' with lifetime
// ttl stops being usable. Non-positive ttl falls back to DefaultTTL.
func Deadline(issued time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return issued.Add(ttl)
}

// FromJWTExp extracts the exp claim from a compact JWS token without
// verifying its signature. The client holds no gateway key material, so
// the claim is advisory only: it decides when to refresh, never whether
// to trust.
func FromJWTExp(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("no exp claim")
	}
	return exp.Time, nil
}

// Expired reports whether 'at' has reached deadline minus skew. A zero
// deadline is always expired.
func Expired(deadline, at time.Time, skew time.Duration) bool {
	if deadline.IsZero() {
		return true
	}
	return !at.Before(deadline.Add(-skew))
}
