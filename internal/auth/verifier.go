package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidHeader covers an unparseable token header or a token
	// signed with a symmetric algorithm; only RS256 is accepted.
	ErrInvalidHeader = errors.New("use an RS256 signed JWT access token")
	// ErrTokenExpired is returned for a token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
	// ErrInvalidClaims is returned for an audience or issuer mismatch.
	ErrInvalidClaims = errors.New("invalid audience or issuer claims")
	// ErrUnparseable is returned for any other verification failure.
	ErrUnparseable = errors.New("unable to parse authentication token")
)

// Claims carries the registered claims plus the profile fields the
// login callback reads from an identity token.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// Verifier validates RS256 bearer tokens against a remote key set.
type Verifier struct {
	keys     KeyProvider
	audience string
	issuer   string
}

// NewVerifier creates a Verifier checking tokens against the given key
// provider, audience, and issuer.
func NewVerifier(keys KeyProvider, audience, issuer string) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: audience,
		issuer:   issuer,
	}
}

// Verify checks the token's algorithm, signature, audience, issuer, and
// expiry, returning its claims. Failures map onto the sentinel errors
// above so callers can answer with distinct messages.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	// Inspect the unverified header first: the signing algorithm must be
	// asymmetric and the key id picks the JWKS entry.
	parser := jwt.NewParser()
	unverified, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, ErrInvalidHeader
	}

	alg, _ := unverified.Header["alg"].(string)
	if alg == "" || strings.HasPrefix(alg, "HS") {
		return nil, ErrInvalidHeader
	}

	kid, _ := unverified.Header["kid"].(string)
	key, err := v.keys.KeyByID(ctx, kid)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, ErrInvalidHeader
			}
			return key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidClaims
		default:
			return nil, ErrUnparseable
		}
	}

	return claims, nil
}
