package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

// ErrNoMatchingKey is returned when the key set holds no RSA key with
// the requested key id.
var ErrNoMatchingKey = errors.New("no RSA key in JWKS")

// JWK is the subset of an RFC 7517 key entry needed to rebuild an RSA
// public key.
type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []JWK `json:"keys"`
}

// PublicKey rebuilds the RSA public key from the base64url modulus and
// exponent.
func (k JWK) PublicKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}

// KeyProvider resolves a key id to an RSA public key.
type KeyProvider interface {
	KeyByID(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// JWKSCache fetches the identity provider's key set over HTTPS and
// caches it for a TTL so the gate does not hit the provider on every
// request.
type JWKSCache struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu      sync.RWMutex
	keys    []JWK
	fetched time.Time
}

// NewJWKSCache creates a cache over the given JWKS endpoint.
func NewJWKSCache(url string, ttl time.Duration) *JWKSCache {
	return &JWKSCache{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		ttl:    ttl,
	}
}

// KeyByID returns the public key matching kid, refreshing the cached
// set when it has gone stale.
func (c *JWKSCache) KeyByID(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, err := c.currentKeys(ctx)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		if k.Kid == kid && k.Kty == "RSA" {
			return k.PublicKey()
		}
	}

	return nil, ErrNoMatchingKey
}

func (c *JWKSCache) currentKeys(ctx context.Context) ([]JWK, error) {
	c.mu.RLock()
	if c.keys != nil && time.Since(c.fetched) < c.ttl {
		keys := c.keys
		c.mu.RUnlock()
		return keys, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if c.keys != nil && time.Since(c.fetched) < c.ttl {
		return c.keys, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build JWKS request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS endpoint returned status %d", res.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	c.keys = doc.Keys
	c.fetched = time.Now()
	return c.keys, nil
}
