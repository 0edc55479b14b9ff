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

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrKeyNotFound   = errors.New("jwks: key not found")
	ErrMissingKeyID  = errors.New("jwks: kid header not found")
	ErrJWKSNotConfig = errors.New("jwks: provider URL not configured")
)

// refreshInterval throttles refetches triggered by unknown key ids.
const refreshInterval = time.Minute

type JWKS struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Provider caches RSA signing keys published at a JWKS endpoint.
type Provider struct {
	mu         sync.RWMutex
	keys       map[string]*rsa.PublicKey
	url        string
	httpClient *http.Client
	refreshed  time.Time
}

func NewProvider(jwksURL string) *Provider {
	return &Provider{
		url:        jwksURL,
		keys:       make(map[string]*rsa.PublicKey),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// KeyFunc is a jwt.Keyfunc for RS256 tokens.
func (p *Provider) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, ErrMissingKeyID
	}

	return p.GetKey(context.Background(), kid)
}

func (p *Provider) GetKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if p.url == "" {
		return nil, ErrJWKSNotConfig
	}

	p.mu.RLock()
	key, exists := p.keys[kid]
	p.mu.RUnlock()
	if exists {
		return key, nil
	}

	if err := p.refresh(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, exists = p.keys[kid]
	p.mu.RUnlock()
	if !exists {
		return nil, ErrKeyNotFound
	}
	return key, nil
}

func (p *Provider) refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.refreshed) < refreshInterval {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("jwks: build request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jwks: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("jwks: decode: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.PublicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	p.keys = keys
	p.refreshed = time.Now()
	return nil
}

func (k *JSONWebKey) PublicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(nBytes)

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}
