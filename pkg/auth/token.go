package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of Supabase access-token claims the service reads.
// The role claim is ignored; roles come from the users table.
type Claims struct {
	Subject string
	Email   string
}

// Verifier accepts HS256 tokens signed with the project secret and RS256
// tokens signed with a key from the project's JWKS.
type Verifier struct {
	secret []byte
	jwks   *Provider
}

func NewVerifier(secret string, jwks *Provider) *Verifier {
	v := &Verifier{jwks: jwks}
	if secret != "" {
		v.secret = []byte(secret)
	}
	return v
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, v.keyFunc,
		jwt.WithValidMethods([]string{"HS256", "RS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	email, _ := mc["email"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}
	return &Claims{Subject: sub, Email: email}, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, errors.New("HS256 token received but SUPABASE_JWT_SECRET is not configured")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.jwks == nil {
			return nil, ErrJWKSNotConfig
		}
		return v.jwks.KeyFunc(token)
	}
	return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
}
