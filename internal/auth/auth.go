// Package auth verifies identity-provider bearer tokens and extracts the subject
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSubject = errors.New("token carries no subject")
	ErrNoSecret       = errors.New("no identity provider secret configured")
)

// IdentityProvider describes how tokens from the external identity provider
// are checked. Issuer and Audience are only enforced when non-empty.
type IdentityProvider struct {
	Secret   string
	Issuer   string
	Audience string
}

var hmacAlgorithms = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// MakeJWT signs a token the way the identity provider does. The server never
// issues tokens itself; this is used by tests and local tooling.
func MakeJWT(subject string, method *jwt.SigningMethodHMAC, idp IdentityProvider, expiresIn time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    idp.Issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn).UTC()),
		Subject:   subject,
	}
	if idp.Audience != "" {
		claims.Audience = jwt.ClaimStrings{idp.Audience}
	}

	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(idp.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ValidateJWT checks signature, expiry and the configured issuer/audience,
// returning the token subject.
func ValidateJWT(tokenString string, idp IdentityProvider) (string, error) {
	if idp.Secret == "" {
		return "", ErrNoSecret
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(hmacAlgorithms),
		jwt.WithExpirationRequired(),
	}
	if idp.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(idp.Issuer))
	}
	if idp.Audience != "" {
		opts = append(opts, jwt.WithAudience(idp.Audience))
	}

	jwtClaims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method: " + token.Method.Alg())
		}
		return []byte(idp.Secret), nil
	}, opts...)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", errors.New("unknown claims type, cannot proceed")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}

func GetBearerToken(headers http.Header) (tokenString string, returnErr error) {
	authSlice, ok := headers["Authorization"]
	if !ok || len(authSlice) == 0 {
		return "", errors.New("authorization header missing or empty")
	}
	authHeaderVal := authSlice[0]
	if !strings.HasPrefix(strings.ToLower(authHeaderVal), "bearer ") {
		return "", errors.New("no token string found")
	}
	tokenElements := strings.SplitN(authHeaderVal, " ", 2)
	if len(tokenElements) != 2 {
		return "", errors.New("bearer presented without token")
	}
	tokenString = strings.TrimSpace(tokenElements[1])
	if tokenString == "" {
		return "", errors.New("bearer presented without token")
	}
	return tokenString, nil
}
