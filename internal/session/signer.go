// Package session issues signed turn tokens. A token carries the round state
// a client acted on so a resumed client can prove which turn it saw.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/form3tech-oss/jwt-go"

	"github.com/benbrunton/pusoy-dos/internal/domain"
)

var (
	ErrIncompleteConfig = errors.New("session config is incomplete")
	ErrInvalidToken     = errors.New("invalid session token")
)

// Claims are the token contents. Subject is the game id.
type Claims struct {
	Round domain.RoundSnapshot `json:"round"`
	jwt.StandardClaims
}

// Signer signs and verifies HS256 turn tokens.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret, issuer string, ttl time.Duration) (*Signer, error) {
	if secret == "" || issuer == "" || ttl <= 0 {
		return nil, ErrIncompleteConfig
	}
	return &Signer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Sign issues a token for the given game and round state.
func (s *Signer) Sign(gameID string, round domain.RoundSnapshot) (string, error) {
	if gameID == "" {
		return "", fmt.Errorf("game id is required")
	}

	now := s.now()
	claims := Claims{
		Round: round,
		StandardClaims: jwt.StandardClaims{
			Issuer:    s.issuer,
			Subject:   gameID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
			Id:        fmt.Sprintf("%d-%d", now.UnixNano(), rand.Int63()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, expiry and issuer and returns the claims. Expiry
// is judged against the signer's clock.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}
	return claims, nil
}
