package session

import (
	"errors"
	"testing"
	"time"

	"github.com/benbrunton/pusoy-dos/internal/domain"
)

func testRound() domain.RoundSnapshot {
	table := domain.MustBuildMove(
		domain.Card{Rank: domain.Nine, Suit: domain.Clubs},
		domain.Card{Rank: domain.Nine, Suit: domain.Spades},
	)
	return domain.NewRound([]domain.PlayerID{1, 2, 3}, 2, table, 1, false).Export()
}

func mustSigner(t *testing.T, secret, issuer string) *Signer {
	t.Helper()
	s, err := NewSigner(secret, issuer, time.Hour)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	return s
}

func TestSignVerifyCarriesRound(t *testing.T) {
	s := mustSigner(t, "test-secret", "pusoydos")
	round := testRound()

	token, err := s.Sign("game-1", round)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Subject != "game-1" {
		t.Fatalf("sub = %s, want game-1", claims.Subject)
	}
	if claims.Issuer != "pusoydos" {
		t.Fatalf("iss = %s, want pusoydos", claims.Issuer)
	}
	got := domain.RestoreRound(claims.Round)
	if !got.Equal(domain.RestoreRound(round)) {
		t.Fatalf("round = %+v, want %+v", claims.Round, round)
	}
}

func TestVerifyRejects(t *testing.T) {
	s := mustSigner(t, "test-secret", "pusoydos")
	token, err := s.Sign("game-1", testRound())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	expired := mustSigner(t, "test-secret", "pusoydos")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.Sign("game-1", testRound())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	later := mustSigner(t, "test-secret", "pusoydos")
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	tests := []struct {
		name   string
		signer *Signer
		token  string
	}{
		{"wrong secret", mustSigner(t, "other-secret", "pusoydos"), token},
		{"wrong issuer", mustSigner(t, "test-secret", "someone-else"), token},
		{"expired", s, stale},
		{"expired on the verifier clock", later, token},
		{"garbage", s, "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.signer.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestVerifyUsesSignerClock(t *testing.T) {
	past := mustSigner(t, "test-secret", "pusoydos")
	past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := past.Sign("game-1", testRound())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := past.Verify(token); err != nil {
		t.Fatalf("token is live on the signer's clock: %v", err)
	}
}

func TestNewSignerRequiresConfig(t *testing.T) {
	if _, err := NewSigner("", "pusoydos", time.Hour); !errors.Is(err, ErrIncompleteConfig) {
		t.Fatalf("err = %v, want ErrIncompleteConfig", err)
	}
	if _, err := NewSigner("secret", "pusoydos", 0); !errors.Is(err, ErrIncompleteConfig) {
		t.Fatalf("err = %v, want ErrIncompleteConfig", err)
	}
}

func TestSignRequiresGameID(t *testing.T) {
	s := mustSigner(t, "test-secret", "pusoydos")
	if _, err := s.Sign("", testRound()); err == nil {
		t.Fatal("expected error for empty game id")
	}
}
