package authn

import (
	"context"
	"fmt"

	"github.com/supabase-community/auth-go"

	"github.com/roomify-io/roomify-server/internal/config"
)

// SessionVerifier resolves a bearer token to the owning user id.
type SessionVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// Supabase verifies session tokens against the Supabase auth service.
type Supabase struct {
	client auth.Client
}

func NewSupabase(cfg *config.Config) *Supabase {
	return &Supabase{
		client: auth.New(cfg.Supabase.ProjectRef, cfg.Supabase.AnonKey),
	}
}

func (s *Supabase) VerifyToken(_ context.Context, token string) (string, error) {
	resp, err := s.client.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	return resp.ID.String(), nil
}
