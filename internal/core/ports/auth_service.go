package ports

import (
	"context"

	"github.com/tradelog/trade-journal/internal/core/domain"
)

// AuthService implements registration and credential-based login. Both
// return a signed bearer token alongside the account.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// LoginLimiter throttles repeated failed logins for a single email.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
