package user

import "context"

// Repository defines the interface for account persistence
type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// Update persists role and locale changes
	Update(ctx context.Context, account *Account) error

	// FindByUsername retrieves an account by username.
	// Returns ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
