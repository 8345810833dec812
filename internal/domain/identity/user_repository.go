package identity

import (
	"context"
)

// UserRepository provides access to user accounts
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *User) error
}
