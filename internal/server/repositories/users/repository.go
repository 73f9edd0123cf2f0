package users

import (
	"context"

	"github.com/Werffios/AntilleanController/internal/server/models"
)

// Repository is the user-store contract consumed by the auth flows.
type Repository interface {
	// Create inserts the user and fills in its generated id and timestamps.
	// A collision on the email unique index maps to common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the full credential row, password hash included.
	// Only the login/registration flows may call it.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID resolves a principal for an authenticated request. The row
	// never carries the password hash.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
