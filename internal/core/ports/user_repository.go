package ports

import (
	"context"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/user"
)

// UserRepository provides read access to users. Orders are always placed on
// behalf of an existing user, so placement looks the user up before committing.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
