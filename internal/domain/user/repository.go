package user

import (
	"context"

	"github.com/barbernet/backend/internal/models"
)

// Attributes carries the five tracked user attributes. The same shape feeds
// two deliberately different operations: Upsert is a full replace (a nil
// field overwrites the stored value with null), while Update coalesces (a
// nil field keeps the stored value).
type Attributes struct {
	ID    string
	Name  *string
	Email *string
	Phone *string
	Photo *string
}

type Repository interface {
	// Upsert inserts the user or, on id conflict, replaces all five
	// attributes in a single atomic statement.
	Upsert(ctx context.Context, attrs Attributes) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)

	ListAll(ctx context.Context) ([]models.User, error)

	// Update overwrites only the non-nil attributes and refreshes
	// updated_at.
	Update(ctx context.Context, attrs Attributes) (*models.User, error)

	Delete(ctx context.Context, id string) (*models.User, error)
}
