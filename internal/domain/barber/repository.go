package barber

import (
	"context"

	"github.com/barbernet/backend/internal/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]models.Barber, error)

	// ListByCity matches the city column by case-insensitive substring.
	ListByCity(ctx context.Context, city string) ([]models.Barber, error)

	ListByOwner(ctx context.Context, ownerID string) ([]models.Barber, error)

	GetByID(ctx context.Context, id string) (*models.Barber, error)

	Create(ctx context.Context, b *models.Barber) error

	// UpdatePartial applies the patch to the row matching both id and
	// owner_id. Zero matched rows mean "not owner or missing" and the two
	// cases are indistinguishable on purpose.
	UpdatePartial(ctx context.Context, id, ownerID string, patch Patch) (*models.Barber, error)

	Delete(ctx context.Context, id, ownerID string) (*models.Barber, error)
}
