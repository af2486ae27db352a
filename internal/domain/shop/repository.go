package shop

import (
	"context"

	"github.com/barbernet/backend/internal/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]models.Shop, error)

	// ListByLocation matches the location column by case-insensitive
	// substring.
	ListByLocation(ctx context.Context, location string) ([]models.Shop, error)

	ListByOwner(ctx context.Context, ownerID string) ([]models.Shop, error)

	GetByID(ctx context.Context, id string) (*models.Shop, error)

	Create(ctx context.Context, s *models.Shop) error

	UpdatePartial(ctx context.Context, id, ownerID string, patch Patch) (*models.Shop, error)

	Delete(ctx context.Context, id, ownerID string) (*models.Shop, error)
}
