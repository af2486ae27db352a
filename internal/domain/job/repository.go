package job

import (
	"context"

	"github.com/barbernet/backend/internal/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]models.Job, error)

	// ListByLocation matches the location column by case-insensitive
	// substring; ListByType is an exact match on the canonical label.
	ListByLocation(ctx context.Context, location string) ([]models.Job, error)

	ListByType(ctx context.Context, jobType string) ([]models.Job, error)

	ListByOwner(ctx context.Context, ownerID string) ([]models.Job, error)

	GetByID(ctx context.Context, id string) (*models.Job, error)

	Create(ctx context.Context, j *models.Job) error

	UpdatePartial(ctx context.Context, id, ownerID string, patch Patch) (*models.Job, error)

	Delete(ctx context.Context, id, ownerID string) (*models.Job, error)
}
