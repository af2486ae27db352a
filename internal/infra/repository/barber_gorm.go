package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbernet/backend/internal/domain/barber"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) ListAll(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) ListByCity(
	ctx context.Context,
	city string,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Order("created_at DESC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		First(&b, "id = ?", id).Error; err != nil {
		return nil, normalizeLookupErr(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) Create(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

// UpdatePartial touches only the columns present in the patch, refreshes
// updated_at, and matches on id AND owner_id. A zero-row match is reported
// as "not_owner" whether the row is missing or owned by someone else.
func (r *BarberGormRepository) UpdatePartial(
	ctx context.Context,
	id string,
	ownerID string,
	patch domain.Patch,
) (*models.Barber, error) {

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, httperr.ErrBusiness("empty_update")
	}

	var b models.Barber
	tx := r.db.WithContext(ctx).
		Model(&b).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(changes)

	if tx.Error != nil {
		if normalizeLookupErr(tx.Error) == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("not_owner")
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return &b, nil
}

func (r *BarberGormRepository) Delete(
	ctx context.Context,
	id string,
	ownerID string,
) (*models.Barber, error) {

	var b models.Barber
	tx := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&b)

	if tx.Error != nil {
		if normalizeLookupErr(tx.Error) == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("not_owner")
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return &b, nil
}

// Compile-time check
var _ domain.Repository = (*BarberGormRepository)(nil)
