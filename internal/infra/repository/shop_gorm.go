package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbernet/backend/internal/domain/shop"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/models"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) ListAll(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) ListByLocation(
	ctx context.Context,
	location string,
) ([]models.Shop, error) {

	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Where("location ILIKE ?", "%"+location+"%").
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Shop, error) {

	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Shop, error) {

	var s models.Shop
	if err := r.db.WithContext(ctx).
		First(&s, "id = ?", id).Error; err != nil {
		return nil, normalizeLookupErr(err)
	}
	return &s, nil
}

func (r *ShopGormRepository) Create(ctx context.Context, s *models.Shop) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ShopGormRepository) UpdatePartial(
	ctx context.Context,
	id string,
	ownerID string,
	patch domain.Patch,
) (*models.Shop, error) {

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, httperr.ErrBusiness("empty_update")
	}

	var s models.Shop
	tx := r.db.WithContext(ctx).
		Model(&s).
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

	return &s, nil
}

func (r *ShopGormRepository) Delete(
	ctx context.Context,
	id string,
	ownerID string,
) (*models.Shop, error) {

	var s models.Shop
	tx := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&s)

	if tx.Error != nil {
		if normalizeLookupErr(tx.Error) == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("not_owner")
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return &s, nil
}

// Compile-time check
var _ domain.Repository = (*ShopGormRepository)(nil)
