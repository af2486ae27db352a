package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbernet/backend/internal/domain/user"
	"github.com/barbernet/backend/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Upsert is a single atomic insert-or-update keyed by id. Every call is a
// full replace of the five tracked attributes, so a nil attribute lands as
// null in the row. This is intentionally different from Update.
func (r *UserGormRepository) Upsert(
	ctx context.Context,
	attrs domain.Attributes,
) (*models.User, error) {

	u := models.User{
		ID:    attrs.ID,
		Name:  attrs.Name,
		Email: attrs.Email,
		Phone: attrs.Phone,
		Photo: attrs.Photo,
	}

	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns(
					[]string{"name", "email", "phone", "photo", "updated_at"},
				),
			},
			clause.Returning{},
		).
		Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update coalesces: each attribute is overwritten only when a non-nil value
// was supplied, otherwise the stored value is kept.
func (r *UserGormRepository) Update(
	ctx context.Context,
	attrs domain.Attributes,
) (*models.User, error) {

	var u models.User
	tx := r.db.WithContext(ctx).
		Model(&u).
		Clauses(clause.Returning{}).
		Where("id = ?", attrs.ID).
		Updates(map[string]any{
			"name":  gorm.Expr("COALESCE(?, name)", attrs.Name),
			"email": gorm.Expr("COALESCE(?, email)", attrs.Email),
			"phone": gorm.Expr("COALESCE(?, phone)", attrs.Phone),
			"photo": gorm.Expr("COALESCE(?, photo)", attrs.Photo),
		})

	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &u, nil
}

func (r *UserGormRepository) Delete(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	tx := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&u)

	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &u, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
