package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbernet/backend/internal/domain/job"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/models"
)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobGormRepository) ListByLocation(
	ctx context.Context,
	location string,
) ([]models.Job, error) {

	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("location ILIKE ?", "%"+location+"%").
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobGormRepository) ListByType(
	ctx context.Context,
	jobType string,
) ([]models.Job, error) {

	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("job_type = ?", jobType).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobGormRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Job, error) {

	var jobs []models.Job
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Job, error) {

	var j models.Job
	if err := r.db.WithContext(ctx).
		First(&j, "id = ?", id).Error; err != nil {
		return nil, normalizeLookupErr(err)
	}
	return &j, nil
}

func (r *JobGormRepository) Create(ctx context.Context, j *models.Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobGormRepository) UpdatePartial(
	ctx context.Context,
	id string,
	ownerID string,
	patch domain.Patch,
) (*models.Job, error) {

	changes := patch.Changes()
	if len(changes) == 0 {
		return nil, httperr.ErrBusiness("empty_update")
	}

	var j models.Job
	tx := r.db.WithContext(ctx).
		Model(&j).
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

	return &j, nil
}

func (r *JobGormRepository) Delete(
	ctx context.Context,
	id string,
	ownerID string,
) (*models.Job, error) {

	var j models.Job
	tx := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&j)

	if tx.Error != nil {
		if normalizeLookupErr(tx.Error) == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("not_owner")
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, httperr.ErrBusiness("not_owner")
	}

	return &j, nil
}

// Compile-time check
var _ domain.Repository = (*JobGormRepository)(nil)
