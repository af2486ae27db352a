package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barbernet/backend/internal/domain/barber"
	"github.com/barbernet/backend/internal/domain/job"
	"github.com/barbernet/backend/internal/domain/shop"
	"github.com/barbernet/backend/internal/domain/user"
	"github.com/barbernet/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func strptr(s string) *string {
	return &s
}

// ------------------------------------------------------
// Fake repositories, one per domain interface. Each call
// delegates to the test-provided fn when set.
// ------------------------------------------------------

type fakeUserRepo struct {
	upsertFn func(ctx context.Context, attrs user.Attributes) (*models.User, error)
	getFn    func(ctx context.Context, id string) (*models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	updateFn func(ctx context.Context, attrs user.Attributes) (*models.User, error)
	deleteFn func(ctx context.Context, id string) (*models.User, error)
}

func (f *fakeUserRepo) Upsert(ctx context.Context, attrs user.Attributes) (*models.User, error) {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, attrs)
	}
	return &models.User{ID: attrs.ID}, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []models.User{}, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, attrs user.Attributes) (*models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, attrs)
	}
	return &models.User{ID: attrs.ID}, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (*models.User, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

var _ user.Repository = (*fakeUserRepo)(nil)

type fakeBarberRepo struct {
	listAllFn     func(ctx context.Context) ([]models.Barber, error)
	listByCityFn  func(ctx context.Context, city string) ([]models.Barber, error)
	listByOwnerFn func(ctx context.Context, ownerID string) ([]models.Barber, error)
	getFn         func(ctx context.Context, id string) (*models.Barber, error)
	createFn      func(ctx context.Context, b *models.Barber) error
	updateFn      func(ctx context.Context, id, ownerID string, patch barber.Patch) (*models.Barber, error)
	deleteFn      func(ctx context.Context, id, ownerID string) (*models.Barber, error)
}

func (f *fakeBarberRepo) ListAll(ctx context.Context) ([]models.Barber, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return []models.Barber{}, nil
}

func (f *fakeBarberRepo) ListByCity(ctx context.Context, city string) ([]models.Barber, error) {
	if f.listByCityFn != nil {
		return f.listByCityFn(ctx, city)
	}
	return []models.Barber{}, nil
}

func (f *fakeBarberRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Barber, error) {
	if f.listByOwnerFn != nil {
		return f.listByOwnerFn(ctx, ownerID)
	}
	return []models.Barber{}, nil
}

func (f *fakeBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &models.Barber{ID: id}, nil
}

func (f *fakeBarberRepo) Create(ctx context.Context, b *models.Barber) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBarberRepo) UpdatePartial(ctx context.Context, id, ownerID string, patch barber.Patch) (*models.Barber, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, ownerID, patch)
	}
	return &models.Barber{ID: id, OwnerID: ownerID}, nil
}

func (f *fakeBarberRepo) Delete(ctx context.Context, id, ownerID string) (*models.Barber, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, ownerID)
	}
	return &models.Barber{ID: id, OwnerID: ownerID}, nil
}

var _ barber.Repository = (*fakeBarberRepo)(nil)

type fakeShopRepo struct {
	listAllFn        func(ctx context.Context) ([]models.Shop, error)
	listByLocationFn func(ctx context.Context, location string) ([]models.Shop, error)
	listByOwnerFn    func(ctx context.Context, ownerID string) ([]models.Shop, error)
	getFn            func(ctx context.Context, id string) (*models.Shop, error)
	createFn         func(ctx context.Context, s *models.Shop) error
	updateFn         func(ctx context.Context, id, ownerID string, patch shop.Patch) (*models.Shop, error)
	deleteFn         func(ctx context.Context, id, ownerID string) (*models.Shop, error)
}

func (f *fakeShopRepo) ListAll(ctx context.Context) ([]models.Shop, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return []models.Shop{}, nil
}

func (f *fakeShopRepo) ListByLocation(ctx context.Context, location string) ([]models.Shop, error) {
	if f.listByLocationFn != nil {
		return f.listByLocationFn(ctx, location)
	}
	return []models.Shop{}, nil
}

func (f *fakeShopRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Shop, error) {
	if f.listByOwnerFn != nil {
		return f.listByOwnerFn(ctx, ownerID)
	}
	return []models.Shop{}, nil
}

func (f *fakeShopRepo) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &models.Shop{ID: id}, nil
}

func (f *fakeShopRepo) Create(ctx context.Context, s *models.Shop) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeShopRepo) UpdatePartial(ctx context.Context, id, ownerID string, patch shop.Patch) (*models.Shop, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, ownerID, patch)
	}
	return &models.Shop{ID: id, OwnerID: ownerID}, nil
}

func (f *fakeShopRepo) Delete(ctx context.Context, id, ownerID string) (*models.Shop, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, ownerID)
	}
	return &models.Shop{ID: id, OwnerID: ownerID}, nil
}

var _ shop.Repository = (*fakeShopRepo)(nil)

type fakeJobRepo struct {
	listAllFn        func(ctx context.Context) ([]models.Job, error)
	listByLocationFn func(ctx context.Context, location string) ([]models.Job, error)
	listByTypeFn     func(ctx context.Context, jobType string) ([]models.Job, error)
	listByOwnerFn    func(ctx context.Context, ownerID string) ([]models.Job, error)
	getFn            func(ctx context.Context, id string) (*models.Job, error)
	createFn         func(ctx context.Context, j *models.Job) error
	updateFn         func(ctx context.Context, id, ownerID string, patch job.Patch) (*models.Job, error)
	deleteFn         func(ctx context.Context, id, ownerID string) (*models.Job, error)
}

func (f *fakeJobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return []models.Job{}, nil
}

func (f *fakeJobRepo) ListByLocation(ctx context.Context, location string) ([]models.Job, error) {
	if f.listByLocationFn != nil {
		return f.listByLocationFn(ctx, location)
	}
	return []models.Job{}, nil
}

func (f *fakeJobRepo) ListByType(ctx context.Context, jobType string) ([]models.Job, error) {
	if f.listByTypeFn != nil {
		return f.listByTypeFn(ctx, jobType)
	}
	return []models.Job{}, nil
}

func (f *fakeJobRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Job, error) {
	if f.listByOwnerFn != nil {
		return f.listByOwnerFn(ctx, ownerID)
	}
	return []models.Job{}, nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &models.Job{ID: id}, nil
}

func (f *fakeJobRepo) Create(ctx context.Context, j *models.Job) error {
	if f.createFn != nil {
		return f.createFn(ctx, j)
	}
	return nil
}

func (f *fakeJobRepo) UpdatePartial(ctx context.Context, id, ownerID string, patch job.Patch) (*models.Job, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, ownerID, patch)
	}
	return &models.Job{ID: id, OwnerID: ownerID}, nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, id, ownerID string) (*models.Job, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, ownerID)
	}
	return &models.Job{ID: id, OwnerID: ownerID}, nil
}

var _ job.Repository = (*fakeJobRepo)(nil)
