package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/domain/user"
	"github.com/barbernet/backend/internal/handlers"
	"github.com/barbernet/backend/internal/models"
)

func newUserRouter(repo *fakeUserRepo) *gin.Engine {
	h := handlers.NewUserHandler(repo)

	r := gin.New()
	g := r.Group("/api/user")
	g.GET("/:id", h.Get)
	g.PUT("/update", h.Update)
	g.DELETE("/delete/:id", h.Delete)
	return r
}

func TestGetUser_NotFound(t *testing.T) {
	repo := &fakeUserRepo{
		getFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodGet, "/api/user/nobody", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_OK(t *testing.T) {
	repo := &fakeUserRepo{
		getFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: strptr("Ana")}, nil
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodGet, "/api/user/ext-1", "")

	require.Equal(t, http.StatusOK, w.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "ext-1", u.ID)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Ana", *u.Name)
}

func TestUpdateUser_RequiresID(t *testing.T) {
	called := false
	repo := &fakeUserRepo{
		updateFn: func(ctx context.Context, attrs user.Attributes) (*models.User, error) {
			called = true
			return nil, nil
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodPut, "/api/user/update", `{"name":"Ana"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestUpdateUser_OmittedFieldsStayNil(t *testing.T) {
	var got user.Attributes
	repo := &fakeUserRepo{
		updateFn: func(ctx context.Context, attrs user.Attributes) (*models.User, error) {
			got = attrs
			return &models.User{ID: attrs.ID}, nil
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodPut, "/api/user/update",
		`{"id":"ext-1","phone":"555"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ext-1", got.ID)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "555", *got.Phone)
	assert.Nil(t, got.Name, "omitted attributes must reach the repository as nil so COALESCE keeps them")
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Photo)
}

func TestUpdateUser_MissingTargetIs404(t *testing.T) {
	repo := &fakeUserRepo{
		updateFn: func(ctx context.Context, attrs user.Attributes) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodPut, "/api/user/update", `{"id":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser_ReturnsEnvelope(t *testing.T) {
	repo := &fakeUserRepo{
		deleteFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Email: strptr("a@b.c")}, nil
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodDelete, "/api/user/delete/ext-1", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User deleted successfully", resp.Message)
	assert.Equal(t, "ext-1", resp.User.ID)
}

func TestDeleteUser_MissingTargetIs404(t *testing.T) {
	repo := &fakeUserRepo{
		deleteFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	w := performRequest(newUserRouter(repo), http.MethodDelete, "/api/user/delete/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
