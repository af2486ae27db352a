package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/domain/user"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/httpresp"
)

type UserHandler struct {
	users user.Repository
}

func NewUserHandler(users user.Repository) *UserHandler {
	return &UserHandler{users: users}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Photo *string `json:"photo"`
}

// --------- Handlers ---------

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		storeErr(c, "failed_to_get_user", err)
		return
	}

	httpresp.OK(c, u)
}

// Update coalesces: attributes absent from the body keep their stored
// values. Compare Register, which replaces all of them.
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.ID == "" {
		httperr.BadRequest(c, "missing_required_field", "User ID is required")
		return
	}

	u, err := h.users.Update(c.Request.Context(), user.Attributes{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Photo: req.Photo,
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		storeErr(c, "failed_to_update_user", err)
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	u, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found to delete.")
			return
		}
		storeErr(c, "failed_to_delete_user", err)
		return
	}

	httpresp.Deleted(c, "User deleted successfully", "user", u)
}
