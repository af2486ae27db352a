package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbernet/backend/internal/domain/user"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/httpresp"
)

type AuthHandler struct {
	users user.Repository
}

func NewAuthHandler(users user.Repository) *AuthHandler {
	return &AuthHandler{users: users}
}

// --------- Requests ---------

type RegisterRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Photo *string `json:"photo"`
}

// --------- Handlers ---------

// Register upserts the user row keyed by the external identity id. Repeat
// calls are full replaces of the tracked attributes.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.ID == "" || req.Email == nil || *req.Email == "" {
		httperr.BadRequest(c, "missing_required_field", "id and email are required")
		return
	}

	u, err := h.users.Upsert(c.Request.Context(), user.Attributes{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Photo: req.Photo,
	})
	if err != nil {
		storeErr(c, "failed_to_register_user", err)
		return
	}

	httpresp.OK(c, u)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		storeErr(c, "failed_to_list_users", err)
		return
	}

	httpresp.OK(c, users)
}
