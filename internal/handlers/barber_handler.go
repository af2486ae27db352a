package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/domain/barber"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/httpresp"
	"github.com/barbernet/backend/internal/models"
)

type BarberHandler struct {
	barbers barber.Repository
}

func NewBarberHandler(barbers barber.Repository) *BarberHandler {
	return &BarberHandler{barbers: barbers}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	FullName     string            `json:"full_name"`
	City         string            `json:"city"`
	Bio          string            `json:"bio"`
	PhoneNumber  string            `json:"phone_number"`
	Email        string            `json:"email"`
	Experience   string            `json:"experience"`
	Skills       models.StringList `json:"skills"`
	Specialities models.StringList `json:"specialities"`
	Images       models.StringList `json:"images"`
	OwnerID      string            `json:"owner_id"`
}

func (r CreateBarberRequest) missingField() string {
	switch {
	case r.FullName == "":
		return "full_name"
	case r.City == "":
		return "city"
	case r.PhoneNumber == "":
		return "phone_number"
	case r.Skills == nil:
		return "skills"
	case r.Specialities == nil:
		return "specialities"
	case r.Images == nil:
		return "images"
	case r.OwnerID == "":
		return "owner_id"
	}
	return ""
}

type UpdateBarberRequest struct {
	OwnerID string `json:"owner_id"`
	barber.Patch
}

type OwnerRequest struct {
	OwnerID string `json:"owner_id"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.barbers.ListAll(c.Request.Context())
	if err != nil {
		storeErr(c, "failed_to_list_barbers", err)
		return
	}

	httpresp.OK(c, barbers)
}

// ListFiltered serves GET /list?city= — without a filter it falls back to
// the full listing.
func (h *BarberHandler) ListFiltered(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))

	if city == "" {
		h.List(c)
		return
	}

	barbers, err := h.barbers.ListByCity(c.Request.Context(), city)
	if err != nil {
		storeErr(c, "failed_to_list_barbers", err)
		return
	}

	httpresp.OK(c, barbers)
}

func (h *BarberHandler) ListByOwner(c *gin.Context) {
	barbers, err := h.barbers.ListByOwner(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		storeErr(c, "failed_to_list_barbers", err)
		return
	}

	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	b, err := h.barbers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		storeErr(c, "failed_to_get_barber", err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if f := req.missingField(); f != "" {
		httperr.BadRequest(c, "missing_required_field", "Missing required field: "+f)
		return
	}

	b := models.Barber{
		FullName:     req.FullName,
		City:         req.City,
		Bio:          req.Bio,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Experience:   barber.NormalizeExperience(req.Experience),
		Skills:       req.Skills,
		Specialities: req.Specialities,
		Images:       req.Images,
		OwnerID:      req.OwnerID,
	}

	if err := h.barbers.Create(c.Request.Context(), &b); err != nil {
		storeErr(c, "failed_to_create_barber", err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	b, err := h.barbers.UpdatePartial(c.Request.Context(), c.Param("id"), req.OwnerID, req.Patch)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_update"):
			httperr.BadRequest(c, "empty_update", "No updatable fields in request body.")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_owner", "Unauthorized or barber not found.")
		default:
			storeErr(c, "failed_to_update_barber", err)
		}
		return
	}

	httpresp.OK(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	b, err := h.barbers.Delete(c.Request.Context(), c.Param("id"), req.OwnerID)
	if err != nil {
		if httperr.IsBusiness(err, "not_owner") {
			httperr.Forbidden(c, "not_owner", "Unauthorized or barber not found.")
			return
		}
		storeErr(c, "failed_to_delete_barber", err)
		return
	}

	httpresp.Deleted(c, "Barber deleted successfully", "barber", b)
}
