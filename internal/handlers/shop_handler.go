package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/domain/shop"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/httpresp"
	"github.com/barbernet/backend/internal/models"
)

type ShopHandler struct {
	shops shop.Repository
}

func NewShopHandler(shops shop.Repository) *ShopHandler {
	return &ShopHandler{shops: shops}
}

// --------- Requests ---------

type CreateShopRequest struct {
	ShopName    string            `json:"shop_name"`
	Location    string            `json:"location"`
	Info        string            `json:"info"`
	SalePrice   string            `json:"sale_price"`
	PhoneNumber string            `json:"phone_number"`
	Images      models.StringList `json:"images"`
	OwnerID     string            `json:"owner_id"`
}

func (r CreateShopRequest) missingField() string {
	switch {
	case r.ShopName == "":
		return "shop_name"
	case r.Location == "":
		return "location"
	case r.Info == "":
		return "info"
	case r.SalePrice == "":
		return "sale_price"
	case r.PhoneNumber == "":
		return "phone_number"
	case r.Images == nil:
		return "images"
	case r.OwnerID == "":
		return "owner_id"
	}
	return ""
}

type UpdateShopRequest struct {
	OwnerID string `json:"owner_id"`
	shop.Patch
}

// --------- Handlers ---------

func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.shops.ListAll(c.Request.Context())
	if err != nil {
		storeErr(c, "failed_to_list_shops", err)
		return
	}

	httpresp.OK(c, shops)
}

func (h *ShopHandler) ListFiltered(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))

	if location == "" {
		h.List(c)
		return
	}

	shops, err := h.shops.ListByLocation(c.Request.Context(), location)
	if err != nil {
		storeErr(c, "failed_to_list_shops", err)
		return
	}

	httpresp.OK(c, shops)
}

func (h *ShopHandler) ListByOwner(c *gin.Context) {
	shops, err := h.shops.ListByOwner(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		storeErr(c, "failed_to_list_shops", err)
		return
	}

	httpresp.OK(c, shops)
}

func (h *ShopHandler) Get(c *gin.Context) {
	s, err := h.shops.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		storeErr(c, "failed_to_get_shop", err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if f := req.missingField(); f != "" {
		httperr.BadRequest(c, "missing_required_field", "Missing required field: "+f)
		return
	}

	s := models.Shop{
		ShopName:    req.ShopName,
		Location:    req.Location,
		Info:        req.Info,
		SalePrice:   req.SalePrice,
		PhoneNumber: req.PhoneNumber,
		Images:      req.Images,
		OwnerID:     req.OwnerID,
	}

	if err := h.shops.Create(c.Request.Context(), &s); err != nil {
		storeErr(c, "failed_to_create_shop", err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ShopHandler) Update(c *gin.Context) {
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	s, err := h.shops.UpdatePartial(c.Request.Context(), c.Param("id"), req.OwnerID, req.Patch)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_update"):
			httperr.BadRequest(c, "empty_update", "No updatable fields in request body.")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_owner", "Unauthorized or shop not found.")
		default:
			storeErr(c, "failed_to_update_shop", err)
		}
		return
	}

	httpresp.OK(c, s)
}

func (h *ShopHandler) Delete(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	s, err := h.shops.Delete(c.Request.Context(), c.Param("id"), req.OwnerID)
	if err != nil {
		if httperr.IsBusiness(err, "not_owner") {
			httperr.Forbidden(c, "not_owner", "Unauthorized or shop not found.")
			return
		}
		storeErr(c, "failed_to_delete_shop", err)
		return
	}

	httpresp.Deleted(c, "Shop deleted successfully", "shop", s)
}
