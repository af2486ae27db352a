package shop

import "github.com/barbernet/backend/internal/models"

// Patch is the update allow-list for shops; see barber.Patch for the
// rationale behind the struct-as-allow-list shape.
type Patch struct {
	ShopName    *string            `json:"shop_name"`
	Location    *string            `json:"location"`
	Info        *string            `json:"info"`
	SalePrice   *string            `json:"sale_price"`
	PhoneNumber *string            `json:"phone_number"`
	Images      *models.StringList `json:"images"`
}

func (p Patch) Changes() map[string]any {
	m := map[string]any{}

	if p.ShopName != nil {
		m["shop_name"] = *p.ShopName
	}
	if p.Location != nil {
		m["location"] = *p.Location
	}
	if p.Info != nil {
		m["info"] = *p.Info
	}
	if p.SalePrice != nil {
		m["sale_price"] = *p.SalePrice
	}
	if p.PhoneNumber != nil {
		m["phone_number"] = *p.PhoneNumber
	}
	if p.Images != nil {
		m["images"] = *p.Images
	}

	return m
}
