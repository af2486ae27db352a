package models

import "time"

type Shop struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	Location    string `gorm:"size:255;not null" json:"location"`
	Info        string `gorm:"size:1000" json:"info"`
	SalePrice   string `gorm:"size:100" json:"sale_price"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`

	Images StringList `gorm:"type:text;default:'[]'" json:"images"`

	OwnerID string `gorm:"size:100;not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
