package models

import "time"

type Job struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Location    string `gorm:"size:255;not null" json:"location"`
	JobType     string `gorm:"size:50" json:"job_type"`
	SalaryText  string `gorm:"size:100" json:"salary_text"`
	Description string `gorm:"size:2000" json:"description"`

	Images StringList `gorm:"type:text;default:'[]'" json:"images"`

	OwnerID string `gorm:"size:100;not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
