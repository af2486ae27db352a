package models

import "time"

type Barber struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	City        string `gorm:"size:100;not null" json:"city"`
	Bio         string `gorm:"size:1000" json:"bio"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`
	Email       string `gorm:"size:100" json:"email"`
	Experience  string `gorm:"size:20" json:"experience"`

	Skills       StringList `gorm:"type:text;default:'[]'" json:"skills"`
	Specialities StringList `gorm:"type:text;default:'[]'" json:"specialities"`
	Images       StringList `gorm:"type:text;default:'[]'" json:"images"`

	OwnerID string `gorm:"size:100;not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
