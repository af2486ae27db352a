package models

import "time"

// User is keyed by the external identity provider's id,
// so the primary key is supplied by the client, never generated.
type User struct {
	ID    string  `gorm:"size:100;primaryKey" json:"id"`
	Name  *string `gorm:"size:100" json:"name"`
	Email *string `gorm:"size:100" json:"email"`
	Phone *string `gorm:"size:20" json:"phone"`
	Photo *string `gorm:"size:500" json:"photo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
