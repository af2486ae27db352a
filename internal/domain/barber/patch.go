package barber

import "github.com/barbernet/backend/internal/models"

// Patch is the update allow-list in struct form: id, owner_id and the
// timestamps have no field here, so the generic update path cannot touch
// them no matter what the client sends.
type Patch struct {
	FullName     *string            `json:"full_name"`
	City         *string            `json:"city"`
	Bio          *string            `json:"bio"`
	PhoneNumber  *string            `json:"phone_number"`
	Email        *string            `json:"email"`
	Experience   *string            `json:"experience"`
	Skills       *models.StringList `json:"skills"`
	Specialities *models.StringList `json:"specialities"`
	Images       *models.StringList `json:"images"`
}

// Changes returns the column assignments for the attributes that are set.
func (p Patch) Changes() map[string]any {
	m := map[string]any{}

	if p.FullName != nil {
		m["full_name"] = *p.FullName
	}
	if p.City != nil {
		m["city"] = *p.City
	}
	if p.Bio != nil {
		m["bio"] = *p.Bio
	}
	if p.PhoneNumber != nil {
		m["phone_number"] = *p.PhoneNumber
	}
	if p.Email != nil {
		m["email"] = *p.Email
	}
	if p.Experience != nil {
		m["experience"] = *p.Experience
	}
	if p.Skills != nil {
		m["skills"] = *p.Skills
	}
	if p.Specialities != nil {
		m["specialities"] = *p.Specialities
	}
	if p.Images != nil {
		m["images"] = *p.Images
	}

	return m
}
