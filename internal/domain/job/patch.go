package job

import "github.com/barbernet/backend/internal/models"

// Patch is the update allow-list for job postings.
type Patch struct {
	ShopName    *string            `json:"shop_name"`
	PhoneNumber *string            `json:"phone_number"`
	Location    *string            `json:"location"`
	JobType     *string            `json:"job_type"`
	SalaryText  *string            `json:"salary_text"`
	Description *string            `json:"description"`
	Images      *models.StringList `json:"images"`
}

func (p Patch) Changes() map[string]any {
	m := map[string]any{}

	if p.ShopName != nil {
		m["shop_name"] = *p.ShopName
	}
	if p.PhoneNumber != nil {
		m["phone_number"] = *p.PhoneNumber
	}
	if p.Location != nil {
		m["location"] = *p.Location
	}
	if p.JobType != nil {
		m["job_type"] = *p.JobType
	}
	if p.SalaryText != nil {
		m["salary_text"] = *p.SalaryText
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Images != nil {
		m["images"] = *p.Images
	}

	return m
}
