package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbernet/backend/internal/domain/job"
	"github.com/barbernet/backend/internal/httperr"
	"github.com/barbernet/backend/internal/httpresp"
	"github.com/barbernet/backend/internal/models"
)

type JobHandler struct {
	jobs job.Repository
}

func NewJobHandler(jobs job.Repository) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// --------- Requests ---------

type CreateJobRequest struct {
	ShopName    string            `json:"shop_name"`
	PhoneNumber string            `json:"phone_number"`
	Location    string            `json:"location"`
	JobType     string            `json:"job_type"`
	SalaryText  string            `json:"salary_text"`
	Description string            `json:"description"`
	Images      models.StringList `json:"images"`
	OwnerID     string            `json:"owner_id"`
}

func (r CreateJobRequest) missingField() string {
	switch {
	case r.ShopName == "":
		return "shop_name"
	case r.PhoneNumber == "":
		return "phone_number"
	case r.Location == "":
		return "location"
	case r.JobType == "":
		return "job_type"
	case r.SalaryText == "":
		return "salary_text"
	case r.Description == "":
		return "description"
	case r.OwnerID == "":
		return "owner_id"
	}
	return ""
}

type UpdateJobRequest struct {
	OwnerID string `json:"owner_id"`
	job.Patch
}

// --------- Handlers ---------

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.ListAll(c.Request.Context())
	if err != nil {
		storeErr(c, "failed_to_list_jobs", err)
		return
	}

	httpresp.OK(c, jobs)
}

// ListFiltered serves GET /list?location=&type= — location wins when both
// are present, matching the public app's search behavior.
func (h *JobHandler) ListFiltered(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	jobType := strings.TrimSpace(c.Query("type"))

	switch {
	case location != "":
		jobs, err := h.jobs.ListByLocation(c.Request.Context(), location)
		if err != nil {
			storeErr(c, "failed_to_list_jobs", err)
			return
		}
		httpresp.OK(c, jobs)

	case jobType != "":
		jobs, err := h.jobs.ListByType(c.Request.Context(), jobType)
		if err != nil {
			storeErr(c, "failed_to_list_jobs", err)
			return
		}
		httpresp.OK(c, jobs)

	default:
		h.List(c)
	}
}

func (h *JobHandler) ListByOwner(c *gin.Context) {
	jobs, err := h.jobs.ListByOwner(c.Request.Context(), c.Param("owner_id"))
	if err != nil {
		storeErr(c, "failed_to_list_jobs", err)
		return
	}

	httpresp.OK(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "job_not_found", "Job not found.")
			return
		}
		storeErr(c, "failed_to_get_job", err)
		return
	}

	httpresp.OK(c, j)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if f := req.missingField(); f != "" {
		httperr.BadRequest(c, "missing_required_field", "Missing required field: "+f)
		return
	}

	j := models.Job{
		ShopName:    req.ShopName,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
		JobType:     job.NormalizeType(req.JobType),
		SalaryText:  req.SalaryText,
		Description: req.Description,
		Images:      req.Images,
		OwnerID:     req.OwnerID,
	}

	if err := h.jobs.Create(c.Request.Context(), &j); err != nil {
		storeErr(c, "failed_to_create_job", err)
		return
	}

	httpresp.Created(c, j)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	j, err := h.jobs.UpdatePartial(c.Request.Context(), c.Param("id"), req.OwnerID, req.Patch)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "empty_update"):
			httperr.BadRequest(c, "empty_update", "No updatable fields in request body.")
		case httperr.IsBusiness(err, "not_owner"):
			httperr.Forbidden(c, "not_owner", "Unauthorized or job not found.")
		default:
			storeErr(c, "failed_to_update_job", err)
		}
		return
	}

	httpresp.OK(c, j)
}

func (h *JobHandler) Delete(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	if req.OwnerID == "" {
		httperr.BadRequest(c, "missing_required_field", "owner_id is required")
		return
	}

	j, err := h.jobs.Delete(c.Request.Context(), c.Param("id"), req.OwnerID)
	if err != nil {
		if httperr.IsBusiness(err, "not_owner") {
			httperr.Forbidden(c, "not_owner", "Unauthorized or job not found.")
			return
		}
		storeErr(c, "failed_to_delete_job", err)
		return
	}

	httpresp.Deleted(c, "Job deleted successfully", "job", j)
}
