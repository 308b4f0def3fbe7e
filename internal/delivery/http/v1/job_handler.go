package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// The job board is publicly readable; mutation requires auth.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/search", handler.Search)
		publicJobs.GET("/:id", handler.Get)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.POST("/:id/enrich", handler.Enrich)
	}
}

type CreateJobRequest struct {
	Title           string     `json:"title" binding:"required"`
	Company         string     `json:"company" binding:"required"`
	Location        string     `json:"location" binding:"required"`
	RemoteType      *string    `json:"remote_type"`
	Description     string     `json:"description" binding:"required"`
	Requirements    *string    `json:"requirements"`
	SalaryMin       *float64   `json:"salary_min"`
	SalaryMax       *float64   `json:"salary_max"`
	JobType         *string    `json:"job_type"`
	ExperienceLevel *string    `json:"experience_level"`
	SourceURL       *string    `json:"source_url"`
	PostedDate      *time.Time `json:"posted_date"`
}

type UpdateJobRequest struct {
	Title           *string  `json:"title"`
	Company         *string  `json:"company"`
	Location        *string  `json:"location"`
	RemoteType      *string  `json:"remote_type"`
	Description     *string  `json:"description"`
	Requirements    *string  `json:"requirements"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	JobType         *string  `json:"job_type"`
	ExperienceLevel *string  `json:"experience_level"`
	SourceURL       *string  `json:"source_url"`
	IsActive        *bool    `json:"is_active"`
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *JobHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	jobs, err := h.jobUC.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":   jobs,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *JobHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Error(apperror.BadRequest("Query parameter 'q' is required"))
		return
	}
	limit, offset := pagination(c)

	jobs, err := h.jobUC.Search(c.Request.Context(), query, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job search results", gin.H{
		"jobs":   jobs,
		"query":  query,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		RemoteType:      req.RemoteType,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SourceURL:       req.SourceURL,
		PostedDate:      req.PostedDate,
	}

	if err := h.jobUC.Create(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), c.Param("id"), &domain.JobUpdate{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		RemoteType:      req.RemoteType,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SourceURL:       req.SourceURL,
		IsActive:        req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deactivated", nil)
}

func (h *JobHandler) Enrich(c *gin.Context) {
	job, err := h.jobUC.Enrich(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job enriched", job)
}
