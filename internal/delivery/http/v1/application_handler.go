package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	apps := protected.Group("/applications")
	{
		apps.GET("", handler.List)
		apps.POST("", handler.Create)
		apps.GET("/stats", handler.Stats)
		apps.GET("/:id", handler.Get)
		apps.PUT("/:id", handler.Update)
		apps.DELETE("/:id", handler.Delete)
		apps.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type CreateApplicationRequest struct {
	JobID       *string    `json:"job_id"`
	CompanyName string     `json:"company_name" binding:"required"`
	JobTitle    string     `json:"job_title" binding:"required"`
	JobURL      *string    `json:"job_url"`
	Status      string     `json:"status"`
	AppliedDate *time.Time `json:"applied_date"`
	Source      *string    `json:"source"`
	Notes       *string    `json:"notes"`
	MatchScore  *float64   `json:"match_score"`
}

type UpdateApplicationRequest struct {
	JobID       *string    `json:"job_id"`
	CompanyName *string    `json:"company_name"`
	JobTitle    *string    `json:"job_title"`
	JobURL      *string    `json:"job_url"`
	Status      *string    `json:"status"`
	AppliedDate *time.Time `json:"applied_date"`
	Source      *string    `json:"source"`
	Notes       *string    `json:"notes"`
	MatchScore  *float64   `json:"match_score"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	limit, offset := pagination(c)

	apps, err := h.appUC.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", apps)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	app := &domain.Application{
		UserID:      c.GetString(string(domain.KeyUserID)),
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobURL:      req.JobURL,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Source:      req.Source,
		Notes:       req.Notes,
		MatchScore:  req.MatchScore,
	}

	if err := h.appUC.Create(c.Request.Context(), app); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application created", app)
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.appUC.Stats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application stats", stats)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.appUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.Update(c.Request.Context(), userID, c.Param("id"), &domain.ApplicationUpdate{
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobURL:      req.JobURL,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Source:      req.Source,
		Notes:       req.Notes,
		MatchScore:  req.MatchScore,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application updated", app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.appUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", nil)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
