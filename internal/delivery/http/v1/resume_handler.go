package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/storage"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("/upload", handler.Upload)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
		resumes.POST("/:id/set-primary", handler.SetPrimary)
		resumes.POST("/:id/analyze", handler.Analyze)
		resumes.GET("/:id/download", handler.Download)
	}
}

type UpdateResumeRequest struct {
	Title   *string `json:"title"`
	RawText *string `json:"raw_text"`
}

type AnalyzeResumeRequest struct {
	JobTitle       *string  `json:"job_title"`
	JobDescription *string  `json:"job_description"`
	TargetKeywords []string `json:"target_keywords"`
}

func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resumes, err := h.resumeUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume list", resumes)
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A resume file is required"))
		return
	}
	if fileHeader.Size > storage.MaxFileSizeBytes {
		c.Error(apperror.BadRequest("file size exceeds 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	title := c.PostForm("title")
	contentType := fileHeader.Header.Get("Content-Type")

	resume, err := h.resumeUC.Upload(c.Request.Context(), userID, title, fileHeader.Filename, contentType, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded", resume)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resume, err := h.resumeUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume details", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.Update(c.Request.Context(), userID, c.Param("id"), &domain.ResumeUpdate{
		Title:   req.Title,
		RawText: req.RawText,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.resumeUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

func (h *ResumeHandler) SetPrimary(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resume, err := h.resumeUC.SetPrimary(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Primary resume updated", resume)
}

func (h *ResumeHandler) Analyze(c *gin.Context) {
	// Body is optional: an empty analyze request scores the resume on
	// its own, without a target role.
	var req AnalyzeResumeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.UnprocessableEntity(err.Error()))
			return
		}
	}

	userID := c.GetString(string(domain.KeyUserID))
	resume, err := h.resumeUC.Analyze(c.Request.Context(), userID, c.Param("id"), &domain.ResumeAnalysisRequest{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		TargetKeywords: req.TargetKeywords,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analyzed", resume)
}

func (h *ResumeHandler) Download(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	path, fileName, err := h.resumeUC.Download(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.FileAttachment(path, fileName)
}
