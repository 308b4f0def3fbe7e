package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.POST("", handler.Create)
		interviews.GET("/upcoming", handler.Upcoming)
		interviews.GET("/:id", handler.Get)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
		interviews.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type CreateInterviewRequest struct {
	ApplicationID   string    `json:"application_id" binding:"required"`
	InterviewType   string    `json:"interview_type" binding:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes"`
	InterviewerName *string   `json:"interviewer_name"`
	Location        *string   `json:"location"`
	MeetingLink     *string   `json:"meeting_link"`
	Notes           *string   `json:"notes"`
}

type UpdateInterviewRequest struct {
	InterviewType   *string    `json:"interview_type"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes"`
	InterviewerName *string    `json:"interviewer_name"`
	Location        *string    `json:"location"`
	MeetingLink     *string    `json:"meeting_link"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status"`
}

func (h *InterviewHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	limit, offset := pagination(c)

	interviews, err := h.interviewUC.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview list", interviews)
}

func (h *InterviewHandler) Upcoming(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	interviews, err := h.interviewUC.Upcoming(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Upcoming interviews", interviews)
}

func (h *InterviewHandler) Create(c *gin.Context) {
	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	interview := &domain.Interview{
		ApplicationID:   req.ApplicationID,
		UserID:          c.GetString(string(domain.KeyUserID)),
		InterviewType:   req.InterviewType,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		InterviewerName: req.InterviewerName,
		Location:        req.Location,
		MeetingLink:     req.MeetingLink,
		Notes:           req.Notes,
	}

	if err := h.interviewUC.Create(c.Request.Context(), interview); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview scheduled", interview)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	interview, err := h.interviewUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview details", interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	var req UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	interview, err := h.interviewUC.Update(c.Request.Context(), userID, c.Param("id"), &domain.InterviewUpdate{
		InterviewType:   req.InterviewType,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		InterviewerName: req.InterviewerName,
		Location:        req.Location,
		MeetingLink:     req.MeetingLink,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.interviewUC.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview deleted", nil)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	interview, err := h.interviewUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview status updated", interview)
}
