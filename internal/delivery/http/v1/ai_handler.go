package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobforge-backend/internal/delivery/http/response"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type AIHandler struct {
	aiUC domain.AIUsecase
}

func NewAIHandler(protected *gin.RouterGroup, aiUC domain.AIUsecase) {
	handler := &AIHandler{aiUC: aiUC}

	ai := protected.Group("/ai")
	{
		ai.POST("/cover-letter", handler.GenerateCoverLetter)
		ai.POST("/interview/questions", handler.GenerateInterviewQuestions)
	}
}

type CoverLetterGenRequest struct {
	ResumeID    string  `json:"resume_id" binding:"required"`
	JobID       *string `json:"job_id"`
	Tone        string  `json:"tone"`
	Length      string  `json:"length"`
	CustomNotes *string `json:"custom_notes"`
}

type InterviewQuestionsGenRequest struct {
	JobID         string   `json:"job_id" binding:"required"`
	InterviewType string   `json:"interview_type" binding:"required"`
	Seniority     *string  `json:"seniority"`
	FocusAreas    []string `json:"focus_areas"`
}

func (h *AIHandler) GenerateCoverLetter(c *gin.Context) {
	var req CoverLetterGenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	result, err := h.aiUC.GenerateCoverLetter(c.Request.Context(), userID, &domain.CoverLetterRequest{
		ResumeID:    req.ResumeID,
		JobID:       req.JobID,
		Tone:        req.Tone,
		Length:      req.Length,
		CustomNotes: req.CustomNotes,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Cover letter generated", result)
}

func (h *AIHandler) GenerateInterviewQuestions(c *gin.Context) {
	var req InterviewQuestionsGenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.UnprocessableEntity(err.Error()))
		return
	}

	result, err := h.aiUC.GenerateInterviewQuestions(c.Request.Context(), &domain.InterviewQuestionsRequest{
		JobID:         req.JobID,
		InterviewType: req.InterviewType,
		Seniority:     req.Seniority,
		FocusAreas:    req.FocusAreas,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview questions generated", result)
}
