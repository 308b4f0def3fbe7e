package usecase

import (
	"context"
	"errors"
	"strings"

	"jobforge-backend/internal/domain"
	"jobforge-backend/internal/llm"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/logger"
)

const interviewQuestionCount = 12

type aiUsecase struct {
	resumeRepo domain.ResumeRepository
	jobRepo    domain.JobRepository
	llmClient  llm.Client
}

func NewAIUsecase(resumeRepo domain.ResumeRepository, jobRepo domain.JobRepository, llmClient llm.Client) domain.AIUsecase {
	return &aiUsecase{resumeRepo: resumeRepo, jobRepo: jobRepo, llmClient: llmClient}
}

func (u *aiUsecase) GenerateCoverLetter(ctx context.Context, userID string, req *domain.CoverLetterRequest) (*domain.CoverLetterResult, error) {
	resume, err := u.resumeRepo.GetByID(ctx, req.ResumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	if resume.UserID != userID {
		return nil, apperror.NotFound("Resume not found")
	}
	if resume.RawText == nil || strings.TrimSpace(*resume.RawText) == "" {
		return nil, apperror.BadRequest("Resume text is missing; upload or parse resume first.")
	}

	jobTitle := "General Application"
	jobCompany := "Hiring Manager"
	jobDescription := ""
	if req.JobID != nil {
		job, err := u.jobRepo.GetByID(ctx, *req.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Job not found")
			}
			return nil, err
		}
		jobTitle = job.Title
		jobCompany = job.Company
		jobDescription = job.Description
	}

	customNotes := ""
	if req.CustomNotes != nil {
		customNotes = *req.CustomNotes
	}
	messages := llm.CoverLetterPrompt(jobTitle, jobCompany, jobDescription, req.Tone, req.Length, customNotes, *resume.RawText)
	result, err := u.llmClient.Complete(ctx, messages, false, 0.5)
	if err != nil {
		logger.Log.Error("cover letter generation failed", "resume_id", req.ResumeID, "error", err)
		return nil, apperror.UpstreamFailure("Cover letter generation failed. Please try again.", err)
	}

	return &domain.CoverLetterResult{
		Letter:           result.Content,
		Model:            result.Model,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
	}, nil
}

func (u *aiUsecase) GenerateInterviewQuestions(ctx context.Context, req *domain.InterviewQuestionsRequest) (*domain.InterviewQuestionsResult, error) {
	if !domain.IsValidPrepType(req.InterviewType) {
		return nil, apperror.BadRequest("Invalid interview type: " + req.InterviewType)
	}

	job, err := u.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	seniority := ""
	if req.Seniority != nil {
		seniority = *req.Seniority
	}
	messages := llm.InterviewQuestionsPrompt(job.Title, job.Company, job.Description, req.InterviewType, seniority, req.FocusAreas, interviewQuestionCount)
	result, err := u.llmClient.Complete(ctx, messages, false, 0.4)
	if err != nil {
		logger.Log.Error("interview question generation failed", "job_id", req.JobID, "error", err)
		return nil, apperror.UpstreamFailure("Interview question generation failed. Please try again.", err)
	}

	return &domain.InterviewQuestionsResult{
		JobID:            req.JobID,
		InterviewType:    req.InterviewType,
		Questions:        llm.ParseInterviewQuestions(result.Content),
		Model:            result.Model,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
	}, nil
}
