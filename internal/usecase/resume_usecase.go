package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"jobforge-backend/internal/domain"
	"jobforge-backend/internal/llm"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/extract"
	"jobforge-backend/pkg/logger"
	"jobforge-backend/pkg/storage"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	files      *storage.FileStore
	llmClient  llm.Client
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, files *storage.FileStore, llmClient llm.Client) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo, files: files, llmClient: llmClient}
}

// getOwned loads a resume and hides other users' rows behind a 404.
func (u *resumeUsecase) getOwned(ctx context.Context, userID, id string) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	if resume.UserID != userID {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, nil
}

func (u *resumeUsecase) List(ctx context.Context, userID string) ([]domain.Resume, error) {
	return u.resumeRepo.GetByUserID(ctx, userID)
}

func (u *resumeUsecase) Get(ctx context.Context, userID, id string) (*domain.Resume, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *resumeUsecase) Upload(ctx context.Context, userID, title, fileName, contentType string, data []byte) (*domain.Resume, error) {
	fileURL, err := u.files.SaveResume(userID, fileName, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrEmptyFile),
			errors.Is(err, storage.ErrFileTooLarge),
			errors.Is(err, storage.ErrUnsupportedType):
			return nil, apperror.BadRequest(err.Error())
		default:
			return nil, err
		}
	}

	// Text extraction is best-effort: a resume whose text cannot be
	// pulled out still uploads fine, it just cannot be analyzed.
	var rawText *string
	if text, err := extract.Text(data, fileName); err != nil {
		logger.Log.Warn("resume text extraction failed", "user_id", userID, "file", fileName, "error", err)
	} else if trimmed := strings.TrimSpace(text); trimmed != "" {
		rawText = &trimmed
	}

	count, err := u.resumeRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")

	resume := &domain.Resume{
		UserID:    userID,
		Title:     title,
		FileURL:   &fileURL,
		FileType:  &fileType,
		IsPrimary: count == 0,
		RawText:   rawText,
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) Update(ctx context.Context, userID, id string, update *domain.ResumeUpdate) (*domain.Resume, error) {
	resume, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		resume.Title = *update.Title
	}
	if update.RawText != nil {
		resume.RawText = update.RawText
	}
	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) Delete(ctx context.Context, userID, id string) error {
	resume, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := u.resumeRepo.Delete(ctx, id); err != nil {
		return err
	}
	if resume.FileURL != nil {
		if err := u.files.Delete(*resume.FileURL); err != nil {
			logger.Log.Warn("failed to remove resume file", "resume_id", id, "error", err)
		}
	}
	return nil
}

func (u *resumeUsecase) SetPrimary(ctx context.Context, userID, id string) (*domain.Resume, error) {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := u.resumeRepo.SetPrimary(ctx, userID, id); err != nil {
		return nil, err
	}
	return u.getOwned(ctx, userID, id)
}

func (u *resumeUsecase) Analyze(ctx context.Context, userID, id string, req *domain.ResumeAnalysisRequest) (*domain.Resume, error) {
	resume, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if resume.RawText == nil || strings.TrimSpace(*resume.RawText) == "" {
		return nil, apperror.BadRequest("Resume has no extracted text to analyze")
	}

	messages := llm.AnalysisPrompt(*resume.RawText, req)
	result, err := u.llmClient.Complete(ctx, messages, true, 0.2)
	if err != nil {
		logger.Log.Error("resume analysis call failed", "resume_id", id, "error", err)
		return nil, apperror.UpstreamFailure("AI analysis failed. Please try again later.", err)
	}

	analysis, err := llm.ValidateAnalysis(result.Content)
	if err != nil {
		logger.Log.Error("resume analysis response invalid", "resume_id", id, "error", err)
		return nil, apperror.UpstreamFailure("Received an invalid response from AI analysis.", err)
	}

	if err := u.resumeRepo.SaveAnalysis(ctx, id, analysis); err != nil {
		return nil, err
	}
	return u.getOwned(ctx, userID, id)
}

func (u *resumeUsecase) Download(ctx context.Context, userID, id string) (string, string, error) {
	resume, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return "", "", err
	}
	if resume.FileURL == nil {
		return "", "", apperror.NotFound("Resume has no stored file")
	}
	path, err := u.files.Resolve(*resume.FileURL)
	if err != nil {
		return "", "", apperror.NotFound("Resume file not found")
	}

	fileName := resume.Title
	if ext := filepath.Ext(path); ext != "" && !strings.HasSuffix(fileName, ext) {
		fileName += ext
	}
	return path, fileName, nil
}
