package usecase

import (
	"context"
	"errors"
	"time"

	"jobforge-backend/internal/domain"
	"jobforge-backend/internal/llm"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo   domain.JobRepository
	llmClient llm.Client
}

func NewJobUsecase(jobRepo domain.JobRepository, llmClient llm.Client) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, llmClient: llmClient}
}

func (u *jobUsecase) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	return u.jobRepo.FetchActive(ctx, limit, offset)
}

func (u *jobUsecase) Search(ctx context.Context, query string, limit, offset int) ([]domain.Job, error) {
	return u.jobRepo.Search(ctx, query, limit, offset)
}

func (u *jobUsecase) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) Create(ctx context.Context, job *domain.Job) error {
	job.IsActive = true
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) Update(ctx context.Context, id string, update *domain.JobUpdate) (*domain.Job, error) {
	job, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.RemoteType != nil {
		job.RemoteType = update.RemoteType
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Requirements != nil {
		job.Requirements = update.Requirements
	}
	if update.SalaryMin != nil {
		job.SalaryMin = update.SalaryMin
	}
	if update.SalaryMax != nil {
		job.SalaryMax = update.SalaryMax
	}
	if update.JobType != nil {
		job.JobType = update.JobType
	}
	if update.ExperienceLevel != nil {
		job.ExperienceLevel = update.ExperienceLevel
	}
	if update.SourceURL != nil {
		job.SourceURL = update.SourceURL
	}
	if update.IsActive != nil {
		job.IsActive = *update.IsActive
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) Delete(ctx context.Context, id string) error {
	err := u.jobRepo.SoftDelete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return err
}

func (u *jobUsecase) Enrich(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	messages := llm.EnrichmentPrompt(job)
	result, err := u.llmClient.Complete(ctx, messages, true, 0.2)
	if err != nil {
		logger.Log.Error("job enrichment call failed", "job_id", id, "error", err)
		return nil, apperror.UpstreamFailure("AI enrichment failed.", err)
	}

	enrichment, err := llm.ValidateEnrichment(result.Content)
	if err != nil {
		logger.Log.Error("job enrichment response invalid", "job_id", id, "error", err)
		return nil, apperror.UpstreamFailure("AI produced an invalid enrichment payload.", err)
	}

	if err := u.jobRepo.SaveEnrichment(ctx, id, enrichment, time.Now().UTC()); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}
