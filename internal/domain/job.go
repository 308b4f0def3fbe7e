package domain

import (
	"context"
	"time"
)

// Job postings are global: they have no owning user, any authenticated
// user may create or modify them, and deletion is a soft deactivation.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	RemoteType      *string    `json:"remote_type,omitempty"`
	Description     string     `json:"description"`
	Requirements    *string    `json:"requirements,omitempty"`
	SalaryMin       *float64   `json:"salary_min,omitempty"`
	SalaryMax       *float64   `json:"salary_max,omitempty"`
	JobType         *string    `json:"job_type,omitempty"`
	ExperienceLevel *string    `json:"experience_level,omitempty"`
	SourceURL       *string    `json:"source_url,omitempty"`
	IsActive        bool       `json:"is_active"`
	PostedDate      *time.Time `json:"posted_date,omitempty"`

	// AI enrichment output
	AISummary        *string    `json:"ai_summary,omitempty"`
	AIHighlights     []string   `json:"ai_highlights,omitempty"`
	AIRequiredSkills []string   `json:"ai_required_skills,omitempty"`
	AICompensation   *string    `json:"ai_compensation,omitempty"`
	AIRemotePolicy   *string    `json:"ai_remote_policy,omitempty"`
	AILastEnrichedAt *time.Time `json:"ai_last_enriched_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title           *string
	Company         *string
	Location        *string
	RemoteType      *string
	Description     *string
	Requirements    *string
	SalaryMin       *float64
	SalaryMax       *float64
	JobType         *string
	ExperienceLevel *string
	SourceURL       *string
	IsActive        *bool
}

// JobEnrichment is the validated result of an AI enrichment pass.
type JobEnrichment struct {
	Summary        string   `json:"summary"`
	Highlights     []string `json:"highlights"`
	RequiredSkills []string `json:"required_skills"`
	Compensation   *string  `json:"compensation"`
	RemotePolicy   *string  `json:"remote_policy"`
	ValidatedURL   *string  `json:"validated_url"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	FetchActive(ctx context.Context, limit, offset int) ([]Job, error)
	Search(ctx context.Context, query string, limit, offset int) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	SoftDelete(ctx context.Context, id string) error
	SaveEnrichment(ctx context.Context, id string, enrichment *JobEnrichment, enrichedAt time.Time) error
}

type JobUsecase interface {
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Search(ctx context.Context, query string, limit, offset int) ([]Job, error)
	Get(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, id string, update *JobUpdate) (*Job, error)
	Delete(ctx context.Context, id string) error
	Enrich(ctx context.Context, id string) (*Job, error)
}
