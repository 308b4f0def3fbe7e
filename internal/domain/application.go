package domain

import (
	"context"
	"time"
)

// Application statuses. The lifecycle is flat: any status can move to
// any other, clients drive the pipeline.
const (
	StatusDraft     = "draft"
	StatusApplied   = "applied"
	StatusScreening = "screening"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusAccepted  = "accepted"
)

// ApplicationStatuses lists every valid status, in pipeline order.
var ApplicationStatuses = []string{
	StatusDraft,
	StatusApplied,
	StatusScreening,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
}

func IsValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Application struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	JobID       *string    `json:"job_id,omitempty"`
	CompanyName string     `json:"company_name"`
	JobTitle    string     `json:"job_title"`
	JobURL      *string    `json:"job_url,omitempty"`
	Status      string     `json:"status"`
	AppliedDate *time.Time `json:"applied_date,omitempty"`
	Source      *string    `json:"source,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	MatchScore  *float64   `json:"match_score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApplicationUpdate carries a partial update; nil fields are left untouched.
type ApplicationUpdate struct {
	JobID       *string
	CompanyName *string
	JobTitle    *string
	JobURL      *string
	Status      *string
	AppliedDate *time.Time
	Source      *string
	Notes       *string
	MatchScore  *float64
}

// ApplicationStats aggregates counts per status; every known status is
// present in ByStatus even when its count is zero.
type ApplicationStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]Application, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, userID string) (map[string]int64, error)
}

type ApplicationUsecase interface {
	List(ctx context.Context, userID string, limit, offset int) ([]Application, error)
	Get(ctx context.Context, userID, id string) (*Application, error)
	Create(ctx context.Context, app *Application) error
	Update(ctx context.Context, userID, id string, update *ApplicationUpdate) (*Application, error)
	Delete(ctx context.Context, userID, id string) error
	UpdateStatus(ctx context.Context, userID, id, status string) (*Application, error)
	Stats(ctx context.Context, userID string) (*ApplicationStats, error)
}
