package domain

import (
	"context"
	"time"
)

// Interview types
const (
	InterviewTypePhone    = "phone"
	InterviewTypeVideo    = "video"
	InterviewTypeInPerson = "in_person"
	InterviewTypePanel    = "panel"
)

// Interview statuses
const (
	InterviewStatusScheduled = "scheduled"
	InterviewStatusCompleted = "completed"
	InterviewStatusCancelled = "cancelled"
	InterviewStatusNoShow    = "no_show"
)

var interviewTypes = []string{
	InterviewTypePhone,
	InterviewTypeVideo,
	InterviewTypeInPerson,
	InterviewTypePanel,
}

var interviewStatuses = []string{
	InterviewStatusScheduled,
	InterviewStatusCompleted,
	InterviewStatusCancelled,
	InterviewStatusNoShow,
}

func IsValidInterviewType(t string) bool {
	for _, v := range interviewTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidInterviewStatus(s string) bool {
	for _, v := range interviewStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Interview struct {
	ID              string     `json:"id"`
	ApplicationID   string     `json:"application_id"`
	UserID          string     `json:"user_id"`
	InterviewType   string     `json:"interview_type"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	InterviewerName *string    `json:"interviewer_name,omitempty"`
	Location        *string    `json:"location,omitempty"`
	MeetingLink     *string    `json:"meeting_link,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// InterviewUpdate carries a partial update; nil fields are left untouched.
type InterviewUpdate struct {
	InterviewType   *string
	ScheduledAt     *time.Time
	DurationMinutes *int
	InterviewerName *string
	Location        *string
	MeetingLink     *string
	Notes           *string
	Status          *string
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]Interview, error)
	// Upcoming returns scheduled interviews from now on, soonest first.
	Upcoming(ctx context.Context, userID string) ([]Interview, error)
	Update(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error
}

type InterviewUsecase interface {
	List(ctx context.Context, userID string, limit, offset int) ([]Interview, error)
	Upcoming(ctx context.Context, userID string) ([]Interview, error)
	Get(ctx context.Context, userID, id string) (*Interview, error)
	Create(ctx context.Context, interview *Interview) error
	Update(ctx context.Context, userID, id string, update *InterviewUpdate) (*Interview, error)
	Delete(ctx context.Context, userID, id string) error
	UpdateStatus(ctx context.Context, userID, id, status string) (*Interview, error)
}
