package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobforge-backend/internal/domain"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `id, application_id, user_id, interview_type, scheduled_at, duration_minutes,
	interviewer_name, location, meeting_link, notes, status, created_at, updated_at, completed_at`

func scanInterview(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	err := row.Scan(
		&iv.ID, &iv.ApplicationID, &iv.UserID, &iv.InterviewType, &iv.ScheduledAt,
		&iv.DurationMinutes, &iv.InterviewerName, &iv.Location, &iv.MeetingLink,
		&iv.Notes, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt, &iv.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	interview.CreatedAt = now
	interview.UpdatedAt = now
	query := `INSERT INTO interviews (id, application_id, user_id, interview_type, scheduled_at,
	            duration_minutes, interviewer_name, location, meeting_link, notes, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		interview.ID, interview.ApplicationID, interview.UserID, interview.InterviewType,
		interview.ScheduledAt, interview.DurationMinutes, interview.InterviewerName,
		interview.Location, interview.MeetingLink, interview.Notes, interview.Status,
		interview.CreatedAt, interview.UpdatedAt,
	)
	return err
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	return scanInterview(r.db.QueryRow(ctx, query, id))
}

func (r *interviewRepo) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews
	          WHERE user_id = $1 ORDER BY scheduled_at DESC LIMIT $2 OFFSET $3`
	return r.queryInterviews(ctx, query, userID, limit, offset)
}

func (r *interviewRepo) Upcoming(ctx context.Context, userID string) ([]domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews
	          WHERE user_id = $1 AND status = $2 AND scheduled_at >= NOW()
	          ORDER BY scheduled_at ASC`
	return r.queryInterviews(ctx, query, userID, domain.InterviewStatusScheduled)
}

func (r *interviewRepo) queryInterviews(ctx context.Context, query string, args ...any) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	query := `UPDATE interviews SET
		interview_type = $2,
		scheduled_at = $3,
		duration_minutes = $4,
		interviewer_name = $5,
		location = $6,
		meeting_link = $7,
		notes = $8,
		status = $9,
		completed_at = $10,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		interview.ID, interview.InterviewType, interview.ScheduledAt,
		interview.DurationMinutes, interview.InterviewerName, interview.Location,
		interview.MeetingLink, interview.Notes, interview.Status, interview.CompletedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) UpdateStatus(ctx context.Context, id, status string, completedAt *time.Time) error {
	query := `UPDATE interviews SET status = $2, completed_at = $3, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, completedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
