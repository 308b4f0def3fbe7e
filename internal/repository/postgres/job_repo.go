package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"jobforge-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, location, remote_type, description, requirements,
	salary_min, salary_max, job_type, experience_level, source_url, is_active, posted_date,
	ai_summary, ai_highlights, ai_required_skills, ai_compensation, ai_remote_policy, ai_last_enriched_at,
	created_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.RemoteType,
		&job.Description, &job.Requirements, &job.SalaryMin, &job.SalaryMax,
		&job.JobType, &job.ExperienceLevel, &job.SourceURL, &job.IsActive, &job.PostedDate,
		&job.AISummary, &job.AIHighlights, &job.AIRequiredSkills,
		&job.AICompensation, &job.AIRemotePolicy, &job.AILastEnrichedAt,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	job.CreatedAt = time.Now().UTC()
	query := `INSERT INTO jobs (id, title, company, location, remote_type, description, requirements,
	            salary_min, salary_max, job_type, experience_level, source_url, is_active, posted_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.RemoteType,
		job.Description, job.Requirements, job.SalaryMin, job.SalaryMax,
		job.JobType, job.ExperienceLevel, job.SourceURL, job.IsActive, job.PostedDate,
		job.CreatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryJobs(ctx, query, limit, offset)
}

func (r *jobRepo) Search(ctx context.Context, q string, limit, offset int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
	          WHERE is_active AND (title ILIKE $1 OR company ILIKE $1 OR location ILIKE $1)
	          ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryJobs(ctx, query, "%"+q+"%", limit, offset)
}

func (r *jobRepo) queryJobs(ctx context.Context, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		company = $3,
		location = $4,
		remote_type = $5,
		description = $6,
		requirements = $7,
		salary_min = $8,
		salary_max = $9,
		job_type = $10,
		experience_level = $11,
		source_url = $12,
		is_active = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.RemoteType,
		job.Description, job.Requirements, job.SalaryMin, job.SalaryMax,
		job.JobType, job.ExperienceLevel, job.SourceURL, job.IsActive,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SaveEnrichment(ctx context.Context, id string, enrichment *domain.JobEnrichment, enrichedAt time.Time) error {
	query := `UPDATE jobs SET
		ai_summary = $2,
		ai_highlights = $3,
		ai_required_skills = $4,
		ai_compensation = $5,
		ai_remote_policy = $6,
		ai_last_enriched_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		id, enrichment.Summary,
		pq.Array(enrichment.Highlights), pq.Array(enrichment.RequiredSkills),
		enrichment.Compensation, enrichment.RemotePolicy, enrichedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
