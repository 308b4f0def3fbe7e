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

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, user_id, title, file_url, file_type, is_primary, raw_text,
	ats_score, keyword_match_score, strengths, weaknesses, suggestions, missing_keywords,
	created_at, updated_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	// text[] columns scan natively into []string; pgx requests the
	// binary wire format for arrays, which pq.Array cannot parse.
	err := row.Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.FileURL, &resume.FileType,
		&resume.IsPrimary, &resume.RawText, &resume.ATSScore, &resume.KeywordMatchScore,
		&resume.Strengths, &resume.Weaknesses,
		&resume.Suggestions, &resume.MissingKeywords,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	if resume.ID == "" {
		resume.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	query := `INSERT INTO resumes (id, user_id, title, file_url, file_type, is_primary, raw_text, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.UserID, resume.Title, resume.FileURL, resume.FileType,
		resume.IsPrimary, resume.RawText, resume.CreatedAt, resume.UpdatedAt,
	)
	return err
}

func (r *resumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRow(ctx, query, id))
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `UPDATE resumes SET
		title = $2,
		raw_text = $3,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, resume.ID, resume.Title, resume.RawText)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) SetPrimary(ctx context.Context, userID, resumeID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET is_primary = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_primary`,
		userID,
	); err != nil {
		return err
	}

	result, err := tx.Exec(ctx,
		`UPDATE resumes SET is_primary = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *resumeRepo) SaveAnalysis(ctx context.Context, id string, analysis *domain.ResumeAnalysis) error {
	query := `UPDATE resumes SET
		ats_score = $2,
		keyword_match_score = $3,
		strengths = $4,
		weaknesses = $5,
		suggestions = $6,
		missing_keywords = $7,
		updated_at = NOW()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		id, analysis.ATSScore, analysis.KeywordMatchScore,
		pq.Array(analysis.Strengths), pq.Array(analysis.Weaknesses),
		pq.Array(analysis.Suggestions), pq.Array(analysis.MissingKeywords),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
