package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Title             string    `json:"title"`
	FileURL           *string   `json:"file_url,omitempty"`
	FileType          *string   `json:"file_type,omitempty"`
	IsPrimary         bool      `json:"is_primary"`
	RawText           *string   `json:"raw_text,omitempty"`
	ATSScore          *float64  `json:"ats_score,omitempty"`
	KeywordMatchScore *float64  `json:"keyword_match_score,omitempty"`
	Strengths         []string  `json:"strengths,omitempty"`
	Weaknesses        []string  `json:"weaknesses,omitempty"`
	Suggestions       []string  `json:"suggestions,omitempty"`
	MissingKeywords   []string  `json:"missing_keywords,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ResumeUpdate carries a partial update; nil fields are left untouched.
type ResumeUpdate struct {
	Title   *string
	RawText *string
}

// ResumeAnalysis is the validated result of an AI scoring pass.
type ResumeAnalysis struct {
	ATSScore          float64  `json:"ats_score"`
	KeywordMatchScore float64  `json:"keyword_match_score"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	Suggestions       []string `json:"suggestions"`
	MissingKeywords   []string `json:"missing_keywords"`
}

// ResumeAnalysisRequest optionally targets the analysis at a role.
type ResumeAnalysisRequest struct {
	JobTitle       *string
	JobDescription *string
	TargetKeywords []string
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id string) (*Resume, error)
	GetByUserID(ctx context.Context, userID string) ([]Resume, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id string) error
	// SetPrimary demotes every resume of the owner and promotes the
	// target in a single transaction.
	SetPrimary(ctx context.Context, userID, resumeID string) error
	SaveAnalysis(ctx context.Context, id string, analysis *ResumeAnalysis) error
}

type ResumeUsecase interface {
	List(ctx context.Context, userID string) ([]Resume, error)
	Get(ctx context.Context, userID, id string) (*Resume, error)
	Upload(ctx context.Context, userID, title, fileName, contentType string, data []byte) (*Resume, error)
	Update(ctx context.Context, userID, id string, update *ResumeUpdate) (*Resume, error)
	Delete(ctx context.Context, userID, id string) error
	SetPrimary(ctx context.Context, userID, id string) (*Resume, error)
	Analyze(ctx context.Context, userID, id string, req *ResumeAnalysisRequest) (*Resume, error)
	Download(ctx context.Context, userID, id string) (path string, fileName string, err error)
}
