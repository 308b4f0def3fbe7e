package domain

import "context"

// Interview preparation types
const (
	PrepTypeBehavioral   = "behavioral"
	PrepTypeTechnical    = "technical"
	PrepTypeSystemDesign = "system_design"
)

var prepTypes = []string{
	PrepTypeBehavioral,
	PrepTypeTechnical,
	PrepTypeSystemDesign,
}

func IsValidPrepType(t string) bool {
	for _, v := range prepTypes {
		if v == t {
			return true
		}
	}
	return false
}

type CoverLetterRequest struct {
	ResumeID    string
	JobID       *string
	Tone        string
	Length      string
	CustomNotes *string
}

type CoverLetterResult struct {
	Letter           string `json:"letter"`
	Model            string `json:"model"`
	PromptTokens     *int   `json:"prompt_tokens,omitempty"`
	CompletionTokens *int   `json:"completion_tokens,omitempty"`
}

type InterviewQuestion struct {
	Question string  `json:"question"`
	Guidance *string `json:"guidance,omitempty"`
}

type InterviewQuestionsRequest struct {
	JobID         string
	InterviewType string
	Seniority     *string
	FocusAreas    []string
}

type InterviewQuestionsResult struct {
	JobID            string              `json:"job_id"`
	InterviewType    string              `json:"interview_type"`
	Questions        []InterviewQuestion `json:"questions"`
	Model            string              `json:"model"`
	PromptTokens     *int                `json:"prompt_tokens,omitempty"`
	CompletionTokens *int                `json:"completion_tokens,omitempty"`
}

type AIUsecase interface {
	GenerateCoverLetter(ctx context.Context, userID string, req *CoverLetterRequest) (*CoverLetterResult, error)
	GenerateInterviewQuestions(ctx context.Context, req *InterviewQuestionsRequest) (*InterviewQuestionsResult, error)
}
