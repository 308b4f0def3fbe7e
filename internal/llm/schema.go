package llm

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"jobforge-backend/internal/domain"
)

const analysisSchema = `{
	"type": "object",
	"required": ["ats_score", "keyword_match_score"],
	"properties": {
		"ats_score": {"type": "number", "minimum": 0, "maximum": 100},
		"keyword_match_score": {"type": "number", "minimum": 0, "maximum": 100},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"weaknesses": {"type": "array", "items": {"type": "string"}},
		"suggestions": {"type": "array", "items": {"type": "string"}},
		"missing_keywords": {"type": "array", "items": {"type": "string"}}
	}
}`

const enrichmentSchema = `{
	"type": "object",
	"required": ["summary"],
	"properties": {
		"summary": {"type": "string", "minLength": 20},
		"highlights": {"type": "array", "items": {"type": "string"}},
		"required_skills": {"type": "array", "items": {"type": "string"}},
		"compensation": {"type": ["string", "null"]},
		"remote_policy": {"type": ["string", "null"]},
		"validated_url": {"type": ["string", "null"]}
	}
}`

func validate(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("schema validation: %s", errs[0].String())
		}
		return fmt.Errorf("schema validation failed")
	}
	return nil
}

// ValidateAnalysis checks a raw model reply against the analysis schema
// and unmarshals it.
func ValidateAnalysis(raw string) (*domain.ResumeAnalysis, error) {
	if err := validate(analysisSchema, raw); err != nil {
		return nil, err
	}
	var analysis domain.ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("analysis decode: %w", err)
	}
	return &analysis, nil
}

// ValidateEnrichment checks a raw model reply against the enrichment
// schema and unmarshals it.
func ValidateEnrichment(raw string) (*domain.JobEnrichment, error) {
	if err := validate(enrichmentSchema, raw); err != nil {
		return nil, err
	}
	var enrichment domain.JobEnrichment
	if err := json.Unmarshal([]byte(raw), &enrichment); err != nil {
		return nil, fmt.Errorf("enrichment decode: %w", err)
	}
	return &enrichment, nil
}
