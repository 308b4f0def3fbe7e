package llm

import (
	"fmt"
	"strings"

	"jobforge-backend/internal/domain"
)

const (
	coverLetterSystemPrompt = "You write concise, effective cover letters that sound human and sincere."
	questionsSystemPrompt   = "You are an expert interview coach. Provide questions with 1-2 sentence guidance."
	analysisSystemPrompt    = "You are an elite Applicant Tracking System (ATS) that scores resumes for job seekers. " +
		"Always respond with valid JSON and no additional commentary."
	enrichmentSystemPrompt = "You are an expert job market analyst who cleans and summarizes scraped job postings. " +
		"Always respond with valid JSON and never include markdown."
)

// CoverLetterPrompt builds the chat turns for cover letter generation.
func CoverLetterPrompt(jobTitle, company, jobDescription, tone, length, customNotes, resumeText string) []Message {
	if tone == "" {
		tone = "professional"
	}
	if length == "" {
		length = "medium"
	}
	var b strings.Builder
	b.WriteString("Write a tailored cover letter for the candidate below.\n")
	fmt.Fprintf(&b, "Job Title: %s\n", jobTitle)
	fmt.Fprintf(&b, "Company: %s\n", company)
	fmt.Fprintf(&b, "Tone: %s\n", tone)
	fmt.Fprintf(&b, "Length: %s\n", length)
	if customNotes != "" {
		fmt.Fprintf(&b, "Custom notes from user: %s\n", customNotes)
	}
	b.WriteString("Job Description:\n")
	if jobDescription != "" {
		b.WriteString(jobDescription)
	} else {
		b.WriteString("No description provided.")
	}
	b.WriteString("\n\nResume:\n")
	b.WriteString(resumeText)
	return []Message{
		{Role: "system", Content: coverLetterSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// InterviewQuestionsPrompt builds the chat turns for interview prep
// question generation.
func InterviewQuestionsPrompt(jobTitle, company, jobDescription, interviewType, seniority string, focusAreas []string, count int) []Message {
	if seniority == "" {
		seniority = "mid-level"
	}
	if jobDescription == "" {
		jobDescription = "N/A"
	}
	var b strings.Builder
	b.WriteString("Generate concise interview preparation questions with a short guidance note for each.\n")
	fmt.Fprintf(&b, "Interview type: %s\n", interviewType)
	fmt.Fprintf(&b, "Seniority: %s\n", seniority)
	if len(focusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s\n", strings.Join(focusAreas, ", "))
	}
	fmt.Fprintf(&b, "Job Title: %s\n", jobTitle)
	fmt.Fprintf(&b, "Company: %s\n", company)
	fmt.Fprintf(&b, "Job Description:\n%s\n", jobDescription)
	fmt.Fprintf(&b, "Return exactly %d questions, one per line, formatted as \"N. Question - Guidance\".", count)
	return []Message{
		{Role: "system", Content: questionsSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// AnalysisPrompt builds the chat turns for resume scoring.
func AnalysisPrompt(resumeText string, req *domain.ResumeAnalysisRequest) []Message {
	var b strings.Builder
	b.WriteString("Analyze the resume below and provide structured recommendations.")
	b.WriteString("Return JSON with the following keys: ats_score (0-100), keyword_match_score (0-100), ")
	b.WriteString("strengths (list of short bullet points), weaknesses (list), suggestions (list), ")
	b.WriteString("missing_keywords (list of keywords the candidate should add).")
	if req != nil {
		if req.JobTitle != nil && *req.JobTitle != "" {
			fmt.Fprintf(&b, "\nTarget Role: %s", *req.JobTitle)
		}
		if req.JobDescription != nil && *req.JobDescription != "" {
			fmt.Fprintf(&b, "\nJob Description:\n%s", *req.JobDescription)
		}
		if len(req.TargetKeywords) > 0 {
			fmt.Fprintf(&b, "\nTarget Keywords: %s", strings.Join(req.TargetKeywords, ", "))
		}
	}
	fmt.Fprintf(&b, "\nResume Text:\n%s", resumeText)
	return []Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// EnrichmentPrompt builds the chat turns for job posting enrichment.
func EnrichmentPrompt(job *domain.Job) []Message {
	var b strings.Builder
	b.WriteString("Clean up this scraped job posting and return structured JSON with keys:\n")
	b.WriteString("summary (2 sentences max), highlights (list of short bullet phrases), ")
	b.WriteString("required_skills (list of technologies/tools), compensation (string if mentioned), ")
	b.WriteString("remote_policy (remote/hybrid/on-site summary), validated_url (absolute https link).\n\n")
	fmt.Fprintf(&b, "Job Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", job.Company)
	fmt.Fprintf(&b, "Location: %s\n", job.Location)
	if job.RemoteType != nil && *job.RemoteType != "" {
		fmt.Fprintf(&b, "Remote Type: %s\n", *job.RemoteType)
	}
	if job.JobType != nil && *job.JobType != "" {
		fmt.Fprintf(&b, "Job Type: %s\n", *job.JobType)
	}
	if job.SalaryMin != nil || job.SalaryMax != nil {
		fmt.Fprintf(&b, "Salary Range: %s - %s\n", formatSalary(job.SalaryMin), formatSalary(job.SalaryMax))
	}
	fmt.Fprintf(&b, "\nDescription:\n%s\n", job.Description)
	if job.Requirements != nil && *job.Requirements != "" {
		fmt.Fprintf(&b, "\nRequirements:\n%s\n", *job.Requirements)
	}
	return []Message{
		{Role: "system", Content: enrichmentSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}

func formatSalary(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.0f", *v)
}

// ParseInterviewQuestions turns a numbered list of "N. Question - Guidance"
// lines into structured questions. Lines without a guidance separator keep
// the full text as the question.
func ParseInterviewQuestions(raw string) []domain.InterviewQuestion {
	var questions []domain.InterviewQuestion
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		question, guidance := line, ""
		if idx := strings.Index(line, " - "); idx >= 0 {
			question, guidance = line[:idx], line[idx+3:]
		}
		question = strings.TrimLeft(question, "0123456789. ")
		question = strings.TrimSpace(question)
		if question == "" {
			continue
		}
		q := domain.InterviewQuestion{Question: question}
		if g := strings.TrimSpace(guidance); g != "" {
			q.Guidance = &g
		}
		questions = append(questions, q)
	}
	return questions
}
