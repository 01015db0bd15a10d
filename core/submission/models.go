package submission

import "time"

// Submitter identifies the student who submitted.
type Submitter struct {
	Name     string `json:"name"`
	Nim      string `json:"nim"`
	Kelompok string `json:"kelompok"`
}

// QuestionRef is the denormalized question the code was submitted against.
type QuestionRef struct {
	Title    string `json:"title"`
	Question string `json:"question"` // sanitized HTML
}

// AIReview is the optional automated assessment attached by the backend.
type AIReview struct {
	DeskripsiSingkat string  `json:"deskripsi_singkat"`
	Score            float64 `json:"score"`
}

// Submission is read-only from the panel's perspective, except for delete.
type Submission struct {
	ID         int         `json:"id"`
	User       Submitter   `json:"user"`
	QuestionID int         `json:"question_id"`
	Question   QuestionRef `json:"question"`
	Code       string      `json:"code"`
	Input      string      `json:"input"`
	Output     string      `json:"output"`
	IsSuccess  bool        `json:"is_success"`
	AIReview   *AIReview   `json:"submiting_ai,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// StatusFilter selects submissions by outcome, applied client-side.
type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusSuccess StatusFilter = "success"
	StatusFailed  StatusFilter = "failed"
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

// Counts summarizes the fetched collection for the filter controls.
type Counts struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}
