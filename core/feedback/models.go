package feedback

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kodelab/panel/core"
)

// Feedback is a lightweight survey: a prompt, optionally with star ratings.
type Feedback struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	IsRating  bool      `json:"is_rating"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedback contains information needed to create a new Feedback.
type NewFeedback struct {
	Title    string `json:"title" validate:"required"`
	IsRating bool   `json:"is_rating"`
}

func (nf *NewFeedback) Validate(validate *validator.Validate) error {
	nf.Title = core.CleanString(nf.Title)
	return validate.Struct(nf)
}

// Response is a user's answer to a survey; rating and comments are both
// optional, as is the link to a submission.
type Response struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	SubmitingID *int      `json:"submiting_id,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	Comments    *string   `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RatingSummary aggregates responses for display; Average only covers the
// responses that carry a rating.
type RatingSummary struct {
	Total   int     `json:"total"`
	Rated   int     `json:"rated"`
	Average float64 `json:"average"`
}

func Summarize(resps []Response) RatingSummary {
	s := RatingSummary{Total: len(resps)}
	var sum int
	for _, r := range resps {
		if r.Rating != nil {
			s.Rated++
			sum += *r.Rating
		}
	}
	if s.Rated > 0 {
		s.Average = float64(sum) / float64(s.Rated)
	}
	return s
}
