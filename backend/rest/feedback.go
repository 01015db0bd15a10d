package rest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kodelab/panel/core/feedback"
)

type FeedbackRepository struct {
	c *Client
}

var _ feedback.Repository = (*FeedbackRepository)(nil)

func NewFeedbackRepository(c *Client) *FeedbackRepository {
	return &FeedbackRepository{c: c}
}

func (repo *FeedbackRepository) QueryAllFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	var res struct {
		Feedbacks []feedback.Feedback `json:"feedbacks"`
	}
	err := repo.c.get(ctx, "/feedback", true, &res)
	return res.Feedbacks, err
}

// CreateFeedback is the odd one out: the endpoint takes JSON, with
// is_rating serialized as the string "true"/"false".
func (repo *FeedbackRepository) CreateFeedback(ctx context.Context, nf feedback.NewFeedback) (feedback.Feedback, error) {
	payload := struct {
		Title    string `json:"title"`
		IsRating string `json:"is_rating"`
	}{
		Title:    nf.Title,
		IsRating: strconv.FormatBool(nf.IsRating),
	}

	var res struct {
		Feedback feedback.Feedback `json:"feedback"`
	}
	err := repo.c.postJSON(ctx, "/feedback", payload, true, &res)
	return res.Feedback, err
}

func (repo *FeedbackRepository) QueryResponses(ctx context.Context, feedbackID int) ([]feedback.Response, error) {
	var res struct {
		Response []feedback.Response `json:"response"`
	}
	err := repo.c.get(ctx, fmt.Sprintf("/feedback/%d/response", feedbackID), true, &res)
	return res.Response, err
}
