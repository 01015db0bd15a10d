package rest

import (
	"context"
	"fmt"

	"github.com/kodelab/panel/core/submission"
)

type SubmissionRepository struct {
	c *Client
}

var _ submission.Repository = (*SubmissionRepository)(nil)

func NewSubmissionRepository(c *Client) *SubmissionRepository {
	return &SubmissionRepository{c: c}
}

func (repo *SubmissionRepository) QueryAllSubmissions(ctx context.Context) ([]submission.Submission, error) {
	var res struct {
		Submiting []submission.Submission `json:"submiting"`
	}
	err := repo.c.get(ctx, "/submiting", true, &res)
	return res.Submiting, err
}

// DeleteSubmission is a plain multipart POST; this endpoint takes no
// method override.
func (repo *SubmissionRepository) DeleteSubmission(ctx context.Context, id int) error {
	return repo.c.postForm(ctx, fmt.Sprintf("/submiting/%d", id), nil, "", true, nil)
}
