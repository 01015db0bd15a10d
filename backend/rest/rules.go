package rest

import (
	"context"
	"net/http"

	"github.com/kodelab/panel/core/rules"
)

type RulesRepository struct {
	c *Client
}

var _ rules.Repository = (*RulesRepository)(nil)

func NewRulesRepository(c *Client) *RulesRepository {
	return &RulesRepository{c: c}
}

type rulesEnvelope struct {
	Rules rules.Document `json:"rules"`
}

func (repo *RulesRepository) GetRules(ctx context.Context) (rules.Document, error) {
	var res rulesEnvelope
	err := repo.c.get(ctx, "/rules", true, &res)
	return res.Rules, err
}

func (repo *RulesRepository) UpdateRules(ctx context.Context, ud rules.UpdateDocument) (rules.Document, error) {
	var res rulesEnvelope
	err := repo.c.postForm(ctx, "/rules", map[string]string{
		"data": ud.Data,
	}, http.MethodPut, true, &res)
	return res.Rules, err
}
