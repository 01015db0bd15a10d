package echopanel

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/feedback"
)

type feedbackApi struct {
	deps ServerDeps
}

func registerFeedbackAPI(g *echo.Group, deps ServerDeps) {
	api := feedbackApi{deps: deps}

	fg := g.Group("/feedback")
	fg.GET("", api.list)
	fg.POST("", api.create)
	fg.GET("/:id/responses", api.responses)
}

func (api *feedbackApi) list(ctx echo.Context) error {
	items := api.deps.FeedbackSvc.Items()
	if items == nil {
		items = []feedback.Feedback{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *feedbackApi) create(ctx echo.Context) error {
	var data feedback.NewFeedback
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFeedback")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	fb, err := api.deps.FeedbackSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating feedback")
	}
	return ctx.JSON(http.StatusCreated, fb)
}

// responses is fetched lazily per survey, only when the detail view opens.
func (api *feedbackApi) responses(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	resps, err := api.deps.FeedbackSvc.Responses(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching responses")
	}
	if resps == nil {
		resps = []feedback.Response{}
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"responses": resps,
		"summary":   feedback.Summarize(resps),
	})
}
