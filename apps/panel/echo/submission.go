package echopanel

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/submission"
)

type submissionApi struct {
	deps ServerDeps
}

func registerSubmissionAPI(g *echo.Group, deps ServerDeps) {
	api := submissionApi{deps: deps}

	sg := g.Group("/submissions")
	sg.GET("", api.list)
	sg.GET("/counts", api.counts)
	sg.DELETE("/:id", api.destroy)
}

// list shapes the already-fetched collection; status and search are applied
// client-side and never forwarded to the remote API.
func (api *submissionApi) list(ctx echo.Context) error {
	status := submission.StatusFilter(ctx.QueryParam("status"))
	if status == "" {
		status = submission.StatusAll
	}
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
	}

	items := api.deps.SubmissionSvc.Filter(status, ctx.QueryParam("search"))
	return ctx.JSON(http.StatusOK, items)
}

func (api *submissionApi) counts(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.deps.SubmissionSvc.Counts())
}

func (api *submissionApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	if ctx.QueryParam("confirm") != strconv.Itoa(id) {
		return errBadConfirm
	}

	if err := api.deps.SubmissionSvc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting submission")
	}
	return ctx.NoContent(http.StatusNoContent)
}
