package echopanel

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/question"
)

type questionApi struct {
	deps ServerDeps
}

func registerQuestionAPI(g *echo.Group, deps ServerDeps) {
	api := questionApi{deps: deps}

	qg := g.Group("/questions")
	qg.GET("", api.list)
	qg.POST("", api.create)
	qg.GET("/:id", api.retrieve)
	qg.PUT("/:id", api.update)
	qg.DELETE("/:id", api.destroy)
	qg.POST("/:id/edit", api.openEditor)
	qg.DELETE("/:id/edit", api.closeEditor)
}

func (api *questionApi) list(ctx echo.Context) error {
	items := api.deps.QuestionSvc.Items()
	if items == nil {
		items = []question.Question{}
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *questionApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	q, err := api.deps.QuestionSvc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching question")
	}
	return ctx.JSON(http.StatusOK, q)
}

func (api *questionApi) create(ctx echo.Context) error {
	var data question.NewQuestion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuestion")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	q, err := api.deps.QuestionSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating question")
	}
	return ctx.JSON(http.StatusCreated, q)
}

func (api *questionApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data question.UpdateQuestion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuestion")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	q, err := api.deps.QuestionSvc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating question")
	}

	// a successful save ends the edit session
	api.releaseEditor(id)
	return ctx.JSON(http.StatusOK, q)
}

// openEditor mounts the rich-text editor against one question. It fails
// while an editor is still live, including one for a different record.
func (api *questionApi) openEditor(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	q, err := api.deps.QuestionSvc.Get(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "fetching question")
	}

	ed, err := api.deps.Editors.Acquire(q.ID, q.Question)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"record": ed.RecordID(), "data": ed.HTML()})
}

func (api *questionApi) closeEditor(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	api.releaseEditor(id)
	return ctx.NoContent(http.StatusNoContent)
}

func (api *questionApi) releaseEditor(id int) {
	if live, ok := api.deps.Editors.Live(); ok && live == id {
		api.deps.Editors.ReleaseLive()
	}
}

// destroy requires the caller to repeat the target id in a `confirm`
// parameter; deletes are never a single careless click.
func (api *questionApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	if ctx.QueryParam("confirm") != strconv.Itoa(id) {
		return errBadConfirm
	}

	if err := api.deps.QuestionSvc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting question")
	}
	return ctx.NoContent(http.StatusNoContent)
}
