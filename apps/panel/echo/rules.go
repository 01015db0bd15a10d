package echopanel

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/rules"
)

// the rules document is a singleton; its editor mounts against record id 0
const rulesRecordID = 0

type rulesApi struct {
	deps ServerDeps
}

func registerRulesAPI(g *echo.Group, deps ServerDeps) {
	api := rulesApi{deps: deps}

	rg := g.Group("/rules")
	rg.GET("", api.retrieve)
	rg.PUT("", api.update)
	rg.POST("/edit", api.openEditor)
	rg.DELETE("/edit", api.closeEditor)
}

func (api *rulesApi) retrieve(ctx echo.Context) error {
	doc, ok := api.deps.RulesSvc.Document()
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, doc)
}

func (api *rulesApi) update(ctx echo.Context) error {
	var data rules.UpdateDocument
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDocument")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	doc, err := api.deps.RulesSvc.Update(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "updating rules")
	}

	// a successful save ends the edit session
	api.releaseEditor()
	return ctx.JSON(http.StatusOK, doc)
}

// openEditor mounts the rich-text editor against the singleton document.
// It fails while an editor is still live for another record.
func (api *rulesApi) openEditor(ctx echo.Context) error {
	doc, _ := api.deps.RulesSvc.Document()
	ed, err := api.deps.Editors.Acquire(rulesRecordID, doc.Data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"record": ed.RecordID(), "data": ed.HTML()})
}

func (api *rulesApi) closeEditor(ctx echo.Context) error {
	api.releaseEditor()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *rulesApi) releaseEditor() {
	if id, ok := api.deps.Editors.Live(); ok && id == rulesRecordID {
		api.deps.Editors.ReleaseLive()
	}
}
