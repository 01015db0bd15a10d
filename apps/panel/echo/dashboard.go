package echopanel

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/dashboard"
)

type dashboardApi struct {
	deps ServerDeps
}

func registerDashboardAPI(g *echo.Group, deps ServerDeps) {
	api := dashboardApi{deps: deps}

	g.GET("/dashboard", api.active)
	g.POST("/dashboard/:tab", api.selectTab)
}

func (api *dashboardApi) active(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"active": api.deps.Dash.Active()})
}

// selectTab activates a tab, which fetches that tab's collection and
// nothing else.
func (api *dashboardApi) selectTab(ctx echo.Context) error {
	tab := dashboard.Tab(ctx.Param("tab"))
	if err := api.deps.Dash.Select(ctx.Request().Context(), tab); err != nil {
		return errors.Wrapf(err, "selecting tab %q", tab)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"active": tab})
}
