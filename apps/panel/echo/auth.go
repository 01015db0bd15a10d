package echopanel

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/session"
)

type authApi struct {
	deps ServerDeps
}

func registerAuthAPI(app *echo.Echo, deps ServerDeps) {
	api := authApi{deps: deps}

	// un-authed endpoints
	app.POST("/login", api.login)
	app.POST("/register", api.register)

	// authed endpoints live under the guarded group, but logout and the
	// current-user lookup belong to the auth flow
	ag := app.Group("", routeGuard(deps.Sess))
	ag.POST("/logout", api.logout)
	ag.GET("/user", api.currentUser)
}

func (api *authApi) login(ctx echo.Context) error {
	var data session.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	if err := api.deps.AuthSvc.Login(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"detail": "logged in"})
}

func (api *authApi) register(ctx echo.Context) error {
	var data session.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Registration")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	if err := api.deps.AuthSvc.Register(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "registering")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"detail": "registered"})
}

func (api *authApi) logout(ctx echo.Context) error {
	if err := api.deps.AuthSvc.Logout(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"detail": "logged out"})
}

func (api *authApi) currentUser(ctx echo.Context) error {
	acct, err := api.deps.AuthSvc.Current(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "fetching current user")
	}
	return ctx.JSON(http.StatusOK, acct)
}
