package echopanel

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kodelab/panel/core/session"
)

// routeGuard gates the management area on the session. Browsers get sent
// back to the login route; API callers get a plain 401. The protected
// subtree never renders without a token.
func routeGuard(sess *session.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sess.Authenticated() {
				return next(ctx)
			}
			if strings.Contains(ctx.Request().Header.Get("Accept"), echo.MIMETextHTML) {
				return ctx.Redirect(http.StatusFound, "/login")
			}
			return errUnauthorized
		}
	}
}
