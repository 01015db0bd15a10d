package echopanel

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/dashboard"
	"github.com/kodelab/panel/core/editor"
	"github.com/kodelab/panel/core/feedback"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/rules"
	"github.com/kodelab/panel/core/session"
	"github.com/kodelab/panel/core/submission"
)

type (
	ServerDeps struct {
		Addr           string
		DisableReqLogs bool

		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		Sess          *session.Session
		Editors       *editor.Manager
		AuthSvc       *session.Service
		QuestionSvc   *question.Service
		SubmissionSvc *submission.Service
		RulesSvc      *rules.Service
		FeedbackSvc   *feedback.Service
		Dash          *dashboard.Controller
	}

	Server struct {
		deps ServerDeps
		app  *echo.Echo

		serverErrors chan error
		shutdown     chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:         deps,
		app:          echo.New(),
		serverErrors: make(chan error, 1),
		shutdown:     make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)
	s.app.GET("/login", loginHint)

	registerAuthAPI(s.app, s.deps)

	// everything under /panel sits behind the route guard
	pg := s.app.Group("/panel", routeGuard(s.deps.Sess))
	registerDashboardAPI(pg, s.deps)
	registerQuestionAPI(pg, s.deps)
	registerSubmissionAPI(pg, s.deps)
	registerRulesAPI(pg, s.deps)
	registerFeedbackAPI(pg, s.deps)
}

func (s *Server) Start() {
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s.serverErrors <- s.app.Start(s.deps.Addr)
	}()
}

func (s *Server) Errors() <-chan error {
	return s.serverErrors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.GetString("appName")+"!")
}

func loginHint(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"detail": "POST your nim and pin to /login"})
}
