package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echopanel "github.com/kodelab/panel/apps/panel/echo"
	"github.com/kodelab/panel/backend/rest"
	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/dashboard"
	"github.com/kodelab/panel/core/editor"
	"github.com/kodelab/panel/core/feedback"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/rules"
	"github.com/kodelab/panel/core/session"
	"github.com/kodelab/panel/core/submission"
	logsvc "github.com/kodelab/panel/services/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "PANEL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
	)
	logger.Enable(!core.Conf.GetBool("debug"))

	// set up session; the token survives restarts on disk
	store := session.NewFileStore(core.Conf.GetString("tokenFile"))
	sess, err := session.New(store)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading session: %v", err), err)
	}

	// set up repositories against the remote API
	client := rest.NewClient(core.Conf.GetString("apiBaseURL"), sess)
	authSvc := session.NewService(sess, rest.NewAuthRepository(client))
	questionSvc := question.NewService(sess, rest.NewQuestionRepository(client))
	submissionSvc := submission.NewService(sess, rest.NewSubmissionRepository(client))
	rulesSvc := rules.NewService(sess, rest.NewRulesRepository(client))
	feedbackSvc := feedback.NewService(sess, rest.NewFeedbackRepository(client))

	dash := dashboard.NewController(questionSvc, submissionSvc, rulesSvc, feedbackSvc)
	sess.OnChange(func() {
		if err := dash.TokenChanged(context.Background()); err != nil {
			logger.Warn(fmt.Sprintf("refreshing active tab: %v", err), err)
		}
	})

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("%s initializing : build %q", core.Conf.GetString("appName"), core.Conf.GetString("build")))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Panel Service

	server := echopanel.NewServer(
		echopanel.ServerDeps{
			Addr:          core.Conf.GetString("addr"),
			Logger:        logger,
			Validate:      validate,
			Translator:    translator,
			Sess:          sess,
			Editors:       editor.NewManager(),
			AuthSvc:       authSvc,
			QuestionSvc:   questionSvc,
			SubmissionSvc: submissionSvc,
			RulesSvc:      rulesSvc,
			FeedbackSvc:   feedbackSvc,
			Dash:          dash,
		},
	)
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
