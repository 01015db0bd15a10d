package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/kodelab/panel/backend/rest"
	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/feedback"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/rules"
	"github.com/kodelab/panel/core/session"
	"github.com/kodelab/panel/core/submission"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up session against the same token file the panel uses
	store := session.NewFileStore(core.Conf.GetString("tokenFile"))
	sess, err := session.New(store)
	errAndDie(err)

	client := rest.NewClient(core.Conf.GetString("apiBaseURL"), sess)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		sess:          sess,
		validate:      validate,
		authSvc:       session.NewService(sess, rest.NewAuthRepository(client)),
		questionSvc:   question.NewService(sess, rest.NewQuestionRepository(client)),
		submissionSvc: submission.NewService(sess, rest.NewSubmissionRepository(client)),
		rulesSvc:      rules.NewService(sess, rest.NewRulesRepository(client)),
		feedbackSvc:   feedback.NewService(sess, rest.NewFeedbackRepository(client)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
