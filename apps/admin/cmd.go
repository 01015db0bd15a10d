package main

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/kodelab/panel/core/feedback"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/rules"
	"github.com/kodelab/panel/core/session"
	"github.com/kodelab/panel/core/submission"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	sess     *session.Session
	validate *validator.Validate

	authSvc       *session.Service
	questionSvc   *question.Service
	submissionSvc *submission.Service
	rulesSvc      *rules.Service
	feedbackSvc   *feedback.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -nim NIM                                - log in; the pin will be prompted next")
	fmt.Println("  logout                                        - log out and clear the stored token")
	fmt.Println("  whoami                                        - show the logged-in account")
	fmt.Println("  question list|get|create|update|delete        - manage questions")
	fmt.Println("  submission list|counts|delete                 - inspect and prune submissions")
	fmt.Println("  rules show|update                             - show or replace the rules document")
	fmt.Println("  feedback list|create|responses                - manage feedback surveys")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "question":
		return cli.question(args[2:])
	case "submission":
		return cli.submission(args[2:])
	case "rules":
		return cli.rules(args[2:])
	case "feedback":
		return cli.feedback(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func promptPin() (string, error) {
	fmt.Print("Enter pin:")
	pin, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pin), nil
}
