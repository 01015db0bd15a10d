package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/kodelab/panel/core/question"
)

func (cli *commandLine) question(args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	createCmd := flag.NewFlagSet("question create", flag.ExitOnError)
	createTitle := createCmd.String("title", "", "The question's title.")
	createDesc := createCmd.String("description", "", "A short description.")
	createFile := createCmd.String("file", "", "Path to a file holding the question's HTML content.")
	createKey := createCmd.String("key", "", "The 10-digit answer key.")

	updateCmd := flag.NewFlagSet("question update", flag.ExitOnError)
	updateID := updateCmd.Int("id", 0, "The question's id.")
	updateTitle := updateCmd.String("title", "", "The question's title.")
	updateDesc := updateCmd.String("description", "", "A short description.")
	updateFile := updateCmd.String("file", "", "Path to a file holding the question's HTML content.")
	updateKey := updateCmd.String("key", "", "The 10-digit answer key.")

	getCmd := flag.NewFlagSet("question get", flag.ExitOnError)
	getID := getCmd.Int("id", 0, "The question's id.")

	deleteCmd := flag.NewFlagSet("question delete", flag.ExitOnError)
	deleteID := deleteCmd.Int("id", 0, "The question's id.")
	deleteYes := deleteCmd.Bool("yes", false, "Confirm the deletion.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		if err := cli.questionSvc.Refresh(ctx); err != nil {
			return err
		}
		for _, q := range cli.questionSvc.Items() {
			fmt.Printf("#%d %s - %s (key %s)\n", q.ID, q.Title, q.Description, q.Key)
		}
		return nil

	case "get":
		if err := getCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *getID == 0 {
			getCmd.Usage()
			return errHelp
		}
		q, err := cli.questionSvc.Get(ctx, *getID)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s\n%s\nkey: %s\n\n%s\n", q.ID, q.Title, q.Description, q.Key, q.Question)
		return nil

	case "create":
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *createFile == "" {
			createCmd.Usage()
			return errHelp
		}
		html, err := ioutil.ReadFile(*createFile)
		if err != nil {
			return err
		}
		nq := question.NewQuestion{
			Title:       *createTitle,
			Description: *createDesc,
			Question:    string(html),
			Key:         *createKey,
		}
		if err := nq.Validate(cli.validate); err != nil {
			return err
		}
		if err := cli.questionSvc.Refresh(ctx); err != nil {
			return err
		}
		q, err := cli.questionSvc.Create(ctx, nq)
		if err != nil {
			return err
		}
		fmt.Printf("created question #%d\n", q.ID)
		return nil

	case "update":
		if err := updateCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *updateID == 0 || *updateFile == "" {
			updateCmd.Usage()
			return errHelp
		}
		html, err := ioutil.ReadFile(*updateFile)
		if err != nil {
			return err
		}
		uq := question.UpdateQuestion{
			Title:       *updateTitle,
			Description: *updateDesc,
			Question:    string(html),
			Key:         *updateKey,
		}
		if err := uq.Validate(cli.validate); err != nil {
			return err
		}
		if err := cli.questionSvc.Refresh(ctx); err != nil {
			return err
		}
		q, err := cli.questionSvc.Update(ctx, *updateID, uq)
		if err != nil {
			return err
		}
		fmt.Printf("updated question #%d\n", q.ID)
		return nil

	case "delete":
		if err := deleteCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *deleteID == 0 || !*deleteYes {
			deleteCmd.Usage()
			return errHelp
		}
		if err := cli.questionSvc.Refresh(ctx); err != nil {
			return err
		}
		if err := cli.questionSvc.Delete(ctx, *deleteID); err != nil {
			return err
		}
		fmt.Printf("deleted question #%d\n", *deleteID)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
