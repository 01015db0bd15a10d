package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/kodelab/panel/core/submission"
)

func (cli *commandLine) submission(args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	listCmd := flag.NewFlagSet("submission list", flag.ExitOnError)
	listStatus := listCmd.String("status", string(submission.StatusAll), "Filter by status: all, success or failed.")
	listSearch := listCmd.String("search", "", "Match against the submitter's name, nim or question title.")

	deleteCmd := flag.NewFlagSet("submission delete", flag.ExitOnError)
	deleteID := deleteCmd.Int("id", 0, "The submission's id.")
	deleteYes := deleteCmd.Bool("yes", false, "Confirm the deletion.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		status := submission.StatusFilter(*listStatus)
		if !status.Valid() {
			listCmd.Usage()
			return errHelp
		}
		if err := cli.submissionSvc.Refresh(ctx); err != nil {
			return err
		}
		for _, sub := range cli.submissionSvc.Filter(status, *listSearch) {
			state := "failed"
			if sub.IsSuccess {
				state = "success"
			}
			fmt.Printf("#%d %s (%s) - %s [%s]\n", sub.ID, sub.User.Name, sub.User.Nim, sub.Question.Title, state)
		}
		return nil

	case "counts":
		if err := cli.submissionSvc.Refresh(ctx); err != nil {
			return err
		}
		counts := cli.submissionSvc.Counts()
		fmt.Printf("total: %d, success: %d, failed: %d\n", counts.Total, counts.Success, counts.Failed)
		return nil

	case "delete":
		if err := deleteCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *deleteID == 0 || !*deleteYes {
			deleteCmd.Usage()
			return errHelp
		}
		if err := cli.submissionSvc.Refresh(ctx); err != nil {
			return err
		}
		if err := cli.submissionSvc.Delete(ctx, *deleteID); err != nil {
			return err
		}
		fmt.Printf("deleted submission #%d\n", *deleteID)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
