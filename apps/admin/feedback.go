package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/kodelab/panel/core/feedback"
)

func (cli *commandLine) feedback(args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	createCmd := flag.NewFlagSet("feedback create", flag.ExitOnError)
	createTitle := createCmd.String("title", "", "The survey's prompt.")
	createRating := createCmd.Bool("rating", false, "Collect star ratings with this survey.")

	responsesCmd := flag.NewFlagSet("feedback responses", flag.ExitOnError)
	responsesID := responsesCmd.Int("id", 0, "The survey's id.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		if err := cli.feedbackSvc.Refresh(ctx); err != nil {
			return err
		}
		for _, fb := range cli.feedbackSvc.Items() {
			kind := "comments"
			if fb.IsRating {
				kind = "ratings"
			}
			fmt.Printf("#%d %s (%s)\n", fb.ID, fb.Title, kind)
		}
		return nil

	case "create":
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		nf := feedback.NewFeedback{Title: *createTitle, IsRating: *createRating}
		if err := nf.Validate(cli.validate); err != nil {
			return err
		}
		if err := cli.feedbackSvc.Refresh(ctx); err != nil {
			return err
		}
		fb, err := cli.feedbackSvc.Create(ctx, nf)
		if err != nil {
			return err
		}
		fmt.Printf("created feedback #%d\n", fb.ID)
		return nil

	case "responses":
		if err := responsesCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *responsesID == 0 {
			responsesCmd.Usage()
			return errHelp
		}
		resps, err := cli.feedbackSvc.Responses(ctx, *responsesID)
		if err != nil {
			return err
		}
		for _, r := range resps {
			line := fmt.Sprintf("#%d user %d", r.ID, r.UserID)
			if r.Rating != nil {
				line += fmt.Sprintf(" rating %d", *r.Rating)
			}
			if r.Comments != nil {
				line += " - " + *r.Comments
			}
			fmt.Println(line)
		}
		summary := feedback.Summarize(resps)
		fmt.Printf("total: %d, rated: %d, average: %.2f\n", summary.Total, summary.Rated, summary.Average)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
