package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/kodelab/panel/core/rules"
)

func (cli *commandLine) rules(args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	updateCmd := flag.NewFlagSet("rules update", flag.ExitOnError)
	updateFile := updateCmd.String("file", "", "Path to a file holding the new rules HTML.")
	updateYes := updateCmd.Bool("yes", false, "Apply the change. Without it only the diff is shown.")

	ctx := context.Background()

	switch args[0] {
	case "show":
		if err := cli.rulesSvc.Refresh(ctx); err != nil {
			return err
		}
		doc, ok := cli.rulesSvc.Document()
		if !ok {
			fmt.Println("no rules document yet")
			return nil
		}
		fmt.Println(doc.Data)
		return nil

	case "update":
		if err := updateCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *updateFile == "" {
			updateCmd.Usage()
			return errHelp
		}
		html, err := ioutil.ReadFile(*updateFile)
		if err != nil {
			return err
		}
		ud := rules.UpdateDocument{Data: string(html)}
		if err := ud.Validate(cli.validate); err != nil {
			return err
		}

		if err := cli.rulesSvc.Refresh(ctx); err != nil {
			return err
		}
		doc, _ := cli.rulesSvc.Document()

		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(doc.Data),
			B:        difflib.SplitLines(ud.Data),
			FromFile: "rules",
			ToFile:   *updateFile,
			Context:  3,
		}
		if err := difflib.WriteUnifiedDiff(os.Stdout, diff); err != nil {
			return err
		}
		if !*updateYes {
			fmt.Println("\nre-run with -yes to apply")
			return nil
		}

		if _, err := cli.rulesSvc.Update(ctx, ud); err != nil {
			return err
		}
		fmt.Println("rules updated")
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
