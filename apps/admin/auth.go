package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/kodelab/panel/core/session"
)

func (cli *commandLine) login(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	nim := loginCmd.String("nim", "", "The student id number. The pin will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *nim == "" {
		loginCmd.Usage()
		return errHelp
	}

	pin, err := promptPin()
	if err != nil {
		return err
	}
	if pin == "" {
		loginCmd.Usage()
		return errHelp
	}

	ctx := context.Background()
	creds := session.Credentials{Nim: *nim, Pin: pin}
	if err := creds.Validate(cli.validate); err != nil {
		return err
	}
	if err := cli.authSvc.Login(ctx, creds); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.authSvc.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	acct, err := cli.authSvc.Current(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s (nim %s, kelompok %s, role %s)\n", acct.ID, acct.Name, acct.Nim, acct.Kelompok, acct.Role)
	return nil
}
