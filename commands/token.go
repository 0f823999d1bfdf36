package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/daily-yolk/yolk-app-sheets/google"
)

var TokenCmd = Token{
	keyFile:  "",
	readonly: false,
}

type Token struct {
	command
	keyFile  string
	readonly bool
}

func (cmd *Token) Name() string {
	return "token"
}

func (cmd *Token) Description() string {
	return "Generates a short-lived Google Sheets access token for the service account"
}

func (cmd *Token) Usage() string {
	return "[--key-file <file>] [--readonly]"
}

func (cmd *Token) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--env <file>] token [options]\n", APP)
	fmt.Println()
	fmt.Println("  Generates an access token for the Google Sheets API from a service account key file or,")
	fmt.Println("  if no key file is specified, from the GOOGLE_xxx environment variables. Tokens expire")
	fmt.Println("  after an hour.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s token --key-file service-account-key.json\n", APP)
	fmt.Println()
}

func (cmd *Token) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("token", flag.ExitOnError)

	flagset.StringVar(&cmd.keyFile, "key-file", cmd.keyFile, "Service account key JSON file downloaded from the Google Cloud console")
	flagset.BoolVar(&cmd.readonly, "readonly", cmd.readonly, "Restricts the token to read-only access")

	return flagset
}

func (cmd *Token) Execute(args ...any) error {
	var credentials *google.Credentials

	if cmd.keyFile != "" {
		if c, err := google.NewCredentialsFromFile(cmd.keyFile); err != nil {
			return fmt.Errorf("unable to read service account key file (%w)", err)
		} else {
			credentials = c
		}
	} else if cfg, err := cmd.configure(args...); err != nil {
		return err
	} else {
		credentials = google.NewCredentials(cfg)
	}

	scope := google.SHEETS
	if cmd.readonly {
		scope = google.SHEETS_READONLY
	}

	token, err := credentials.Token(context.Background(), scope)
	if err != nil {
		return fmt.Errorf("unable to generate access token (%w)", err)
	}

	fmt.Println()
	fmt.Printf("  Access token: %v\n", token.AccessToken)
	fmt.Printf("  Scope:        %v\n", scope)

	if !token.Expiry.IsZero() {
		fmt.Printf("  Expires:      %v\n", token.Expiry.Local().Format(time.DateTime))
	}

	fmt.Println()

	return nil
}
