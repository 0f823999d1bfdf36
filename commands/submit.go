package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/daily-yolk/yolk-app-sheets/entries"
)

var SubmitCmd = Submit{
	date:        "",
	preparation: "",
	quantity:    "",
}

type Submit struct {
	command
	date        string
	preparation string
	quantity    string
}

func (cmd *Submit) Name() string {
	return "submit"
}

func (cmd *Submit) Description() string {
	return "Appends an entry to the Google Sheets worksheet"
}

func (cmd *Submit) Usage() string {
	return "[--date <MM/DD/YYYY>] --preparation <preparation> --quantity <quantity>"
}

func (cmd *Submit) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] submit [options] --preparation <preparation> --quantity <quantity>\n", APP)
	fmt.Println()
	fmt.Println("  Appends a single entry to the Google Sheets worksheet")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s submit --date 03/10/2024 --preparation boiled --quantity 2\n", APP)
	fmt.Println()
}

func (cmd *Submit) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("submit", flag.ExitOnError)

	flagset.StringVar(&cmd.date, "date", cmd.date, "Date eaten (MM/DD/YYYY). Defaults to today")
	flagset.StringVar(&cmd.preparation, "preparation", cmd.preparation, "How the eggs were prepared e.g. 'boiled'")
	flagset.StringVar(&cmd.quantity, "quantity", cmd.quantity, "Number of eggs")

	return flagset
}

func (cmd *Submit) Execute(args ...any) error {
	if err := required("preparation", cmd.preparation); err != nil {
		return err
	} else if err := required("quantity", cmd.quantity); err != nil {
		return err
	}

	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	date := cmd.date
	if date == "" {
		date = time.Now().Format(entries.DateFormat)
	}

	entry := entries.Entry{
		DateEaten:   date,
		Preparation: cmd.preparation,
		Quantity:    cmd.quantity,
	}

	if err := newService(cfg).Submit(context.Background(), entry); err != nil {
		return err
	}

	fmt.Printf("Submitted %v x %v for %v\n", entry.Quantity, entry.Preparation, entry.DateEaten)

	return nil
}
