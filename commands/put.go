package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/daily-yolk/yolk-app-sheets/entries"
	"github.com/daily-yolk/yolk-app-sheets/log"
)

var PutCmd = Put{
	file: "",
}

type Put struct {
	command
	file string
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Appends the entries in a TSV file to the Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] put --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Appends the entries in a TSV file to the Google Sheets worksheet. The TSV file must have")
	fmt.Println("  'Date Eaten', 'Preparation' and 'Quantity' columns, any other columns are ignored.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --env .env put --file \"backfill.tsv\"\n", APP)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("put", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	if err := required("file", cmd.file); err != nil {
		return err
	}

	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	list, err := entries.ParseTSV(f)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%w)", err)
	}

	count, err := newService(cfg).Import(context.Background(), list)
	if err != nil {
		return err
	}

	log.Infof("uploaded %v entries from TSV file %v to Google Sheets '%v'", count, cmd.file, cfg.Sheet.Name)

	return nil
}
