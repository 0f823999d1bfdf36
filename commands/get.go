package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/daily-yolk/yolk-app-sheets/log"
)

var GetCmd = Get{
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the entries from the Google Sheets worksheet and stores them to a local file"
}

func (cmd *Get) Usage() string {
	return "--file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] get [--file <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the entries worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --env .env get --file \"eggs.tsv\"\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	if err := required("file", cmd.file); err != nil {
		return err
	}

	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	if cmd.debug {
		log.Debugf("spreadsheet - ID:%s  sheet:%s", cfg.Sheet.ID, cfg.Sheet.Name)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "yolk")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := newService(cfg).Export(context.Background(), tmp); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	log.Infof("retrieved entries to file %s", cmd.file)

	return nil
}
