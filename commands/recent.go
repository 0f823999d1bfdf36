package commands

import (
	"context"
	"flag"
	"fmt"
)

var RecentCmd = Recent{}

type Recent struct {
	command
}

func (cmd *Recent) Name() string {
	return "recent"
}

func (cmd *Recent) Description() string {
	return "Displays the days with entries for the last week"
}

func (cmd *Recent) Usage() string {
	return ""
}

func (cmd *Recent) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] recent\n", APP)
	fmt.Println()
	fmt.Println("  Displays the days in the last week (today and the 6 days before) with at least one entry")
	fmt.Println()
}

func (cmd *Recent) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("recent", flag.ExitOnError)
}

func (cmd *Recent) Execute(args ...any) error {
	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	week, err := newService(cfg).Recent(context.Background())
	if err != nil {
		return err
	}

	for _, day := range week {
		fmt.Printf("  %v\n", day)
	}

	return nil
}
