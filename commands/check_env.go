package commands

import (
	"flag"
	"fmt"
	"sort"

	"github.com/daily-yolk/yolk-app-sheets/entries"
)

var CheckEnvCmd = CheckEnv{}

type CheckEnv struct {
	command
}

func (cmd *CheckEnv) Name() string {
	return "check-env"
}

func (cmd *CheckEnv) Description() string {
	return "Checks the Google service account environment variables"
}

func (cmd *CheckEnv) Usage() string {
	return ""
}

func (cmd *CheckEnv) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--env <file>] check-env\n", APP)
	fmt.Println()
	fmt.Println("  Reports which of the Google service account environment variables are set and")
	fmt.Println("  whether the private key looks like a PEM encoded private key")
	fmt.Println()
}

func (cmd *CheckEnv) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("check-env", flag.ExitOnError)
}

func (cmd *CheckEnv) Execute(args ...any) error {
	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	report := newService(cfg).CheckEnv()

	keys := []string{}
	for k := range report.Variables {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("  %-24s %v\n", k, report.Variables[k])
	}

	fmt.Println()
	fmt.Printf("  %-24s %v\n", "private key", report.PrivateKeyFormat)
	fmt.Println()

	if missing := cfg.Missing(); len(missing) > 0 {
		return &entries.ConfigurationError{Missing: missing}
	}

	return nil
}
