package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uhppoted/uhppoted-lib/command"

	"github.com/daily-yolk/yolk-app-sheets/commands"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.RunCmd,
	&commands.SubmitCmd,
	&commands.RecentCmd,
	&commands.CheckEnvCmd,
	&commands.TokenCmd,
	&commands.GetCmd,
	&commands.PutCmd,
}

var options = commands.Options{
	Env:   ".env",
	Debug: false,
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.StringVar(&options.Env, "env", options.Env, "Path to a .env file with the Google service account settings")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		fmt.Printf("\nERROR: %v\n\n", err)
		os.Exit(1)
	}
}
