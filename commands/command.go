package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/daily-yolk/yolk-app-sheets/config"
	"github.com/daily-yolk/yolk-app-sheets/google"
	"github.com/daily-yolk/yolk-app-sheets/log"
	"github.com/daily-yolk/yolk-app-sheets/service"
)

const APP = "yolk-app-sheets"

// Options holds the global command line options.
type Options struct {
	Env   string
	Debug bool
}

type command struct {
	debug bool
}

// configure loads the configuration from the environment (and dotenv files) and
// sets the log level. --debug takes precedence over LOG_LEVEL.
func (cmd *command) configure(args ...any) (*config.Config, error) {
	options := &Options{}
	if len(args) > 0 {
		if o, ok := args[0].(*Options); ok && o != nil {
			options = o
		}
	}

	cmd.debug = options.Debug

	cfg, err := config.Load(options.Env, DEFAULT_ENV)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration (%w)", err)
	}

	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Warnf("invalid LOG_LEVEL '%v' (%v)", cfg.LogLevel, err)
	}

	log.SetDebug(cmd.debug)

	return cfg, nil
}

func newService(cfg *config.Config) *service.Service {
	return service.New(cfg, google.NewCredentials(cfg), google.NewClient())
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-16s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Global options:")
	fmt.Println()
	fmt.Printf("    --%-16s %s\n", "debug", "Displays internal information for diagnosing errors")
	fmt.Printf("    --%-16s %s\n", "env", fmt.Sprintf("Path to a .env file with the Google service account settings (also reads %v)", DEFAULT_ENV))
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%v is a required option", name)
	}

	return nil
}
