package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/daily-yolk/yolk-app-sheets/httpd"
	"github.com/daily-yolk/yolk-app-sheets/log"
)

var RunCmd = Run{
	bind:           "",
	maxConnections: -1,
}

type Run struct {
	command
	bind           string
	maxConnections int
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Runs the Daily Yolk HTTP service"
}

func (cmd *Run) Usage() string {
	return "[--bind <address>] [--max-connections <N>]"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] run [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the HTTP service for the Daily Yolk web client:")
	fmt.Println()
	fmt.Println("    POST /submit-entry    appends an entry to the worksheet")
	fmt.Println("    GET  /recent-entries  returns the 7 day presence calendar")
	fmt.Println("    GET  /hello           liveness check")
	fmt.Println("    GET  /test-env        reports the service account configuration")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --env .env run --bind 0.0.0.0:8080\n", APP)
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("run", flag.ExitOnError)

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "HTTP server bind address. Defaults to HTTP_BIND or :8080")
	flagset.IntVar(&cmd.maxConnections, "max-connections", cmd.maxConnections, "Maximum number of simultaneous connections (0 for unlimited). Defaults to HTTP_MAX_CONNECTIONS")

	return flagset
}

func (cmd *Run) Execute(args ...any) error {
	cfg, err := cmd.configure(args...)
	if err != nil {
		return err
	}

	if cmd.bind != "" {
		cfg.HTTP.Bind = cmd.bind
	}

	if cmd.maxConnections >= 0 {
		cfg.HTTP.MaxConnections = cmd.maxConnections
	}

	if missing := cfg.Missing(); len(missing) > 0 {
		log.Warnf("missing environment variables %v - requests to Google Sheets will fail", missing)
	}

	if cmd.debug {
		gin.SetMode(gin.DebugMode)
		log.Debugf("spreadsheet - ID:%s  sheet:%s", cfg.Sheet.ID, cfg.Sheet.Name)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpd.NewRouter(newService(cfg), VERSION)

	listener, err := httpd.Listen(cfg.HTTP.Bind, cfg.HTTP.MaxConnections)
	if err != nil {
		return fmt.Errorf("unable to listen on %v (%w)", cfg.HTTP.Bind, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer log.Sync()

	return httpd.Serve(ctx, listener, router)
}
