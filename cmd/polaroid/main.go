package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/polaroid-compose/internal/batch"
	"github.com/ironsheep/polaroid-compose/internal/config"
	"github.com/ironsheep/polaroid-compose/internal/log"
	"github.com/ironsheep/polaroid-compose/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "polaroid - compose scanned photos onto a fixed canvas")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: polaroid [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --config PATH    Config file, JSON or YAML (default: config.json)")
	fmt.Fprintln(w, "  --dry-run        Print the planned work without writing or moving files")
	fmt.Fprintln(w, "  --once           Process the inbox once and exit (default)")
	fmt.Fprintln(w, "  --watch          Keep running and process new files as they arrive")
	fmt.Fprintln(w, "  --debug          Enable debug logging")
	fmt.Fprintln(w, "  --serve          Run the MCP tool server on stdin/stdout")
	fmt.Fprintln(w, "  --init           Write the default config to --config and exit")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  POLAROID_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit code. Every
// deferred cleanup, including closing the log file, runs before it returns.
func run(args []string, stdout io.Writer) int {
	// Handle --version and --help before flag parsing
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "polaroid %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			usage(stdout)
			return 0
		}
	}

	fs := flag.NewFlagSet("polaroid", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "config.json", "config file path")
		dryRun     = fs.Bool("dry-run", false, "print the planned work only")
		once       = fs.Bool("once", false, "process the inbox once and exit")
		watch      = fs.Bool("watch", false, "watch the inbox for new files")
		debug      = fs.Bool("debug", false, "enable debug logging")
		serve      = fs.Bool("serve", false, "run the MCP tool server")
		initConfig = fs.Bool("init", false, "write the default config and exit")
	)
	fs.Usage = func() { usage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *initConfig {
		if err := config.Default().SaveToFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "polaroid: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote default config to %s\n", *configPath)
		return 0
	}

	cfg, err := loadConfig(*configPath, *serve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		return 1
	}

	closeLog := log.Setup(log.Options{
		File:  cfg.LogFile,
		Debug: *debug || os.Getenv("POLAROID_LOG_LEVEL") == "debug",
	})
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "polaroid: closing log: %v\n", err)
		}
	}()
	log.Debugf("polaroid %s (built %s, commit %s)", Version, BuildTime, GitCommit)

	if *serve {
		server.Version = Version
		srv := server.New(cfg)
		if err := srv.Run(); err != nil {
			log.Errorf("server error: %v", err)
			return 1
		}
		return 0
	}

	runner, err := batch.NewRunner(cfg, batch.Options{DryRun: *dryRun})
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watch && !*once {
		if err := runner.Watch(ctx, batch.DefaultDebounce); err != nil {
			log.Errorf("watch: %v", err)
			return 1
		}
		return 0
	}

	if _, err := runner.RunOnce(ctx); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	if *once {
		log.Infof("single pass finished (--once)")
	}
	return 0
}

// loadConfig reads and validates the config file. The tool server can run
// on defaults when the file does not exist.
func loadConfig(path string, serve bool) (*config.Config, error) {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		if serve && errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
