package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/movielist/internal/catalog"
	"github.com/saltyorg/movielist/internal/config"
	"github.com/saltyorg/movielist/internal/console"
	"github.com/saltyorg/movielist/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	configPath string
	dbPath     string
	logFile    string
	verbosity  int
)

var (
	cfg       *config.Config
	logCloser io.Closer
)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the CLI with args. The log file is closed on every exit path,
// including commands that fail.
func execute(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	defer closeLog()
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "movielist",
		Short: "Movie List - terminal movie catalog",
		Long:  `Movie List keeps a catalog of movies and their categories in a local SQLite database.`,
		Args:  cobra.NoArgs,
		RunE:  run,

		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "YAML config file (optional when left at the default)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(moviesCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(maintenanceCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "movielist %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(configPath)
	}
	if err != nil {
		return err
	}

	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	closeLog()
	logCloser = logging.Apply(cfg.Log, verbosity, cfg.Database.Path)
	return nil
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	logCloser = nil
}

func run(cmd *cobra.Command, args []string) error {
	log.Debug().
		Str("version", version).
		Str("database", cfg.Database.Path).
		Msg("Starting Movie List")

	db, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(db)

	opts := console.Options{
		ClearScreen: cfg.Console.ClearScreen,
		Pause:       cfg.Console.Pause(),
	}
	console.New(catalog.New(db), cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run()
	return nil
}
