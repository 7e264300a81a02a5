// Package main provides the dense tensor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/dense/internal/backend/cpu"
	"github.com/born-ml/dense/internal/config"
	"github.com/born-ml/dense/internal/logger"
	"github.com/born-ml/dense/internal/serialization"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds the dependencies shared by every command. It is populated by
// the root command's PersistentPreRunE.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	backend  *cpu.CPUBackend
	readOpts serialization.ReaderOptions
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dense",
		Short: "Dense - N-dimensional float32 tensors",
		Long: `Dense creates, combines and inspects dense row-major tensors.

Tensors are stored in .dense files: a fixed header, a JSON tensor table
and a SHA-256 checked float32 data section.

Run 'dense demo' for a walkthrough of offset mapping.
Run 'dense --help' for available commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	rootCmd.AddCommand(
		demoCmd(a),
		binaryCmd(a, "add"),
		binaryCmd(a, "sub"),
		broadcastCmd(a),
		inspectCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger
// and backend.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := serialization.ParseValidationLevel(cfg.Storage.Validation)
	if err != nil {
		return fmt.Errorf("storage validation: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.backend = cpu.New(cfg.ParallelOptions(), a.log)
	a.readOpts = serialization.ReaderOptions{ValidationLevel: level}

	a.log.Debug("configuration loaded",
		"config", path,
		"parallel", cfg.Parallel.Enabled,
		"workers", cfg.Parallel.Workers,
		"validation", level.String(),
	)
	return nil
}
