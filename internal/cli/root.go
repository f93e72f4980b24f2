// Package cli implements the command-line interface for cubestate.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/config"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

const version = "0.1.0"

// app carries global flags and the loaded configuration to every command.
type app struct {
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	cfg    *config.Config
	scheme cubestate.Scheme
	log    *slog.Logger
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cubestate",
		Short: "Cube state and facelet tool",
		Long: `cubestate - apply moves to a virtual 3x3 cube, validate and convert
54-character facelet strings, and keep a library of cube states.

Facelet strings list the faces in U, R, F, D, L, B order, nine stickers each,
row by row as seen from outside the cube. This is the format two-phase solvers
take as input.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/.cubestate/cubestate.db)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/.cubestate/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newApplyCmd(a),
		newValidateCmd(a),
		newNetCmd(a),
		newInvertCmd(a),
		newScrambleCmd(a),
		newColorsCmd(a),
		newSolveCmd(a),
		newInspectCmd(a),
		newSaveCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newPlayCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load sets up logging and reads the config file.
func (a *app) load(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := a.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", path, "scramble_length", cfg.Scramble())

	if a.scheme, err = cfg.ColorScheme(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// openDB opens the state library, applying pending migrations.
func (a *app) openDB(ctx context.Context) (*storage.DB, error) {
	path := a.dbPath
	if path == "" {
		var err error
		if path, err = a.cfg.Database(); err != nil {
			return nil, err
		}
	}

	db, err := storage.OpenMigrated(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.log.Debug("opened database", "path", db.Path())
	return db, nil
}
