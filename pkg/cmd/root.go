// Package cmd wires the command line interface. Commands reach the rest of
// the module through App, main fills it in at startup.
package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/maestro/logger"
	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/db"
)

// App carries the process wide state the commands need.
type App struct {
	Registry *db.Registry
	Home     string
}

var (
	app     *App
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Model-based analyses of single-cell transcriptome and regulome",
	Long: `MAESTRO sets up and manages Snakemake workflow directories for
single-cell ATAC-seq and RNA-seq processing. Each init command installs a
Snakefile and a validated config.yaml into a directory, ready to run with
snakemake.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			return logger.InitLogger(zapcore.DebugLevel)
		}
		return nil
	},
}

// Execute runs the command line with the given application state.
func Execute(a *App, version string) error {
	app = a
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(scatacInitCmd)
	rootCmd.AddCommand(scrnaInitCmd)
	rootCmd.AddCommand(integrateInitCmd)
	rootCmd.AddCommand(scrnaQCCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
}

// envDefault falls back to the environment when a flag was left empty.
func envDefault(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}

// record notes a freshly initialized workflow in the registry. A missing
// registry only costs the bookkeeping, the directory itself is already
// installed. Directories are stored absolute, the registry upserts on them.
func record(ctx context.Context, kind config.Kind, directory, outprefix, species, platform string) {
	if app == nil || app.Registry == nil {
		return
	}

	if abs, err := filepath.Abs(directory); err == nil {
		directory = abs
	}

	wf, err := app.Registry.Register(ctx, db.Workflow{
		Kind:      string(kind),
		Directory: directory,
		Outprefix: outprefix,
		Species:   species,
		Platform:  platform,
	})
	if err != nil {
		logger.Warn("Could not record the workflow", zap.Error(err))
		return
	}

	logger.Info("Workflow recorded", zap.String("id", wf.ID), zap.String("dir", wf.Directory))
}

func logWarnings(notes []string) {
	for _, note := range notes {
		logger.Warn(note)
	}
}
