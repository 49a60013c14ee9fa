// Package workflow installs runnable Snakemake workflow directories: a
// rendered config.yaml plus the matching bundled Snakefile.
package workflow

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/yumyai/maestro/logger"
	"github.com/yumyai/maestro/pkg/config"
	"go.uber.org/zap"
)

// InitScATAC sets up dir as a scATAC-seq workflow directory. An existing
// directory is reused, an existing config.yaml is overwritten.
func InitScATAC(dir string, cfg config.ScATACConfig) error {
	return install(dir, config.KindScATAC, func(w io.Writer) error {
		return RenderScATACConfig(w, cfg)
	})
}

func InitScRNA(dir string, cfg config.ScRNAConfig) error {
	return install(dir, config.KindScRNA, func(w io.Writer) error {
		return RenderScRNAConfig(w, cfg)
	})
}

func InitIntegrate(dir string, cfg config.IntegrateConfig) error {
	return install(dir, config.KindIntegrate, func(w io.Writer) error {
		return RenderIntegrateConfig(w, cfg)
	})
}

func install(dir string, kind config.Kind, render func(io.Writer) error) error {

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create workflow directory: %w", err)
	}

	config_path := path.Join(dir, "config.yaml")

	f, err := os.Create(config_path)
	if err != nil {
		return fmt.Errorf("create config.yaml: %w", err)
	}

	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render config.yaml: %w", err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	snakefile, err := Snakefile(kind)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path.Join(dir, "Snakefile"), snakefile, 0644); err != nil {
		return fmt.Errorf("install Snakefile: %w", err)
	}

	logger.Info("Workflow initialized", zap.String("kind", string(kind)), zap.String("dir", dir))

	return nil
}
