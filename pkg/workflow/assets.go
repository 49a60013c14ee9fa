package workflow

import (
	"embed"
	"fmt"

	"github.com/yumyai/maestro/pkg/config"
)

//go:embed assets
var assets embed.FS

// Snakefile returns the bundled workflow definition for a kind.
func Snakefile(kind config.Kind) ([]byte, error) {
	raw, err := assets.ReadFile(fmt.Sprintf("assets/%s/Snakefile", kind))
	if err != nil {
		return nil, fmt.Errorf("no bundled Snakefile for %q: %w", kind, err)
	}
	return raw, nil
}
