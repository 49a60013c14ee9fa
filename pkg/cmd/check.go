package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yumyai/maestro/internal/util"
)

var checkKind string

var checkCmd = &cobra.Command{
	Use:   "check [dir|config.yaml]",
	Short: "Validate a workflow config and verify the paths it references",
	Long: `Validate a workflow config and verify the paths it references. On
top of what validate does, every file and directory the config points at
must exist on this machine.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, warnings, refs, err := resolveFile(args[0], checkKind)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	missing := 0
	for _, ref := range refs {
		ok := false
		switch ref.want {
		case wantFile:
			ok = util.FileExists(ref.path)
		case wantDir:
			ok = util.DirExists(ref.path)
		case wantAny:
			ok = util.FileExists(ref.path) || util.DirExists(ref.path)
		}
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "missing: %s (%s)\n", ref.path, ref.field)
			missing++
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d referenced paths do not exist", missing)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s configuration, all referenced paths exist\n", kind)
	return nil
}

func init() {
	checkCmd.Flags().StringVar(&checkKind, "kind", "", "Workflow kind, scatac, scrna or integrate (detected from the file when empty)")
}
