package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workflow directories recorded on this machine",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if app == nil || app.Registry == nil {
		return fmt.Errorf("the workflow registry is not available")
	}

	workflows, err := app.Registry.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(workflows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workflows recorded yet.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ID\tKIND\tDIRECTORY\tOUTPREFIX\tCREATED")
	for _, wf := range workflows {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
			wf.ID, wf.Kind, wf.Directory, wf.Outprefix, wf.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
