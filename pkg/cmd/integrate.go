package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/workflow"
)

// integrate-init flags
var (
	integrateDirectory  string
	integrateRNAObject  string
	integrateATACObject string
	integrateOutprefix  string
)

var integrateInitCmd = &cobra.Command{
	Use:   "integrate-init",
	Short: "Initialize the integration workflow in a given directory",
	Long: `Initialize the integration workflow in a given directory. It combines
the Seurat objects produced by the scRNA-seq and scATAC-seq workflows.`,
	RunE: runIntegrateInit,
}

func runIntegrateInit(cmd *cobra.Command, args []string) error {
	in := config.IntegrateInput{
		RNAObject:  integrateRNAObject,
		ATACObject: integrateATACObject,
		Outprefix:  integrateOutprefix,
	}

	cfg, err := in.Resolve()
	if err != nil {
		return err
	}

	if err := workflow.InitIntegrate(integrateDirectory, cfg); err != nil {
		return err
	}

	record(cmd.Context(), config.KindIntegrate, integrateDirectory, cfg.Outprefix, "", "")
	return nil
}

func init() {
	f := integrateInitCmd.Flags()

	f.StringVar(&integrateRNAObject, "rna-object", "", "Path of the scRNA-seq Seurat object with clustering and annotation")
	f.StringVar(&integrateATACObject, "atac-object", "", "Path of the scATAC-seq Seurat object with clustering and annotation")
	f.StringVarP(&integrateDirectory, "directory", "d", "MAESTRO", "Directory where the workflow shall be initialized and results shall be stored")
	f.StringVar(&integrateOutprefix, "outprefix", config.DefaultOutprefix, "Prefix of output files")
}
