package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/maestro/logger"
	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/qc"
)

// scrna-qc flags
var (
	qcFormat      string
	qcMatrix      string
	qcFeature     string
	qcBarcode     string
	qcCountCutoff int
	qcGeneCutoff  int
	qcDirectory   string
	qcOutprefix   string
)

var scrnaQCCmd = &cobra.Command{
	Use:   "scrna-qc",
	Short: "Filter a gene by cell count matrix",
	Long: `Filter a gene by cell count matrix. Cells below the count or gene
cutoff are dropped, genes are always kept. The command writes a per cell
stat table and the filtered matrix into the output directory.`,
	RunE: runScrnaQC,
}

func runScrnaQC(cmd *cobra.Command, args []string) error {
	if qcMatrix == "" {
		return fmt.Errorf("--matrix is required")
	}

	m, err := qc.Read(qc.Format(qcFormat), qcMatrix, qcFeature, qcBarcode)
	if err != nil {
		return err
	}
	logger.Info("Matrix loaded",
		zap.Int("genes", len(m.FeatureLines)),
		zap.Int("cells", len(m.Barcodes)))

	kept, err := qc.Run(m, qcDirectory, qcOutprefix, qcCountCutoff, qcGeneCutoff)
	if err != nil {
		return err
	}
	logger.Info("Cells passed the cutoffs",
		zap.Int("kept", kept),
		zap.Int("total", len(m.Barcodes)))

	return nil
}

func init() {
	f := scrnaQCCmd.Flags()

	f.StringVar(&qcFormat, "format", "mtx", "Format of the count matrix, mtx or plain")
	f.StringVar(&qcMatrix, "matrix", "", "Location of the count matrix, plain files may be gzip compressed")
	f.StringVar(&qcFeature, "feature", "features.tsv", "Location of the feature file, only for the mtx format")
	f.StringVar(&qcBarcode, "barcode", "barcodes.tsv", "Location of the barcode file, only for the mtx format")

	f.IntVar(&qcCountCutoff, "count-cutoff", config.DefaultCountCutoff, "Cutoff for the number of counts in each cell")
	f.IntVar(&qcGeneCutoff, "gene-cutoff", config.DefaultGeneCutoff, "Cutoff for the number of genes detected in each cell")

	f.StringVarP(&qcDirectory, "directory", "d", "MAESTRO", "Directory where the results shall be stored")
	f.StringVar(&qcOutprefix, "outprefix", config.DefaultOutprefix, "Prefix of output files")
}
