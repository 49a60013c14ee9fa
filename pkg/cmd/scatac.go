package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/workflow"
)

// scatac-init flags
var (
	scatacDirectory      string
	scatacFastqDir       string
	scatacFastqPrefix    string
	scatacSpecies        string
	scatacPlatform       string
	scatacOutprefix      string
	scatacCores          int
	scatacCountCutoff    int
	scatacFripCutoff     float64
	scatacGiggle         string
	scatacFasta          string
	scatacWhitelist      string
	scatacCustompeak     bool
	scatacCustompeakFile string
	scatacShortpeak      bool
	scatacGeneDistance   int
	scatacSignature      bool
	scatacSignatureFile  string
)

var scatacInitCmd = &cobra.Command{
	Use:   "scatac-init",
	Short: "Initialize the scATAC-seq workflow in a given directory",
	Long: `Initialize the scATAC-seq workflow in a given directory. This will
install a Snakefile and a config file in the directory.`,
	RunE: runScatacInit,
}

func runScatacInit(cmd *cobra.Command, args []string) error {
	in := config.ScATACInput{
		FastqDir:         scatacFastqDir,
		FastqPrefix:      scatacFastqPrefix,
		Species:          scatacSpecies,
		Platform:         scatacPlatform,
		Outprefix:        scatacOutprefix,
		Whitelist:        envDefault(scatacWhitelist, "MAESTRO_WHITELIST"),
		Cores:            &scatacCores,
		Signature:        scatacSignature,
		SignatureFile:    scatacSignatureFile,
		CustomPeaks:      scatacCustompeak,
		CustomPeaksLoc:   scatacCustompeakFile,
		ShortPeaks:       scatacShortpeak,
		GeneDistance:     &scatacGeneDistance,
		GiggleAnnotation: envDefault(scatacGiggle, "MAESTRO_GIGGLE_ANNOTATION"),
		Cutoff: config.ScATACCutoffInput{
			Count: &scatacCountCutoff,
			Frip:  &scatacFripCutoff,
		},
		Genome: config.GenomeInput{
			Fasta: envDefault(scatacFasta, "MAESTRO_GENOME_FASTA"),
		},
	}

	cfg, err := in.Resolve()
	if err != nil {
		return err
	}
	logWarnings(cfg.Warnings())

	if err := workflow.InitScATAC(scatacDirectory, cfg); err != nil {
		return err
	}

	record(cmd.Context(), config.KindScATAC, scatacDirectory, cfg.Outprefix,
		string(cfg.Species), string(cfg.Platform))
	return nil
}

func init() {
	f := scatacInitCmd.Flags()

	f.StringVar(&scatacPlatform, "platform", "10x-genomics", "Platform of single cell ATAC-seq, 10x-genomics, sci-ATAC-seq or microfluidic")
	f.StringVar(&scatacFastqDir, "fastq-dir", "", "Directory where fastq files are stored")
	f.StringVar(&scatacFastqPrefix, "fastq-prefix", "", "Sample name of fastq file, only for the platform of 10x-genomics")
	f.StringVar(&scatacSpecies, "species", "GRCh38", "Species, GRCh38 for human and GRCm38 for mouse")

	f.IntVar(&scatacCores, "cores", config.DefaultCores, "Number of cores to use")
	f.StringVarP(&scatacDirectory, "directory", "d", "MAESTRO", "Directory where the workflow shall be initialized and results shall be stored")
	f.StringVar(&scatacOutprefix, "outprefix", config.DefaultOutprefix, "Prefix of output files")

	f.IntVar(&scatacCountCutoff, "count-cutoff", config.DefaultCountCutoff, "Cutoff for the number of counts in each cell")
	f.Float64Var(&scatacFripCutoff, "frip-cutoff", config.DefaultFripCutoff, "Cutoff for the fraction of reads in promoters in each cell")

	f.StringVar(&scatacGiggle, "giggleannotation", "", "Path of the giggle annotation file required for regulator identification (or set MAESTRO_GIGGLE_ANNOTATION)")
	f.StringVar(&scatacFasta, "fasta", "", "Genome fasta file for BWA (or set MAESTRO_GENOME_FASTA)")
	f.StringVar(&scatacWhitelist, "whitelist", "", "Barcode library file, one barcode per line (or set MAESTRO_WHITELIST)")

	f.BoolVar(&scatacCustompeak, "custompeak", false, "Provide custom peaks in addition to the called ones")
	f.StringVar(&scatacCustompeakFile, "custompeak-file", "", "File location of custom peaks, required with --custompeak")
	f.BoolVar(&scatacShortpeak, "shortpeak", false, "Call peaks from short fragments (shorter than 150bp)")

	f.IntVar(&scatacGeneDistance, "genedistance", config.DefaultGeneDistance, "Gene score decay distance, from 1kb (promoter-based) to 10kb (enhancer-based) regulation")

	f.BoolVar(&scatacSignature, "signature", false, "Provide custom cell signatures for annotation")
	f.StringVar(&scatacSignatureFile, "signature-file", "", "File location of cell signatures, required with --signature")
}
