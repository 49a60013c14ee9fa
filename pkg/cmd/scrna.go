package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/workflow"
)

// scrna-init flags
var (
	scrnaDirectory       string
	scrnaFastqDir        string
	scrnaFastqPrefix     string
	scrnaFastqBarcode    string
	scrnaFastqTranscript string
	scrnaSpecies         string
	scrnaPlatform        string
	scrnaOutprefix       string
	scrnaCores           int
	scrnaRseqc           bool
	scrnaCountCutoff     int
	scrnaGeneCutoff      int
	scrnaMapindex        string
	scrnaRsem            string
	scrnaWhitelist       string
	scrnaBarcodeStart    int
	scrnaBarcodeLength   int
	scrnaUMIStart        int
	scrnaUMILength       int
	scrnaMethod          string
	scrnaRabitLib        string
	scrnaLisaMode        string
	scrnaLisaEnv         string
	scrnaCondaDir        string
	scrnaSignature       bool
	scrnaSignatureFile   string
)

var scrnaInitCmd = &cobra.Command{
	Use:   "scrna-init",
	Short: "Initialize the scRNA-seq workflow in a given directory",
	Long: `Initialize the scRNA-seq workflow in a given directory. This will
install a Snakefile and a config file in the directory.`,
	RunE: runScrnaInit,
}

func runScrnaInit(cmd *cobra.Command, args []string) error {
	in := config.ScRNAInput{
		FastqDir:        scrnaFastqDir,
		FastqPrefix:     scrnaFastqPrefix,
		FastqBarcode:    scrnaFastqBarcode,
		FastqTranscript: scrnaFastqTranscript,
		Species:         scrnaSpecies,
		Platform:        scrnaPlatform,
		Outprefix:       scrnaOutprefix,
		Rseqc:           scrnaRseqc,
		Cores:           &scrnaCores,
		Signature:       scrnaSignature,
		SignatureFile:   scrnaSignatureFile,
		Method:          scrnaMethod,
		RabitLib:        envDefault(scrnaRabitLib, "MAESTRO_RABIT_LIB"),
		LisaMode:        scrnaLisaMode,
		LisaEnv:         scrnaLisaEnv,
		CondaDir:        envDefault(scrnaCondaDir, "MAESTRO_CONDA_DIR"),
		Whitelist:       envDefault(scrnaWhitelist, "MAESTRO_WHITELIST"),
		Barcode: config.RangeInput{
			Start:  &scrnaBarcodeStart,
			Length: &scrnaBarcodeLength,
		},
		UMI: config.RangeInput{
			Start:  &scrnaUMIStart,
			Length: &scrnaUMILength,
		},
		Cutoff: config.ScRNACutoffInput{
			Count: &scrnaCountCutoff,
			Gene:  &scrnaGeneCutoff,
		},
		Genome: config.ScRNAGenomeInput{
			Mapindex: envDefault(scrnaMapindex, "MAESTRO_MAP_INDEX"),
			Rsem:     envDefault(scrnaRsem, "MAESTRO_RSEM_REF"),
		},
	}

	cfg, err := in.Resolve()
	if err != nil {
		return err
	}
	logWarnings(cfg.Warnings())

	if err := workflow.InitScRNA(scrnaDirectory, cfg); err != nil {
		return err
	}

	record(cmd.Context(), config.KindScRNA, scrnaDirectory, cfg.Outprefix,
		string(cfg.Species), string(cfg.Platform))
	return nil
}

func init() {
	f := scrnaInitCmd.Flags()

	f.StringVar(&scrnaPlatform, "platform", "10x-genomics", "Platform of single cell RNA-seq, 10x-genomics, Dropseq or Smartseq2")
	f.StringVar(&scrnaFastqDir, "fastq-dir", "", "Directory where fastq files are stored")
	f.StringVar(&scrnaFastqPrefix, "fastq-prefix", "", "Sample name of fastq file, only for the platform of 10x-genomics")
	f.StringVar(&scrnaFastqBarcode, "fastq-barcode", "", "Barcode fastq files, only for the platform of Dropseq")
	f.StringVar(&scrnaFastqTranscript, "fastq-transcript", "", "Transcript fastq files, only for the platform of Dropseq")
	f.StringVar(&scrnaSpecies, "species", "GRCh38", "Species, GRCh38 for human and GRCm38 for mouse")

	f.IntVar(&scrnaCores, "cores", config.DefaultCores, "Number of cores to use")
	f.BoolVar(&scrnaRseqc, "rseqc", false, "Run RSeQC for quality control, the workflow will be slower")
	f.StringVarP(&scrnaDirectory, "directory", "d", "MAESTRO", "Directory where the workflow shall be initialized and results shall be stored")
	f.StringVar(&scrnaOutprefix, "outprefix", config.DefaultOutprefix, "Prefix of output files")

	f.IntVar(&scrnaCountCutoff, "count-cutoff", config.DefaultCountCutoff, "Cutoff for the number of counts in each cell")
	f.IntVar(&scrnaGeneCutoff, "gene-cutoff", config.DefaultGeneCutoff, "Cutoff for the number of genes detected in each cell")

	f.StringVar(&scrnaMapindex, "mapindex", "", "Genome index directory for STAR (or set MAESTRO_MAP_INDEX)")
	f.StringVar(&scrnaRsem, "rsem", "", "RSEM index prefix, only for the platform of Smartseq2 (or set MAESTRO_RSEM_REF)")

	f.StringVar(&scrnaWhitelist, "whitelist", "", "Barcode whitelist file, one barcode per line (or set MAESTRO_WHITELIST)")
	f.IntVar(&scrnaBarcodeStart, "barcode-start", config.DefaultBarcodeStart, "Start site of the cell barcode, 1-based")
	f.IntVar(&scrnaBarcodeLength, "barcode-length", config.DefaultBarcodeLength, "Length of the cell barcode, 16 for 10x-genomics")
	f.IntVar(&scrnaUMIStart, "umi-start", config.DefaultUMIStart, "Start site of the UMI, 1-based")
	f.IntVar(&scrnaUMILength, "umi-length", config.DefaultUMILength, "Length of the UMI, 10 for 10X V2 chemistry and 12 for V3")

	f.StringVar(&scrnaMethod, "method", string(config.MethodLisa), "Method to predict driver regulators, RABIT or LISA")
	f.StringVar(&scrnaRabitLib, "rabitlib", "", "Path of the rabit annotation, required with RABIT (or set MAESTRO_RABIT_LIB)")
	f.StringVar(&scrnaLisaMode, "lisamode", string(config.LisaModeLocal), "Mode to run LISA, local or web")
	f.StringVar(&scrnaLisaEnv, "lisaenv", config.DefaultLisaEnv, "Name of the LISA conda environment")
	f.StringVar(&scrnaCondaDir, "condadir", "", "Directory where miniconda or anaconda is installed, required for local LISA (or set MAESTRO_CONDA_DIR)")

	f.BoolVar(&scrnaSignature, "signature", false, "Provide custom cell signatures for annotation")
	f.StringVar(&scrnaSignatureFile, "signature-file", "", "File location of cell signatures, required with --signature")
}
