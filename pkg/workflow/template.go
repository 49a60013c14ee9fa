// Render config.yaml files for the workflow directories.

package workflow

import (
	"io"
	"text/template"

	"github.com/yumyai/maestro/pkg/config"
)

var (
	scatacConfigTemplate    *template.Template
	scrnaConfigTemplate     *template.Template
	integrateConfigTemplate *template.Template
)

// init initializes the templates used for rendering the workflow configs.
// The comment lines carry the field documentation, so a rendered file can
// be edited by hand without consulting anything else. Booleans render as
// TRUE/FALSE, which is what the pipeline expects and what yaml parses back
// into a bool.
func init() {

	scatacTmpl := `# Directory where fastq files are stored
fastqdir: {{ .FastqDir }}

# Sample name of fastq file (required for the platform of 10x-genomics or sci-ATAC-seq),
# e.g. for pbmc_1k_v2_S1_L001_R1_001.fastq.gz the prefix is pbmc_1k_v2
fastqprefix: {{ .FastqPrefix }}

# Species to use, GRCh38 for human and GRCm38 for mouse
species: {{ .Species }}

# Platform of single cell ATAC-seq, one of 10x-genomics, sci-ATAC-seq and microfluidic
platform: {{ .Platform }}

# The prefix of output files
outprefix: {{ .Outprefix }}

# If the platform is sci-ATAC-seq or 10x-genomics, please specify the barcode library (whitelist),
# or the pipeline will automatically output the barcodes with enough reads count (>1000)
whitelist: {{ .Whitelist }}

# The number of cores to use
cores: {{ .Cores }}

# Whether or not to provide custom cell signatures
signature: {{ flag .Signature }}

# If signature is TRUE, provide the file location of custom cell signatures.
# The signature file is tab-separated without header, the first column is
# cell type and the second column is signature gene.
signaturefile: {{ .SignatureFile }}

# Whether or not to provide custom peaks
custompeaks: {{ flag .CustomPeaks }}

# If custompeaks is TRUE, provide the file location of custom peaks
custompeaksloc: {{ .CustomPeaksLoc }}

# Whether or not to call peaks from short fragments (shorter than 150bp)
shortpeaks: {{ flag .ShortPeaks }}

# Gene score decay distance, 1000 for promoter-based regulation
# and 10000 for enhancer-based regulation
genedistance: {{ .GeneDistance }}

# Path of the giggle annotation file required for regulator identification
giggleannotation: {{ .GiggleAnnotation }}

cutoff:
  # Cutoff for the number of count in each cell
  count: {{ .Cutoff.Count }}
  # Cutoff for fraction of reads in promoter in each cell
  frip: {{ .Cutoff.Frip }}

genome:
  # Genome fasta file for BWA, users can take the genome.fa from
  # the reference required for Cell Ranger ATAC
  fasta: {{ .Genome.Fasta }}
  # cellranger: reserved for the Cell Ranger ATAC reference directory
`

	scrnaTmpl := `# Directory where fastq files are stored
fastqdir: {{ .FastqDir }}

# Sample name of fastq file, only for the platform of 10x-genomics,
# e.g. for pbmc_1k_v2_S1_L001_R1_001.fastq.gz the prefix is pbmc_1k_v2
fastqprefix: {{ .FastqPrefix }}

# The barcode fastq file, only for the platform of Dropseq
fastqbarcode: {{ .FastqBarcode }}

# The transcript fastq file, only for the platform of Dropseq
fastqtranscript: {{ .FastqTranscript }}

# Species to use, GRCh38 for human and GRCm38 for mouse
species: {{ .Species }}

# Platform of single cell RNA-seq, one of 10x-genomics, Dropseq and Smartseq2
platform: {{ .Platform }}

# The prefix of output files
outprefix: {{ .Outprefix }}

# Whether or not to run RSeQC
rseqc: {{ flag .Rseqc }}

# The number of cores to use
cores: {{ .Cores }}

# Whether or not to provide custom cell signatures
signature: {{ flag .Signature }}

# If signature is TRUE, provide the file location of custom cell signatures.
# The signature file is tab-separated without header, the first column is
# cell type and the second column is signature gene.
signaturefile: {{ .SignatureFile }}

# Method to predict driver regulators, RABIT or LISA
method: {{ .Method }}

# Path of the rabit annotation file, required when the method is RABIT
rabitlib: {{ .RabitLib }}

# Mode to run LISA, local or web
lisamode: {{ .LisaMode }}

# Name of the lisa environment, only for the local mode
lisaenv: {{ .LisaEnv }}

# Directory where miniconda or anaconda is installed, only for the local mode
condadir: {{ .CondaDir }}

# If the platform is Dropseq or 10x-genomics, please specify the barcode
# library (whitelist) to correct cell barcodes with one base mismatch
whitelist: {{ .Whitelist }}

barcode:
  # The start site and length of each cell barcode, 16 bases for 10x-genomics
  start: {{ .Barcode.Start }}
  length: {{ .Barcode.Length }}

umi:
  # The start site and length of UMI, 10 bases for the 10x V2 chemistry
  start: {{ .UMI.Start }}
  length: {{ .UMI.Length }}

cutoff:
  # Cutoff for the number of count in each cell
  count: {{ .Cutoff.Count }}
  # Cutoff for the number of genes included in each cell
  gene: {{ .Cutoff.Gene }}

genome:
  # Genome index directory for STAR
  mapindex: {{ .Genome.Mapindex }}
  # The prefix of transcript references for RSEM used by rsem-prepare-reference
  rsem: {{ .Genome.Rsem }}
`

	integrateTmpl := `# Path of the scRNA-seq Seurat object generated by the scRNA-seq workflow
rnaobject: {{ .RNAObject }}

# Path of the scATAC-seq Seurat object generated by the scATAC-seq workflow
atacobject: {{ .ATACObject }}

# The prefix of output files
outprefix: {{ .Outprefix }}
`

	funcMap := template.FuncMap{
		"flag": func(b bool) string {
			if b {
				return "TRUE"
			}
			return "FALSE"
		},
	}

	scatacConfigTemplate = template.Must(template.New("scatac_config").Funcs(funcMap).Parse(scatacTmpl))
	scrnaConfigTemplate = template.Must(template.New("scrna_config").Funcs(funcMap).Parse(scrnaTmpl))
	integrateConfigTemplate = template.Must(template.New("integrate_config").Funcs(funcMap).Parse(integrateTmpl))
}

// RenderScATACConfig writes cfg as a commented config.yaml. Loading the
// result back and resolving it yields cfg again.
func RenderScATACConfig(w io.Writer, cfg config.ScATACConfig) error {
	return scatacConfigTemplate.Execute(w, cfg)
}

func RenderScRNAConfig(w io.Writer, cfg config.ScRNAConfig) error {
	return scrnaConfigTemplate.Execute(w, cfg)
}

func RenderIntegrateConfig(w io.Writer, cfg config.IntegrateConfig) error {
	return integrateConfigTemplate.Execute(w, cfg)
}
