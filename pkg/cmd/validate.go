package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/yumyai/maestro/internal/util"
	"github.com/yumyai/maestro/pkg/config"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate [dir|config.yaml]",
	Short: "Resolve a workflow config and report every violation",
	Long: `Resolve a workflow config and report every violation. The argument
is a config.yaml or a workflow directory holding one. The workflow kind is
detected from the file content unless --kind is given. Nothing is written,
a valid file leaves no trace.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, warnings, _, err := resolveFile(args[0], validateKind)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s configuration\n", kind)
	return nil
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "", "Workflow kind, scatac, scrna or integrate (detected from the file when empty)")
}

// pathRef is a path a resolved config points at.
type pathRef struct {
	field string
	path  string
	want  refWant
}

type refWant int

const (
	wantFile refWant = iota
	wantDir
	wantAny
)

// resolveFile loads a config file, detects its workflow kind unless forced,
// and resolves it. A workflow directory stands in for its config.yaml. It
// reports the kind, the advisory warnings and the paths the config
// references on disk.
func resolveFile(file, forced string) (config.Kind, []string, []pathRef, error) {

	if util.DirExists(file) {
		file = path.Join(file, "config.yaml")
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return "", nil, nil, err
	}

	var kind config.Kind
	if forced != "" {
		kind, err = config.NewKind(forced)
	} else {
		kind, err = config.DetectKind(raw)
	}
	if err != nil {
		return "", nil, nil, err
	}

	switch kind {
	case config.KindScATAC:
		in, err := config.ParseScATAC(raw)
		if err != nil {
			return kind, nil, nil, err
		}
		cfg, err := in.Resolve()
		if err != nil {
			return kind, nil, nil, err
		}
		return kind, cfg.Warnings(), scatacRefs(cfg), nil

	case config.KindScRNA:
		in, err := config.ParseScRNA(raw)
		if err != nil {
			return kind, nil, nil, err
		}
		cfg, err := in.Resolve()
		if err != nil {
			return kind, nil, nil, err
		}
		return kind, cfg.Warnings(), scrnaRefs(cfg), nil

	default:
		in, err := config.ParseIntegrate(raw)
		if err != nil {
			return kind, nil, nil, err
		}
		cfg, err := in.Resolve()
		if err != nil {
			return kind, nil, nil, err
		}
		return kind, nil, integrateRefs(cfg), nil
	}
}

func scatacRefs(cfg config.ScATACConfig) []pathRef {
	return nonEmptyRefs([]pathRef{
		{field: "fastqdir", path: cfg.FastqDir, want: wantDir},
		{field: "giggleannotation", path: cfg.GiggleAnnotation, want: wantAny},
		{field: "genome.fasta", path: cfg.Genome.Fasta, want: wantFile},
		{field: "whitelist", path: cfg.Whitelist, want: wantFile},
		{field: "signaturefile", path: cfg.SignatureFile, want: wantFile},
		{field: "custompeaksloc", path: cfg.CustomPeaksLoc, want: wantFile},
	})
}

// scrnaRefs skips genome.rsem, that value is an index prefix rather than a
// path of its own.
func scrnaRefs(cfg config.ScRNAConfig) []pathRef {
	return nonEmptyRefs([]pathRef{
		{field: "fastqdir", path: cfg.FastqDir, want: wantDir},
		{field: "fastqbarcode", path: cfg.FastqBarcode, want: wantFile},
		{field: "fastqtranscript", path: cfg.FastqTranscript, want: wantFile},
		{field: "genome.mapindex", path: cfg.Genome.Mapindex, want: wantDir},
		{field: "whitelist", path: cfg.Whitelist, want: wantFile},
		{field: "rabitlib", path: cfg.RabitLib, want: wantAny},
		{field: "condadir", path: cfg.CondaDir, want: wantDir},
		{field: "signaturefile", path: cfg.SignatureFile, want: wantFile},
	})
}

func integrateRefs(cfg config.IntegrateConfig) []pathRef {
	return nonEmptyRefs([]pathRef{
		{field: "rnaobject", path: cfg.RNAObject, want: wantFile},
		{field: "atacobject", path: cfg.ATACObject, want: wantFile},
	})
}

func nonEmptyRefs(refs []pathRef) []pathRef {
	out := refs[:0]
	for _, ref := range refs {
		if ref.path != "" {
			out = append(out, ref)
		}
	}
	return out
}
