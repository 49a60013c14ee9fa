package config

import (
	"errors"
	"fmt"
)

// Defaults specific to the scRNA-seq workflow. Barcode and UMI positions
// are 1-based and match 10x V2 chemistry.
const (
	DefaultGeneCutoff    = 500
	DefaultBarcodeStart  = 1
	DefaultBarcodeLength = 16
	DefaultUMIStart      = 17
	DefaultUMILength     = 10
	DefaultLisaEnv       = "lisa"
)

// ScRNAInput is the raw, not yet validated form of a scRNA-seq workflow
// config.
type ScRNAInput struct {
	FastqDir        string           `yaml:"fastqdir"`
	FastqPrefix     string           `yaml:"fastqprefix"`
	FastqBarcode    string           `yaml:"fastqbarcode"`
	FastqTranscript string           `yaml:"fastqtranscript"`
	Species         string           `yaml:"species"`
	Platform        string           `yaml:"platform"`
	Outprefix       string           `yaml:"outprefix"`
	Rseqc           bool             `yaml:"rseqc"`
	Cores           *int             `yaml:"cores"`
	Signature       bool             `yaml:"signature"`
	SignatureFile   string           `yaml:"signaturefile"`
	Method          string           `yaml:"method"`
	RabitLib        string           `yaml:"rabitlib"`
	LisaMode        string           `yaml:"lisamode"`
	LisaEnv         string           `yaml:"lisaenv"`
	CondaDir        string           `yaml:"condadir"`
	Whitelist       string           `yaml:"whitelist"`
	Barcode         RangeInput       `yaml:"barcode"`
	UMI             RangeInput       `yaml:"umi"`
	Cutoff          ScRNACutoffInput `yaml:"cutoff"`
	Genome          ScRNAGenomeInput `yaml:"genome"`
}

// RangeInput locates a barcode or UMI inside a read, 1-based.
type RangeInput struct {
	Start  *int `yaml:"start"`
	Length *int `yaml:"length"`
}

type ScRNACutoffInput struct {
	Count *int `yaml:"count"`
	Gene  *int `yaml:"gene"`
}

type ScRNAGenomeInput struct {
	Mapindex string `yaml:"mapindex"`
	Rsem     string `yaml:"rsem"`
}

// ScRNAConfig is the resolved scRNA-seq workflow config.
type ScRNAConfig struct {
	FastqDir        string
	FastqPrefix     string
	FastqBarcode    string
	FastqTranscript string
	Species         Species
	Platform        RNAPlatform
	Outprefix       string
	Rseqc           bool
	Cores           int
	Signature       bool
	SignatureFile   string
	Method          Method
	RabitLib        string
	LisaMode        LisaMode
	LisaEnv         string
	CondaDir        string
	Whitelist       string
	Barcode         Range
	UMI             Range
	Cutoff          ScRNACutoff
	Genome          ScRNAGenome
}

type Range struct {
	Start  int
	Length int
}

type ScRNACutoff struct {
	Count int
	Gene  int
}

type ScRNAGenome struct {
	Mapindex string
	Rsem     string
}

// Resolve fills in defaults and validates the input. All field violations
// are reported together, not just the first one.
func (in ScRNAInput) Resolve() (ScRNAConfig, error) {

	var errs []error

	cfg := ScRNAConfig{
		FastqDir:        in.FastqDir,
		FastqPrefix:     in.FastqPrefix,
		FastqBarcode:    in.FastqBarcode,
		FastqTranscript: in.FastqTranscript,
		Species:         SpeciesHuman,
		Platform:        RNAPlatform10x,
		Outprefix:       DefaultOutprefix,
		Rseqc:           in.Rseqc,
		Cores:           DefaultCores,
		Signature:       in.Signature,
		SignatureFile:   in.SignatureFile,
		Method:          MethodLisa,
		RabitLib:        in.RabitLib,
		LisaMode:        LisaModeLocal,
		LisaEnv:         DefaultLisaEnv,
		CondaDir:        in.CondaDir,
		Whitelist:       in.Whitelist,
		Barcode:         Range{Start: DefaultBarcodeStart, Length: DefaultBarcodeLength},
		UMI:             Range{Start: DefaultUMIStart, Length: DefaultUMILength},
		Cutoff:          ScRNACutoff{Count: DefaultCountCutoff, Gene: DefaultGeneCutoff},
		Genome:          ScRNAGenome(in.Genome),
	}

	if in.Species != "" {
		species, err := NewSpecies(in.Species)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Species = species
		}
	}

	if in.Platform != "" {
		platform, err := NewRNAPlatform(in.Platform)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Platform = platform
		}
	}

	if in.Method != "" {
		method, err := NewMethod(in.Method)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Method = method
		}
	}

	if in.LisaMode != "" {
		mode, err := NewLisaMode(in.LisaMode)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.LisaMode = mode
		}
	}

	if in.Outprefix != "" {
		cfg.Outprefix = in.Outprefix
	}
	if in.LisaEnv != "" {
		cfg.LisaEnv = in.LisaEnv
	}
	if in.Cores != nil {
		cfg.Cores = *in.Cores
	}
	if in.Barcode.Start != nil {
		cfg.Barcode.Start = *in.Barcode.Start
	}
	if in.Barcode.Length != nil {
		cfg.Barcode.Length = *in.Barcode.Length
	}
	if in.UMI.Start != nil {
		cfg.UMI.Start = *in.UMI.Start
	}
	if in.UMI.Length != nil {
		cfg.UMI.Length = *in.UMI.Length
	}
	if in.Cutoff.Count != nil {
		cfg.Cutoff.Count = *in.Cutoff.Count
	}
	if in.Cutoff.Gene != nil {
		cfg.Cutoff.Gene = *in.Cutoff.Gene
	}

	if cfg.Cores < 1 {
		errs = append(errs, outOfRange("cores", cfg.Cores, "must be at least 1"))
	}
	if cfg.Barcode.Start < 1 {
		errs = append(errs, outOfRange("barcode.start", cfg.Barcode.Start, "positions are 1-based"))
	}
	if cfg.Barcode.Length < 1 {
		errs = append(errs, outOfRange("barcode.length", cfg.Barcode.Length, "must be at least 1"))
	}
	if cfg.UMI.Start < 1 {
		errs = append(errs, outOfRange("umi.start", cfg.UMI.Start, "positions are 1-based"))
	}
	if cfg.UMI.Length < 1 {
		errs = append(errs, outOfRange("umi.length", cfg.UMI.Length, "must be at least 1"))
	}
	if cfg.Cutoff.Count < 0 {
		errs = append(errs, outOfRange("cutoff.count", cfg.Cutoff.Count, "must not be negative"))
	}
	if cfg.Cutoff.Gene < 0 {
		errs = append(errs, outOfRange("cutoff.gene", cfg.Cutoff.Gene, "must not be negative"))
	}

	if cfg.Signature && cfg.SignatureFile == "" {
		errs = append(errs, conditionalMissing("signaturefile", "signature is TRUE"))
	}
	if cfg.Platform == RNAPlatformDropseq && cfg.FastqBarcode == "" {
		errs = append(errs, conditionalMissing("fastqbarcode", "platform is Dropseq"))
	}
	if cfg.Platform == RNAPlatformDropseq && cfg.FastqTranscript == "" {
		errs = append(errs, conditionalMissing("fastqtranscript", "platform is Dropseq"))
	}
	if cfg.Method == MethodRabit && cfg.RabitLib == "" {
		errs = append(errs, conditionalMissing("rabitlib", "method is RABIT"))
	}
	if cfg.Method == MethodLisa && cfg.LisaMode == LisaModeLocal && cfg.CondaDir == "" {
		errs = append(errs, conditionalMissing("condadir", "method is LISA and lisamode is local"))
	}

	if len(errs) > 0 {
		return ScRNAConfig{}, errors.Join(errs...)
	}

	return cfg, nil
}

// Warnings reports advisory findings that do not fail resolution.
func (c ScRNAConfig) Warnings() []string {

	var notes []string

	if c.Whitelist == "" && (c.Platform == RNAPlatform10x || c.Platform == RNAPlatformDropseq) {
		notes = append(notes, fmt.Sprintf("no whitelist for platform %s, every observed barcode will be considered", c.Platform))
	}

	if c.FastqDir == "" {
		notes = append(notes, "fastqdir is empty, fill it in before running the workflow")
	}

	return notes
}
