// Package config declares the workflow configuration schemas and their
// validation. The resolved forms mirror the config.yaml consumed by the
// Snakemake workflows: field names, nesting and accepted values follow the
// pipeline exactly, so a resolved config can be handed over without further
// translation. Resolution itself is pure, it never touches the file system.
package config

import (
	"errors"
	"fmt"
)

// Defaults shared by the workflow configs.
const (
	DefaultOutprefix    = "MAESTRO"
	DefaultCores        = 8
	DefaultCountCutoff  = 1000
	DefaultFripCutoff   = 0.2
	DefaultGeneDistance = 10000
)

// ScATACInput is the raw, not yet validated form of a scATAC-seq workflow
// config. Numeric fields are pointers so that an omitted key can be told
// apart from an explicit zero, e.g. cutoff.frip: 0 is a legal value.
type ScATACInput struct {
	FastqDir         string            `yaml:"fastqdir"`
	FastqPrefix      string            `yaml:"fastqprefix"`
	Species          string            `yaml:"species"`
	Platform         string            `yaml:"platform"`
	Outprefix        string            `yaml:"outprefix"`
	Whitelist        string            `yaml:"whitelist"`
	Cores            *int              `yaml:"cores"`
	Signature        bool              `yaml:"signature"`
	SignatureFile    string            `yaml:"signaturefile"`
	CustomPeaks      bool              `yaml:"custompeaks"`
	CustomPeaksLoc   string            `yaml:"custompeaksloc"`
	ShortPeaks       bool              `yaml:"shortpeaks"`
	GeneDistance     *int              `yaml:"genedistance"`
	GiggleAnnotation string            `yaml:"giggleannotation"`
	Cutoff           ScATACCutoffInput `yaml:"cutoff"`
	Genome           GenomeInput       `yaml:"genome"`
}

type ScATACCutoffInput struct {
	Count *int     `yaml:"count"`
	Frip  *float64 `yaml:"frip"`
}

type GenomeInput struct {
	Fasta string `yaml:"fasta"`
}

// ScATACConfig is the resolved scATAC-seq workflow config. It is a
// write-once snapshot, nothing mutates it after resolution.
type ScATACConfig struct {
	FastqDir         string
	FastqPrefix      string
	Species          Species
	Platform         Platform
	Outprefix        string
	Whitelist        string
	Cores            int
	Signature        bool
	SignatureFile    string
	CustomPeaks      bool
	CustomPeaksLoc   string
	ShortPeaks       bool
	GeneDistance     int
	GiggleAnnotation string
	Cutoff           ScATACCutoff
	Genome           Genome
}

type ScATACCutoff struct {
	Count int
	Frip  float64
}

type Genome struct {
	Fasta string
}

// Resolve fills in defaults and validates the input. All field violations
// are reported together, not just the first one.
func (in ScATACInput) Resolve() (ScATACConfig, error) {

	var errs []error

	cfg := ScATACConfig{
		FastqDir:         in.FastqDir,
		FastqPrefix:      in.FastqPrefix,
		Species:          SpeciesHuman,
		Platform:         Platform10x,
		Outprefix:        DefaultOutprefix,
		Whitelist:        in.Whitelist,
		Cores:            DefaultCores,
		Signature:        in.Signature,
		SignatureFile:    in.SignatureFile,
		CustomPeaks:      in.CustomPeaks,
		CustomPeaksLoc:   in.CustomPeaksLoc,
		ShortPeaks:       in.ShortPeaks,
		GeneDistance:     DefaultGeneDistance,
		GiggleAnnotation: in.GiggleAnnotation,
		Cutoff: ScATACCutoff{
			Count: DefaultCountCutoff,
			Frip:  DefaultFripCutoff,
		},
		Genome: Genome(in.Genome),
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
		platform, err := NewPlatform(in.Platform)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Platform = platform
		}
	}

	if in.Outprefix != "" {
		cfg.Outprefix = in.Outprefix
	}
	if in.Cores != nil {
		cfg.Cores = *in.Cores
	}
	if in.GeneDistance != nil {
		cfg.GeneDistance = *in.GeneDistance
	}
	if in.Cutoff.Count != nil {
		cfg.Cutoff.Count = *in.Cutoff.Count
	}
	if in.Cutoff.Frip != nil {
		cfg.Cutoff.Frip = *in.Cutoff.Frip
	}

	if cfg.Cores < 1 {
		errs = append(errs, outOfRange("cores", cfg.Cores, "must be at least 1"))
	}
	if cfg.GeneDistance < 0 {
		errs = append(errs, outOfRange("genedistance", cfg.GeneDistance, "must not be negative"))
	}
	if cfg.Cutoff.Count < 0 {
		errs = append(errs, outOfRange("cutoff.count", cfg.Cutoff.Count, "must not be negative"))
	}
	if cfg.Cutoff.Frip < 0 || cfg.Cutoff.Frip > 1 {
		errs = append(errs, outOfRange("cutoff.frip", cfg.Cutoff.Frip, "must be between 0 and 1"))
	}

	if cfg.Signature && cfg.SignatureFile == "" {
		errs = append(errs, conditionalMissing("signaturefile", "signature is TRUE"))
	}
	if cfg.CustomPeaks && cfg.CustomPeaksLoc == "" {
		errs = append(errs, conditionalMissing("custompeaksloc", "custompeaks is TRUE"))
	}

	if len(errs) > 0 {
		return ScATACConfig{}, errors.Join(errs...)
	}

	return cfg, nil
}

// Warnings reports advisory findings that do not fail resolution. The
// workflow can run without a whitelist by keeping barcodes with read count
// above 1000, so an empty whitelist is a note rather than an error.
func (c ScATACConfig) Warnings() []string {

	var notes []string

	if c.Whitelist == "" && (c.Platform == Platform10x || c.Platform == PlatformSciATAC) {
		notes = append(notes, fmt.Sprintf("no whitelist for platform %s, barcodes with read count > 1000 will be kept as cells", c.Platform))
	}

	if c.FastqDir == "" {
		notes = append(notes, "fastqdir is empty, fill it in before running the workflow")
	}

	return notes
}
