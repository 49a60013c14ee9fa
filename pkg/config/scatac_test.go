package config

import (
	"errors"
	"strings"
	"testing"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestResolveScATACDefaults(t *testing.T) {

	cfg, err := ScATACInput{}.Resolve()

	if err != nil {
		t.Fatalf("empty input should resolve, got %v", err)
	}

	if cfg.Species != SpeciesHuman {
		t.Errorf("species = %q, want %q", cfg.Species, SpeciesHuman)
	}
	if cfg.Platform != Platform10x {
		t.Errorf("platform = %q, want %q", cfg.Platform, Platform10x)
	}
	if cfg.Outprefix != "MAESTRO" {
		t.Errorf("outprefix = %q, want MAESTRO", cfg.Outprefix)
	}
	if cfg.Cores != 8 {
		t.Errorf("cores = %d, want 8", cfg.Cores)
	}
	if cfg.Cutoff.Count != 1000 {
		t.Errorf("cutoff.count = %d, want 1000", cfg.Cutoff.Count)
	}
	if cfg.Cutoff.Frip != 0.2 {
		t.Errorf("cutoff.frip = %v, want 0.2", cfg.Cutoff.Frip)
	}
	if cfg.GeneDistance != 10000 {
		t.Errorf("genedistance = %d, want 10000", cfg.GeneDistance)
	}
	if cfg.Signature || cfg.CustomPeaks || cfg.ShortPeaks {
		t.Errorf("boolean flags should default to FALSE")
	}
}

func TestResolveScATACKeepsGivenValues(t *testing.T) {

	in := ScATACInput{
		FastqDir:    "/data/fastq",
		FastqPrefix: "pbmc_1k_v2",
		Species:     "GRCh38",
		Platform:    "10x-genomics",
		Cores:       intp(4),
		Signature:   false,
		CustomPeaks: false,
		ShortPeaks:  false,
		GeneDistance: intp(10000),
		Cutoff: ScATACCutoffInput{
			Count: intp(1000),
			Frip:  floatp(0.2),
		},
		Genome: GenomeInput{Fasta: "/refs/GRCh38/genome.fa"},
	}

	cfg, err := in.Resolve()

	if err != nil {
		t.Fatalf("valid input should resolve, got %v", err)
	}

	if cfg.Cores != 4 {
		t.Errorf("cores = %d, want 4", cfg.Cores)
	}
	if cfg.FastqPrefix != "pbmc_1k_v2" {
		t.Errorf("fastqprefix = %q, want pbmc_1k_v2", cfg.FastqPrefix)
	}
	if cfg.Cutoff.Count != 1000 || cfg.Cutoff.Frip != 0.2 {
		t.Errorf("cutoff = %+v, want count 1000 frip 0.2", cfg.Cutoff)
	}
	if cfg.Genome.Fasta != "/refs/GRCh38/genome.fa" {
		t.Errorf("genome.fasta = %q", cfg.Genome.Fasta)
	}
}

func TestResolveScATACEnums(t *testing.T) {

	cases := []struct {
		name string
		in   ScATACInput
	}{
		{"bad species", ScATACInput{Species: "hg38"}},
		{"bad platform", ScATACInput{Platform: "dropseq"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.in.Resolve()
			if !errors.Is(err, ErrInvalidEnumValue) {
				t.Errorf("want ErrInvalidEnumValue, got %v", err)
			}
		})
	}

	for _, species := range []string{"GRCh38", "GRCm38"} {
		for _, platform := range []string{"10x-genomics", "sci-ATAC-seq", "microfluidic"} {
			_, err := ScATACInput{Species: species, Platform: platform}.Resolve()
			if err != nil {
				t.Errorf("species %s platform %s should resolve, got %v", species, platform, err)
			}
		}
	}
}

func TestResolveScATACConditionalFields(t *testing.T) {

	_, err := ScATACInput{Signature: true}.Resolve()
	if !errors.Is(err, ErrConditionalFieldMissing) {
		t.Errorf("signature without signaturefile: want ErrConditionalFieldMissing, got %v", err)
	}

	_, err = ScATACInput{CustomPeaks: true}.Resolve()
	if !errors.Is(err, ErrConditionalFieldMissing) {
		t.Errorf("custompeaks without custompeaksloc: want ErrConditionalFieldMissing, got %v", err)
	}

	_, err = ScATACInput{Signature: true, SignatureFile: "/data/signatures.txt"}.Resolve()
	if err != nil {
		t.Errorf("signature with signaturefile should resolve, got %v", err)
	}

	_, err = ScATACInput{CustomPeaks: true, CustomPeaksLoc: "/data/peaks.bed"}.Resolve()
	if err != nil {
		t.Errorf("custompeaks with custompeaksloc should resolve, got %v", err)
	}
}

func TestResolveScATACRanges(t *testing.T) {

	cases := []struct {
		name string
		in   ScATACInput
		bad  bool
	}{
		{"frip below zero", ScATACInput{Cutoff: ScATACCutoffInput{Frip: floatp(-0.1)}}, true},
		{"frip above one", ScATACInput{Cutoff: ScATACCutoffInput{Frip: floatp(1.5)}}, true},
		{"frip zero", ScATACInput{Cutoff: ScATACCutoffInput{Frip: floatp(0)}}, false},
		{"frip one", ScATACInput{Cutoff: ScATACCutoffInput{Frip: floatp(1)}}, false},
		{"zero cores", ScATACInput{Cores: intp(0)}, true},
		{"negative count", ScATACInput{Cutoff: ScATACCutoffInput{Count: intp(-5)}}, true},
		{"zero count", ScATACInput{Cutoff: ScATACCutoffInput{Count: intp(0)}}, false},
		{"negative genedistance", ScATACInput{GeneDistance: intp(-1)}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.in.Resolve()
			if c.bad && !errors.Is(err, ErrOutOfRangeValue) {
				t.Errorf("want ErrOutOfRangeValue, got %v", err)
			}
			if !c.bad && err != nil {
				t.Errorf("should resolve, got %v", err)
			}
		})
	}
}

// An explicit frip of 0 must survive resolution, it is a legal cutoff and
// not the same as an omitted key.
func TestResolveScATACExplicitZeroFrip(t *testing.T) {

	cfg, err := ScATACInput{Cutoff: ScATACCutoffInput{Frip: floatp(0)}}.Resolve()

	if err != nil {
		t.Fatalf("frip 0 should resolve, got %v", err)
	}

	if cfg.Cutoff.Frip != 0 {
		t.Errorf("frip = %v, want 0", cfg.Cutoff.Frip)
	}
}

func TestResolveScATACWhitelistFallback(t *testing.T) {

	cfg, err := ScATACInput{Platform: "sci-ATAC-seq"}.Resolve()

	if err != nil {
		t.Fatalf("sci-ATAC-seq without whitelist should resolve, got %v", err)
	}

	found := false
	for _, note := range cfg.Warnings() {
		if strings.Contains(note, "whitelist") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a whitelist fallback warning, got %v", cfg.Warnings())
	}

	cfg, err = ScATACInput{Platform: "sci-ATAC-seq", Whitelist: "/data/barcodes.txt", FastqDir: "/data/fastq"}.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(cfg.Warnings()) != 0 {
		t.Errorf("no warnings expected with whitelist set, got %v", cfg.Warnings())
	}
}

func TestResolveScATACReportsAllViolations(t *testing.T) {

	in := ScATACInput{
		Species:   "hg19",
		Signature: true,
		Cores:     intp(-2),
		Cutoff:    ScATACCutoffInput{Frip: floatp(2)},
	}

	_, err := in.Resolve()

	if err == nil {
		t.Fatal("expected an error")
	}

	for _, want := range []error{ErrInvalidEnumValue, ErrConditionalFieldMissing, ErrOutOfRangeValue} {
		if !errors.Is(err, want) {
			t.Errorf("joined error should contain %v, got %v", want, err)
		}
	}
}

func TestResolveScATACIdempotent(t *testing.T) {

	first, err := ScATACInput{Platform: "microfluidic", Cores: intp(16)}.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	again, err := scatacInputFrom(first).Resolve()
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first != again {
		t.Errorf("resolution is not idempotent:\nfirst  %+v\nsecond %+v", first, again)
	}
}

// scatacInputFrom turns a resolved config back into raw input, same shape
// as loading a rendered config.yaml.
func scatacInputFrom(c ScATACConfig) ScATACInput {
	return ScATACInput{
		FastqDir:         c.FastqDir,
		FastqPrefix:      c.FastqPrefix,
		Species:          string(c.Species),
		Platform:         string(c.Platform),
		Outprefix:        c.Outprefix,
		Whitelist:        c.Whitelist,
		Cores:            intp(c.Cores),
		Signature:        c.Signature,
		SignatureFile:    c.SignatureFile,
		CustomPeaks:      c.CustomPeaks,
		CustomPeaksLoc:   c.CustomPeaksLoc,
		ShortPeaks:       c.ShortPeaks,
		GeneDistance:     intp(c.GeneDistance),
		GiggleAnnotation: c.GiggleAnnotation,
		Cutoff: ScATACCutoffInput{
			Count: intp(c.Cutoff.Count),
			Frip:  floatp(c.Cutoff.Frip),
		},
		Genome: GenomeInput(c.Genome),
	}
}
