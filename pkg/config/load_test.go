package config

import (
	"os"
	"path"
	"testing"
)

func TestDetectKind(t *testing.T) {

	cases := []struct {
		name string
		raw  string
		want Kind
	}{
		{
			"scatac",
			"species: GRCh38\ncustompeaks: FALSE\ngiggleannotation: /refs/giggle\n",
			KindScATAC,
		},
		{
			"scrna",
			"species: GRCh38\nlisamode: local\numi:\n  start: 17\n",
			KindScRNA,
		},
		{
			"integrate",
			"rnaobject: /results/rna.rds\natacobject: /results/atac.rds\n",
			KindIntegrate,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DetectKind([]byte(c.raw))
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			if got != c.want {
				t.Errorf("kind = %q, want %q", got, c.want)
			}
		})
	}

	if _, err := DetectKind([]byte("species: GRCh38\n")); err == nil {
		t.Errorf("a document without characteristic keys should not detect")
	}

	if _, err := DetectKind([]byte("species: [GRCh38")); err == nil {
		t.Errorf("broken yaml should not detect")
	}
}

func TestLoadScATAC(t *testing.T) {

	doc := `# Directory where fastq files are stored
fastqdir: /data/fastq

species: GRCm38
platform: sci-ATAC-seq
whitelist: /data/barcodes.txt
cores: 12

signature: TRUE
signaturefile: /data/signatures.txt

cutoff:
  count: 500
  frip: 0.1

genome:
  fasta: /refs/GRCm38/genome.fa
`

	file := path.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	in, err := LoadScATAC(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg, err := in.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cfg.Species != SpeciesMouse {
		t.Errorf("species = %q, want %q", cfg.Species, SpeciesMouse)
	}
	if cfg.Platform != PlatformSciATAC {
		t.Errorf("platform = %q, want %q", cfg.Platform, PlatformSciATAC)
	}
	if cfg.Cores != 12 {
		t.Errorf("cores = %d, want 12", cfg.Cores)
	}
	if !cfg.Signature || cfg.SignatureFile != "/data/signatures.txt" {
		t.Errorf("signature block not kept: %+v", cfg)
	}
	if cfg.Cutoff.Count != 500 || cfg.Cutoff.Frip != 0.1 {
		t.Errorf("cutoff = %+v", cfg.Cutoff)
	}

	// Defaults still fill the keys the file leaves out.
	if cfg.Outprefix != "MAESTRO" {
		t.Errorf("outprefix = %q, want MAESTRO", cfg.Outprefix)
	}
	if cfg.GeneDistance != 10000 {
		t.Errorf("genedistance = %d, want 10000", cfg.GeneDistance)
	}
}

func TestLoadMissingFile(t *testing.T) {

	if _, err := LoadScATAC(path.Join(t.TempDir(), "no-such.yaml")); err == nil {
		t.Errorf("missing file should error")
	}
}
