package cmd

import (
	"bytes"
	"context"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	_ "modernc.org/sqlite"

	"github.com/yumyai/maestro/logger"
	"github.com/yumyai/maestro/pkg/config"
	"github.com/yumyai/maestro/pkg/db"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(zapcore.ErrorLevel); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunScatacInit(t *testing.T) {
	app = &App{}
	defer func() { app = nil }()

	dir := path.Join(t.TempDir(), "atac")
	scatacDirectory = dir
	defer func() { scatacDirectory = "MAESTRO" }()

	if err := runScatacInit(testCommand(), nil); err != nil {
		t.Fatalf("runScatacInit failed: %v", err)
	}

	in, err := config.LoadScATAC(path.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("installed config does not load: %v", err)
	}
	cfg, err := in.Resolve()
	if err != nil {
		t.Fatalf("installed config does not resolve: %v", err)
	}
	if cfg.Outprefix != "MAESTRO" || cfg.Cores != config.DefaultCores {
		t.Errorf("unexpected resolved config: %+v", cfg)
	}

	if _, err := os.Stat(path.Join(dir, "Snakefile")); err != nil {
		t.Errorf("Snakefile was not installed: %v", err)
	}
}

func TestRunScatacInitInvalid(t *testing.T) {
	app = &App{}
	defer func() { app = nil }()

	scatacDirectory = path.Join(t.TempDir(), "atac")
	scatacCores = 0
	defer func() {
		scatacDirectory = "MAESTRO"
		scatacCores = config.DefaultCores
	}()

	err := runScatacInit(testCommand(), nil)
	if err == nil {
		t.Fatal("expected an error for cores = 0")
	}
	if !strings.Contains(err.Error(), "cores") {
		t.Errorf("error does not name the field: %v", err)
	}

	if _, statErr := os.Stat(scatacDirectory); !os.IsNotExist(statErr) {
		t.Error("an invalid config must not leave a workflow directory behind")
	}
}

func TestRunValidate(t *testing.T) {
	app = &App{}
	defer func() { app = nil }()

	dir := path.Join(t.TempDir(), "atac")
	scatacDirectory = dir
	defer func() { scatacDirectory = "MAESTRO" }()

	if err := runScatacInit(testCommand(), nil); err != nil {
		t.Fatal(err)
	}

	cmd := testCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runValidate(cmd, []string{path.Join(dir, "config.yaml")}); err != nil {
		t.Fatalf("runValidate failed: %v", err)
	}
	if !strings.Contains(out.String(), "OK: scatac") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunValidateForcedKind(t *testing.T) {
	file := path.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte("outprefix: sample1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Nothing characteristic in the file, detection has to fail.
	if err := runValidate(testCommand(), []string{file}); err == nil {
		t.Fatal("expected a detection error")
	}

	validateKind = "scatac"
	defer func() { validateKind = "" }()

	cmd := testCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := runValidate(cmd, []string{file}); err != nil {
		t.Fatalf("runValidate with --kind failed: %v", err)
	}
}

func TestRunCheck(t *testing.T) {
	base := t.TempDir()

	fastqdir := path.Join(base, "fastq")
	if err := os.MkdirAll(fastqdir, 0755); err != nil {
		t.Fatal(err)
	}

	good := "fastqdir: " + fastqdir + "\ngiggleannotation: \"\"\nshortpeaks: FALSE\n"
	goodFile := path.Join(base, "good.yaml")
	if err := os.WriteFile(goodFile, []byte(good), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := testCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := runCheck(cmd, []string{goodFile}); err != nil {
		t.Fatalf("runCheck failed on an existing fastqdir: %v", err)
	}

	bad := "fastqdir: " + path.Join(base, "nowhere") + "\nshortpeaks: FALSE\n"
	badFile := path.Join(base, "bad.yaml")
	if err := os.WriteFile(badFile, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	cmd = testCommand()
	out.Reset()
	cmd.SetOut(&out)
	if err := runCheck(cmd, []string{badFile}); err == nil {
		t.Fatal("expected an error for a missing fastqdir")
	}
	if !strings.Contains(out.String(), "missing: ") || !strings.Contains(out.String(), "fastqdir") {
		t.Errorf("missing path was not reported: %q", out.String())
	}
}

func TestRunList(t *testing.T) {
	registry, err := db.OpenRegistry(path.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer registry.Close()

	app = &App{Registry: registry}
	defer func() { app = nil }()

	cmd := testCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList failed: %v", err)
	}
	if !strings.Contains(out.String(), "No workflows recorded yet.") {
		t.Errorf("unexpected output for an empty registry: %q", out.String())
	}

	_, err = registry.Register(context.Background(), db.Workflow{
		Kind:      "scatac",
		Directory: "/data/atac",
		Outprefix: "sample1",
	})
	if err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := runList(cmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ID\tKIND\tDIRECTORY") || !strings.Contains(out.String(), "/data/atac") {
		t.Errorf("unexpected listing: %q", out.String())
	}
}

func TestRunScrnaQC(t *testing.T) {
	base := t.TempDir()

	matrix := path.Join(base, "counts.txt")
	content := "gene\tc1\tc2\n" +
		"g1\t5\t0\n" +
		"g2\t3\t1\n"
	if err := os.WriteFile(matrix, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	qcFormat = "plain"
	qcMatrix = matrix
	qcDirectory = path.Join(base, "results")
	qcOutprefix = "sample1"
	qcCountCutoff = 2
	qcGeneCutoff = 0
	defer func() {
		qcFormat = "mtx"
		qcMatrix = ""
		qcDirectory = "MAESTRO"
		qcOutprefix = config.DefaultOutprefix
		qcCountCutoff = config.DefaultCountCutoff
		qcGeneCutoff = config.DefaultGeneCutoff
	}()

	if err := runScrnaQC(testCommand(), nil); err != nil {
		t.Fatalf("runScrnaQC failed: %v", err)
	}

	if _, err := os.Stat(path.Join(qcDirectory, "sample1_count_gene_stat.txt")); err != nil {
		t.Errorf("stat table missing: %v", err)
	}
	if _, err := os.Stat(path.Join(qcDirectory, "sample1_filtered_gene_count", "matrix.mtx")); err != nil {
		t.Errorf("filtered matrix missing: %v", err)
	}
}
