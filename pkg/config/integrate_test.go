package config

import (
	"errors"
	"testing"
)

func TestResolveIntegrate(t *testing.T) {

	in := IntegrateInput{
		RNAObject:  "/results/rna/MAESTRO_scRNA_Object.rds",
		ATACObject: "/results/atac/MAESTRO_scATAC_Object.rds",
	}

	cfg, err := in.Resolve()

	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cfg.Outprefix != "MAESTRO" {
		t.Errorf("outprefix = %q, want MAESTRO", cfg.Outprefix)
	}
	if cfg.RNAObject != in.RNAObject || cfg.ATACObject != in.ATACObject {
		t.Errorf("object paths were not kept: %+v", cfg)
	}
}

func TestResolveIntegrateMissingObjects(t *testing.T) {

	_, err := IntegrateInput{}.Resolve()

	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("want ErrMissingRequiredField, got %v", err)
	}

	_, err = IntegrateInput{RNAObject: "/results/rna.rds"}.Resolve()
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("missing atacobject: want ErrMissingRequiredField, got %v", err)
	}
}
