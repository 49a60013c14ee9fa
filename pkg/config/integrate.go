package config

import "errors"

// IntegrateInput is the raw form of a multi-omics integration config. The
// two object paths point at Seurat objects produced by the scRNA-seq and
// scATAC-seq workflows.
type IntegrateInput struct {
	RNAObject  string `yaml:"rnaobject"`
	ATACObject string `yaml:"atacobject"`
	Outprefix  string `yaml:"outprefix"`
}

// IntegrateConfig is the resolved integration config.
type IntegrateConfig struct {
	RNAObject  string
	ATACObject string
	Outprefix  string
}

// Resolve validates the input. Both objects are required, integration has
// nothing to do with only one side.
func (in IntegrateInput) Resolve() (IntegrateConfig, error) {

	var errs []error

	cfg := IntegrateConfig{
		RNAObject:  in.RNAObject,
		ATACObject: in.ATACObject,
		Outprefix:  DefaultOutprefix,
	}

	if in.Outprefix != "" {
		cfg.Outprefix = in.Outprefix
	}

	if cfg.RNAObject == "" {
		errs = append(errs, missingField("rnaobject"))
	}
	if cfg.ATACObject == "" {
		errs = append(errs, missingField("atacobject"))
	}

	if len(errs) > 0 {
		return IntegrateConfig{}, errors.Join(errs...)
	}

	return cfg, nil
}
