package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind names a workflow family. It doubles as the asset directory name of
// the bundled Snakefiles.
type Kind string

const (
	KindScATAC    Kind = "scatac"
	KindScRNA     Kind = "scrna"
	KindIntegrate Kind = "integrate"
)

var kindValues = []string{string(KindScATAC), string(KindScRNA), string(KindIntegrate)}

func (k Kind) Valid() bool {
	switch k {
	case KindScATAC, KindScRNA, KindIntegrate:
		return true
	default:
		return false
	}
}

func NewKind(v string) (Kind, error) {
	k := Kind(v)
	if !k.Valid() {
		return "", invalidEnum("kind", v, kindValues)
	}
	return k, nil
}

// DetectKind tells which workflow family a config document belongs to by
// probing for keys that only one schema has. Unknown keys elsewhere are
// ignored, so a hand-edited file still detects fine.
func DetectKind(raw []byte) (Kind, error) {

	var probe map[string]any

	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return "", fmt.Errorf("parse config: %w", err)
	}

	has := func(key string) bool {
		_, ok := probe[key]
		return ok
	}

	switch {
	case has("rnaobject") || has("atacobject"):
		return KindIntegrate, nil
	case has("giggleannotation") || has("custompeaks") || has("shortpeaks"):
		return KindScATAC, nil
	case has("lisamode") || has("rseqc") || has("umi"):
		return KindScRNA, nil
	default:
		return "", fmt.Errorf("cannot detect workflow kind, no characteristic key found")
	}
}

func ParseScATAC(raw []byte) (ScATACInput, error) {
	var in ScATACInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return ScATACInput{}, fmt.Errorf("parse scATAC config: %w", err)
	}
	return in, nil
}

func ParseScRNA(raw []byte) (ScRNAInput, error) {
	var in ScRNAInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return ScRNAInput{}, fmt.Errorf("parse scRNA config: %w", err)
	}
	return in, nil
}

func ParseIntegrate(raw []byte) (IntegrateInput, error) {
	var in IntegrateInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return IntegrateInput{}, fmt.Errorf("parse integrate config: %w", err)
	}
	return in, nil
}

func LoadScATAC(path string) (ScATACInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScATACInput{}, fmt.Errorf("read config: %w", err)
	}
	return ParseScATAC(raw)
}

func LoadScRNA(path string) (ScRNAInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScRNAInput{}, fmt.Errorf("read config: %w", err)
	}
	return ParseScRNA(raw)
}

func LoadIntegrate(path string) (IntegrateInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return IntegrateInput{}, fmt.Errorf("read config: %w", err)
	}
	return ParseIntegrate(raw)
}
