package config

// Enum fields of the workflow configs. The pipeline matches these strings
// exactly, so the values are kept verbatim rather than normalized.

type Species string

const (
	SpeciesHuman Species = "GRCh38"
	SpeciesMouse Species = "GRCm38"
)

var speciesValues = []string{string(SpeciesHuman), string(SpeciesMouse)}

func (s Species) Valid() bool {
	switch s {
	case SpeciesHuman, SpeciesMouse:
		return true
	default:
		return false
	}
}

func NewSpecies(v string) (Species, error) {
	s := Species(v)
	if !s.Valid() {
		return "", invalidEnum("species", v, speciesValues)
	}
	return s, nil
}

// Platform of single cell ATAC-seq.
type Platform string

const (
	Platform10x          Platform = "10x-genomics"
	PlatformSciATAC      Platform = "sci-ATAC-seq"
	PlatformMicrofluidic Platform = "microfluidic"
)

var platformValues = []string{string(Platform10x), string(PlatformSciATAC), string(PlatformMicrofluidic)}

func (p Platform) Valid() bool {
	switch p {
	case Platform10x, PlatformSciATAC, PlatformMicrofluidic:
		return true
	default:
		return false
	}
}

func NewPlatform(v string) (Platform, error) {
	p := Platform(v)
	if !p.Valid() {
		return "", invalidEnum("platform", v, platformValues)
	}
	return p, nil
}

// Platform of single cell RNA-seq. Not the same set as the ATAC one.
type RNAPlatform string

const (
	RNAPlatform10x      RNAPlatform = "10x-genomics"
	RNAPlatformDropseq  RNAPlatform = "Dropseq"
	RNAPlatformSmartseq RNAPlatform = "Smartseq2"
)

var rnaPlatformValues = []string{string(RNAPlatform10x), string(RNAPlatformDropseq), string(RNAPlatformSmartseq)}

func (p RNAPlatform) Valid() bool {
	switch p {
	case RNAPlatform10x, RNAPlatformDropseq, RNAPlatformSmartseq:
		return true
	default:
		return false
	}
}

func NewRNAPlatform(v string) (RNAPlatform, error) {
	p := RNAPlatform(v)
	if !p.Valid() {
		return "", invalidEnum("platform", v, rnaPlatformValues)
	}
	return p, nil
}

// Method to predict driver regulators.
type Method string

const (
	MethodRabit Method = "RABIT"
	MethodLisa  Method = "LISA"
)

var methodValues = []string{string(MethodRabit), string(MethodLisa)}

func (m Method) Valid() bool {
	switch m {
	case MethodRabit, MethodLisa:
		return true
	default:
		return false
	}
}

func NewMethod(v string) (Method, error) {
	m := Method(v)
	if !m.Valid() {
		return "", invalidEnum("method", v, methodValues)
	}
	return m, nil
}

// LisaMode selects between a local LISA install and the online service.
type LisaMode string

const (
	LisaModeLocal LisaMode = "local"
	LisaModeWeb   LisaMode = "web"
)

var lisaModeValues = []string{string(LisaModeLocal), string(LisaModeWeb)}

func (m LisaMode) Valid() bool {
	switch m {
	case LisaModeLocal, LisaModeWeb:
		return true
	default:
		return false
	}
}

func NewLisaMode(v string) (LisaMode, error) {
	m := LisaMode(v)
	if !m.Valid() {
		return "", invalidEnum("lisamode", v, lisaModeValues)
	}
	return m, nil
}
