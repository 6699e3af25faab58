// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gslgen/core/blocks"
	"gslgen/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Chains contains the building-block selections
	Chains ChainsConfig `json:"chains"`

	// Generation contains generation defaults
	Generation GenerationConfig `json:"generation"`

	// Labeling contains isotope labeling defaults
	Labeling LabelingConfig `json:"labeling"`

	// CatalogDir holds user lipid class definitions (*.lipid.hcl)
	CatalogDir string `json:"catalog_dir,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ChainsConfig selects the long-chain bases and fatty acids to enumerate
type ChainsConfig struct {
	// LCBs are the long-chain bases for standard classes ("18:1;2")
	LCBs []string `json:"lcbs"`

	// DoxCerLCBs are the 1-deoxy bases used for doxCer
	DoxCerLCBs []string `json:"doxcer_lcbs"`

	// FattyAcids overrides the generated FA list when non-empty
	FattyAcids []string `json:"fatty_acids,omitempty"`

	// FARange generates the FA list when FattyAcids is empty
	FARange FARangeConfig `json:"fa_range"`
}

// FARangeConfig generates a fatty-acid list from a carbon range
type FARangeConfig struct {
	// MinLength is the shortest chain in carbons
	MinLength int `json:"min_length"`

	// MaxLength is the longest chain in carbons
	MaxLength int `json:"max_length"`

	// Unsaturations are the double-bond counts to include
	Unsaturations []int `json:"unsaturations"`

	// EvenChainOnly restricts to even carbon counts
	EvenChainOnly bool `json:"even_chain_only"`
}

// GenerationConfig contains generation defaults
type GenerationConfig struct {
	// ChargeStates are the default charge magnitudes
	ChargeStates []int `json:"charge_states"`

	// Adducts are the default adduct selection keys
	Adducts []string `json:"adducts"`

	// MaxRows bounds collected output; zero means unbounded
	MaxRows int `json:"max_rows,omitempty"`
}

// LabelingConfig contains isotope labeling defaults
type LabelingConfig struct {
	// Enabled turns on light/heavy expansion
	Enabled bool `json:"enabled"`

	// GSLIsotope is the token for glycosphingolipids and sphingomyelins
	GSLIsotope string `json:"gsl_isotope"`

	// CerIsotope is the token for ceramides
	CerIsotope string `json:"cer_isotope"`

	// DoxCerIsotope is the token for 1-deoxyceramides
	DoxCerIsotope string `json:"doxcer_isotope"`

	// LabelKeywords gate which products carry the label
	LabelKeywords string `json:"label_keywords"`

	// BlankMz blanks all m/z values in the output
	BlankMz bool `json:"blank_mz"`
}

// LCBList returns the base names for a lipid class.
func (c ChainsConfig) LCBList(lipidClass string) []string {
	if lipidClass == "doxCer" {
		return c.DoxCerLCBs
	}
	return c.LCBs
}

// ResolveLCBs parses the configured base names for a class.
func (c ChainsConfig) ResolveLCBs(lipidClass string) ([]blocks.Structure, error) {
	names := c.LCBList(lipidClass)
	out := make([]blocks.Structure, 0, len(names))
	for _, name := range names {
		st, err := blocks.ParseChain(blocks.KindLCB, name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// ResolveFAs returns the fatty-acid structures: the explicit list when
// set, the generated range otherwise.
func (c ChainsConfig) ResolveFAs() ([]blocks.Structure, error) {
	if len(c.FattyAcids) > 0 {
		out := make([]blocks.Structure, 0, len(c.FattyAcids))
		for _, name := range c.FattyAcids {
			st, err := blocks.ParseChain(blocks.KindFA, name)
			if err != nil {
				return nil, err
			}
			out = append(out, st)
		}
		return out, nil
	}

	var out []blocks.Structure
	for length := c.FARange.MinLength; length <= c.FARange.MaxLength; length++ {
		if c.FARange.EvenChainOnly && length%2 != 0 {
			continue
		}
		for _, unsat := range c.FARange.Unsaturations {
			out = append(out, blocks.Structure{Kind: blocks.KindFA, Carbons: length, DoubleBonds: unsat})
		}
	}
	return out, nil
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Chains: ChainsConfig{
			LCBs:       []string{"18:0;2", "18:1;2", "18:2;2"},
			DoxCerLCBs: []string{"18:0;1", "18:1;1"},
			FARange: FARangeConfig{
				MinLength:     16,
				MaxLength:     26,
				Unsaturations: []int{0, 1},
				EvenChainOnly: false,
			},
		},
		Generation: GenerationConfig{
			ChargeStates: []int{1},
			Adducts:      []string{"[M+H]+", "[M-H]-"},
		},
		Labeling: LabelingConfig{
			Enabled:       false,
			GSLIsotope:    "M2DN15",
			CerIsotope:    "M2DN15",
			DoxCerIsotope: "M3D",
			LabelKeywords: "LCB,precursor,HG(-Hex",
			BlankMz:       false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the per-user configuration file location,
// $HOME/.gslgen.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gslgen.json"), nil
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
