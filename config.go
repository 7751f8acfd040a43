package sgmlcode

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vippsas/sgmlcode/parser"
)

// FileConfig is the yaml-tagged shape a ParserBuilder's defaults can be
// loaded from: a small struct decoded once at startup rather than
// threaded through as individual flags. Entity and parameter-entity
// lookups are not expressible in yaml and must still be set
// programmatically via parser.Builder after loading.
type FileConfig struct {
	TrimWhitespace               *bool  `yaml:"trim_whitespace"`
	NameNormalization            string `yaml:"name_normalization"` // "", "lower", "upper"
	MarkedSectionHandling        string `yaml:"marked_section_handling"` // "keep", "character_data", "expand_all"
	IgnoreMarkupDeclarations     bool   `yaml:"ignore_markup_declarations"`
	IgnoreProcessingInstructions bool   `yaml:"ignore_processing_instructions"`
	MaxNestingDepth              int    `yaml:"max_nesting_depth"`
}

// LoadConfig reads path as yaml and returns the parser.Config it
// describes, seeded from parser.DefaultConfig for any field left unset.
func LoadConfig(path string) (parser.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return parser.Config{}, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return parser.Config{}, err
	}

	cfg := parser.DefaultConfig()
	if fc.TrimWhitespace != nil {
		cfg.TrimWhitespace = *fc.TrimWhitespace
	}
	switch fc.NameNormalization {
	case "lower":
		cfg.NameNormalization = parser.ToLowercase
	case "upper":
		cfg.NameNormalization = parser.ToUppercase
	}
	switch fc.MarkedSectionHandling {
	case "keep":
		cfg.MarkedSectionHandling = parser.KeepUnmodified
	case "character_data":
		cfg.MarkedSectionHandling = parser.AcceptOnlyCharacterData
	case "expand_all":
		cfg.MarkedSectionHandling = parser.ExpandAll
	}
	cfg.IgnoreMarkupDeclarations = fc.IgnoreMarkupDeclarations
	cfg.IgnoreProcessingInstructions = fc.IgnoreProcessingInstructions
	if fc.MaxNestingDepth > 0 {
		cfg.MaxNestingDepth = fc.MaxNestingDepth
	}
	return cfg, nil
}
