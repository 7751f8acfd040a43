// Package parser implements the event parser: prolog/content/
// epilogue recursive descent over a token.Scanner, producing an
// event.Fragment under a configurable set of policies.
package parser

import "github.com/vippsas/sgmlcode/entity"

// NameNormalization controls ASCII-only case folding applied to tag and
// attribute names before emission.
type NameNormalization int

const (
	Unchanged NameNormalization = iota
	ToLowercase
	ToUppercase
)

// MarkedSectionHandling controls how `<![KEYWORDS[ ... ]]>` sections are
// parsed and emitted.
type MarkedSectionHandling int

const (
	// KeepUnmodified emits a single MarkedSection event carrying the raw
	// (unexpanded, unparsed) body, for every status.
	KeepUnmodified MarkedSectionHandling = iota
	// AcceptOnlyCharacterData accepts only CDATA and RCDATA (bare
	// keyword, no combination); INCLUDE and IGNORE are rejected.
	AcceptOnlyCharacterData
	// ExpandAll re-parses INCLUDE bodies as content, expands RCDATA
	// entities, and drops IGNORE sections entirely.
	ExpandAll
)

// Config is the immutable configuration produced by a Builder and
// consumed by Parse.
type Config struct {
	TrimWhitespace               bool
	NameNormalization            NameNormalization
	MarkedSectionHandling        MarkedSectionHandling
	IgnoreMarkupDeclarations     bool
	IgnoreProcessingInstructions bool
	EntityFunc                   entity.LookupFunc
	ParameterEntityFunc          entity.LookupFunc
	MaxNestingDepth              int
}

// DefaultConfig returns the configuration used by the package-level
// Parse function: whitespace trimming on, no name normalization,
// AcceptOnlyCharacterData marked-section handling, declarations and PIs
// emitted, no entity lookups configured, depth limit 64.
func DefaultConfig() Config {
	return Config{
		TrimWhitespace:        true,
		NameNormalization:     Unchanged,
		MarkedSectionHandling: AcceptOnlyCharacterData,
		MaxNestingDepth:       64,
	}
}
