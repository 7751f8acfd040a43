package parser

import "github.com/vippsas/sgmlcode/event"

// Builder fluently constructs a Config, mirroring the cfg-struct-builder
// convention used throughout this module's configuration surfaces.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder seeded with DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

func (b *Builder) TrimWhitespace(v bool) *Builder {
	b.cfg.TrimWhitespace = v
	return b
}

func (b *Builder) NameNormalization(v NameNormalization) *Builder {
	b.cfg.NameNormalization = v
	return b
}

func (b *Builder) MarkedSectionHandling(v MarkedSectionHandling) *Builder {
	b.cfg.MarkedSectionHandling = v
	return b
}

func (b *Builder) IgnoreMarkupDeclarations(v bool) *Builder {
	b.cfg.IgnoreMarkupDeclarations = v
	return b
}

func (b *Builder) IgnoreProcessingInstructions(v bool) *Builder {
	b.cfg.IgnoreProcessingInstructions = v
	return b
}

func (b *Builder) EntityFunc(fn func(string) (string, bool)) *Builder {
	b.cfg.EntityFunc = fn
	return b
}

func (b *Builder) ParameterEntityFunc(fn func(string) (string, bool)) *Builder {
	b.cfg.ParameterEntityFunc = fn
	return b
}

func (b *Builder) MaxNestingDepth(v int) *Builder {
	b.cfg.MaxNestingDepth = v
	return b
}

// Build returns the assembled Config.
func (b *Builder) Build() Config {
	return b.cfg
}

// Parse builds the Config and parses text with it.
func (b *Builder) Parse(text string) (*event.Fragment, error) {
	return ParseWithConfig(text, b.Build())
}
