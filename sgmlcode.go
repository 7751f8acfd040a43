// Package sgmlcode is the library facade: the small top-level surface a
// caller imports to get the default-configured entry points, a thin,
// opinionated front door over the focused sub-packages rather than
// exposing every one of them directly.
package sgmlcode

import (
	"github.com/vippsas/sgmlcode/event"
	"github.com/vippsas/sgmlcode/parser"
)

// Parse parses text under default configuration: whitespace trimming on,
// no name normalization, marked sections accepted only as character data,
// declarations and processing instructions emitted, no entity lookups
// configured.
func Parse(text string) (*event.Fragment, error) {
	return parser.Parse(text)
}

// Escape escapes '<' and '>' (always) and '&' (when escapeAmp is true) as
// numeric character references, for safe emission of text a caller is
// assembling by hand rather than through Fragment.Display.
func Escape(text string, escapeAmp bool) string {
	return event.Escape(text, escapeAmp)
}
