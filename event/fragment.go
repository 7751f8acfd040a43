package event

import (
	"strings"

	digest "github.com/opencontainers/go-digest"
)

// Fragment is an ordered sequence of Events, the parser's output
// and the deserializer's input.
type Fragment struct {
	events []Event
}

// NewFragment wraps events as a Fragment, taking ownership of the slice.
func NewFragment(events []Event) *Fragment {
	return &Fragment{events: events}
}

// Len returns the number of events.
func (f *Fragment) Len() int {
	return len(f.events)
}

// Events returns the underlying event slice. Callers must not mutate it.
func (f *Fragment) Events() []Event {
	return f.events
}

// At returns the event at index i.
func (f *Fragment) At(i int) Event {
	return f.events[i]
}

// Detach returns a new Fragment whose events are all detached from any
// borrowed source string, safe to retain past the lifetime of the
// original input.
func (f *Fragment) Detach() *Fragment {
	out := make([]Event, len(f.events))
	for i, e := range f.events {
		out[i] = e.Detach()
	}
	return &Fragment{events: out}
}

// Digest returns a content digest of the fragment's serialized form,
// useful for caching parsed documents keyed by content.
func (f *Fragment) Digest() digest.Digest {
	return digest.FromString(f.Display())
}

// Display serializes the fragment back to SGML text. Re-parsing the
// result with default configuration yields an equal Fragment modulo
// whitespace trimming and exact attribute-quote style.
func (f *Fragment) Display() string {
	var out strings.Builder
	for _, e := range f.events {
		switch e.Kind {
		case MarkupDeclaration:
			out.WriteString("<!")
			out.WriteString(e.Name.AsString())
			if e.Value.Len() > 0 {
				out.WriteByte(' ')
				out.WriteString(e.Value.AsString())
			}
			out.WriteByte('>')
		case ProcessingInstruction:
			out.WriteString(e.Value.AsString())
		case MarkedSection:
			out.WriteString("<![")
			out.WriteString(e.Name.AsString())
			out.WriteByte('[')
			out.WriteString(e.Value.AsString())
			out.WriteString("]]>")
		case OpenStartTag:
			out.WriteByte('<')
			out.WriteString(e.Name.AsString())
		case Attribute:
			out.WriteByte(' ')
			out.WriteString(e.Name.AsString())
			if e.HasValue {
				out.WriteByte('=')
				quoted, quote := escapeAttributeValue(e.Value.AsString())
				out.WriteByte(quote)
				out.WriteString(quoted)
				out.WriteByte(quote)
			}
		case CloseStartTag:
			out.WriteByte('>')
		case XmlCloseEmptyElement:
			out.WriteString("/>")
		case EndTag:
			out.WriteString("</")
			out.WriteString(e.Name.AsString())
			out.WriteByte('>')
		case Character:
			out.WriteString(Escape(e.Value.AsString(), true))
		}
	}
	return out.String()
}
