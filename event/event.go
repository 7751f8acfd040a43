package event

import "github.com/vippsas/sgmlcode/token"

// Kind identifies which of the nine event variants an Event holds.
type Kind int

const (
	MarkupDeclaration Kind = iota
	ProcessingInstruction
	MarkedSection
	OpenStartTag
	Attribute
	CloseStartTag
	XmlCloseEmptyElement
	EndTag
	Character
)

func (k Kind) String() string {
	switch k {
	case MarkupDeclaration:
		return "MarkupDeclaration"
	case ProcessingInstruction:
		return "ProcessingInstruction"
	case MarkedSection:
		return "MarkedSection"
	case OpenStartTag:
		return "OpenStartTag"
	case Attribute:
		return "Attribute"
	case CloseStartTag:
		return "CloseStartTag"
	case XmlCloseEmptyElement:
		return "XmlCloseEmptyElement"
	case EndTag:
		return "EndTag"
	case Character:
		return "Character"
	default:
		return "Unknown"
	}
}

// Event is one entry in a Fragment's flat stream. Which fields are
// meaningful depends on Kind:
//
//   - MarkupDeclaration: Name is the keyword (e.g. "DOCTYPE"), Value is the body.
//   - ProcessingInstruction: Value is the raw text including delimiters.
//   - MarkedSection: Name is the status-keywords string, Value is the section body.
//   - OpenStartTag, EndTag: Name is the element name (may be empty).
//   - Attribute: Name is the attribute name, Value/HasValue carry the optional value.
//   - CloseStartTag, XmlCloseEmptyElement: no payload.
//   - Character: Value is the text.
type Event struct {
	Kind     Kind
	Start    token.Pos
	Stop     token.Pos
	Name     Str
	Value    Str
	HasValue bool
}

// Detach returns a copy of e with Name and Value detached from any
// borrowed source.
func (e Event) Detach() Event {
	e.Name = e.Name.Detach()
	e.Value = e.Value.Detach()
	return e
}
