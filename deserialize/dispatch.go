package deserialize

import "github.com/vippsas/sgmlcode/event"

// FromFragment deserializes f into whatever v's Hint reports, driving
// a pull-based cursor over the fragment's events. The fragment's single
// root element is the value itself: for a sequence/tuple hint that root
// element is the container, and its children are the items.
//
// MarkedSection and ProcessingInstruction events anywhere in f are
// rejected as Unsupported before deserialization starts; configure the
// parser to expand or reject marked sections as character data before
// deserializing.
func FromFragment(f *event.Fragment, v Visitor) error {
	for _, e := range f.Events() {
		if e.Kind == event.MarkedSection || e.Kind == event.ProcessingInstruction {
			return Unsupported{Event: e}
		}
	}
	return DeserializeElement(newCursor(f), v)
}

// DeserializeElement assumes the cursor is positioned at an
// OpenStartTag and dispatches on v's Hint, pushing/popping the element
// as needed.
func DeserializeElement(c *Cursor, v Visitor) error {
	switch v.Hint() {
	case HintStruct, HintMap:
		return deserializeMapOrStruct(c, v)
	case HintEnum:
		return deserializeEnum(c, v)
	case HintSequence, HintTuple:
		if _, err := c.pushElt(); err != nil {
			return err
		}
		if err := c.advanceToContent(); err != nil {
			return err
		}
		if err := deserializeSeq(c, v); err != nil {
			return err
		}
		return c.closeCurrent()
	case HintOption:
		return v.VisitSome(c)
	case HintNewtype:
		if _, err := c.pushElt(); err != nil {
			return err
		}
		if err := c.advanceToContent(); err != nil {
			return err
		}
		if err := v.VisitNewtype(c); err != nil {
			return err
		}
		return c.closeCurrent()
	default:
		return deserializeScalarElement(c, v)
	}
}

// DeserializeInline dispatches a value that shares its wrapping
// element's content with its caller (used for a newtype's single inner
// field and a variant's newtype payload) rather than owning its own
// element; only scalar-ish hints are valid here.
func (c *Cursor) DeserializeInline(v Visitor) error {
	switch v.Hint() {
	case HintStruct, HintMap, HintEnum, HintSequence, HintTuple, HintOption, HintNewtype:
		return Message{Text: "DeserializeInline: hint requires its own wrapping element"}
	default:
		return scalarDispatch(c, v)
	}
}

func deserializeScalarElement(c *Cursor, v Visitor) error {
	if _, err := c.pushElt(); err != nil {
		return err
	}
	if err := c.advanceToContent(); err != nil {
		return err
	}
	if err := scalarDispatch(c, v); err != nil {
		return err
	}
	return c.closeCurrent()
}
