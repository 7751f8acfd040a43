package deserialize

import (
	"strings"

	"github.com/vippsas/sgmlcode/event"
)

// VariantAccess lets a Visitor consume the payload of the enum variant
// it was just told about. A unit variant carries no payload;
// calling Newtype/Tuple/Struct on one is an error.
type VariantAccess struct {
	c        *Cursor
	unitOnly bool
}

func (va *VariantAccess) Unit() error { return nil }

func (va *VariantAccess) Newtype(v Visitor) error {
	if va.unitOnly {
		return Message{Text: "enum: unit variant has no payload"}
	}
	return va.c.DeserializeInline(v)
}

func (va *VariantAccess) Tuple() (*SeqAccess, error) {
	if va.unitOnly {
		return nil, Message{Text: "enum: unit variant has no payload"}
	}
	return &SeqAccess{c: va.c}, nil
}

func (va *VariantAccess) Struct() (*MapAccess, error) {
	if va.unitOnly {
		return nil, Message{Text: "enum: unit variant has no payload"}
	}
	return &MapAccess{c: va.c}, nil
}

// deserializeEnum handles the "not enum-within-element" case: the
// current element's own tag name names the variant, used for
// top-level values and sequence items.
func deserializeEnum(c *Cursor, v Visitor) error {
	e, ok := c.current()
	if !ok {
		return ErrUnexpectedEOF{}
	}
	if e.Kind != event.OpenStartTag {
		return ErrExpectedStartTag{}
	}
	variant := e.Name.AsString()
	if _, err := c.pushElt(); err != nil {
		return err
	}
	if err := c.advanceToContent(); err != nil {
		return err
	}
	va := &VariantAccess{c: c}
	if err := v.VisitEnum(variant, va); err != nil {
		return err
	}
	if err := c.skipToClose(); err != nil {
		return err
	}
	return c.closeCurrent()
}

// deserializeEnumWithinElement handles the enum-within-element cases:
// the cursor is on the OpenStartTag of the field wrapping the enum
// value. A child element names the variant directly; otherwise the
// element's trimmed text content names a unit variant.
func deserializeEnumWithinElement(c *Cursor, v Visitor) error {
	if _, err := c.pushElt(); err != nil {
		return err
	}
	if err := c.advanceToContent(); err != nil {
		return err
	}
	e, ok := c.current()
	if !ok {
		return ErrUnexpectedEOF{}
	}
	switch e.Kind {
	case event.OpenStartTag:
		variant := e.Name.AsString()
		if _, err := c.pushElt(); err != nil {
			return err
		}
		if err := c.advanceToContent(); err != nil {
			return err
		}
		va := &VariantAccess{c: c}
		if err := v.VisitEnum(variant, va); err != nil {
			return err
		}
		if err := c.skipToClose(); err != nil {
			return err
		}
		if err := c.closeCurrent(); err != nil {
			return err
		}
		return c.closeCurrent()
	case event.EndTag, event.XmlCloseEmptyElement:
		return Message{Text: "enum: element has no variant"}
	default:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		if err := c.closeCurrent(); err != nil {
			return err
		}
		variant := strings.TrimSpace(s.AsString())
		va := &VariantAccess{c: c, unitOnly: true}
		return v.VisitEnum(variant, va)
	}
}
