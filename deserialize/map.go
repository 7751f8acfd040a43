package deserialize

import (
	"github.com/vippsas/sgmlcode/event"
)

type mapPending int

const (
	pendingNone mapPending = iota
	pendingAttr
	pendingElement
	pendingText
)

// MapAccess drives struct/map decoding: attributes surface as
// keys first, then child elements, with a text-only run buffered and
// emitted under ValueField only if no child element ever appears.
type MapAccess struct {
	c       *Cursor
	fields  []string
	pending mapPending
	name    string

	sawElement bool
	textBuf    *string
}

func deserializeMapOrStruct(c *Cursor, v Visitor) error {
	if _, err := c.pushElt(); err != nil {
		return err
	}
	ma := &MapAccess{c: c, fields: v.Fields()}
	if err := v.VisitMap(ma); err != nil {
		return err
	}
	if err := ma.drain(); err != nil {
		return err
	}
	return c.closeCurrent()
}

// NextKey advances to the next field and reports its name, or reports
// false once the element's attributes, children, and any trailing
// buffered text have all been offered.
func (ma *MapAccess) NextKey() (string, bool, error) {
	c := ma.c
	for {
		e, ok := c.current()
		if !ok {
			return "", false, ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.Attribute:
			ma.pending = pendingAttr
			ma.name = e.Name.AsString()
			return ma.name, true, nil
		case event.CloseStartTag:
			c.advance()
		case event.Character:
			if ma.sawElement {
				c.advance()
				continue
			}
			s := e.Value.AsString()
			if ma.textBuf == nil {
				empty := ""
				ma.textBuf = &empty
			}
			*ma.textBuf += s
			c.advance()
		case event.OpenStartTag:
			ma.sawElement = true
			ma.textBuf = nil
			ma.pending = pendingElement
			if ma.hasValueField() {
				ma.name = ValueField
			} else {
				ma.name = e.Name.AsString()
			}
			return ma.name, true, nil
		case event.EndTag, event.XmlCloseEmptyElement:
			if !ma.sawElement && ma.textBuf != nil {
				ma.pending = pendingText
				ma.name = ValueField
				return ValueField, true, nil
			}
			return "", false, nil
		default:
			c.advance()
		}
	}
}

// hasValueField reports whether the visitor's struct declared a field
// named ValueField ("$value"), which switches child elements from being
// reported under their own tag name to being reported under the
// ValueField sentinel (SPEC_FULL.md §4.5.3).
func (ma *MapAccess) hasValueField() bool {
	for _, f := range ma.fields {
		if f == ValueField {
			return true
		}
	}
	return false
}

// Value decodes the value for the key most recently returned by
// NextKey.
func (ma *MapAccess) Value(v Visitor) error {
	switch ma.pending {
	case pendingAttr:
		return deserializeAttributeValue(ma.c, v)
	case pendingElement:
		if v.Hint() == HintEnum {
			return deserializeEnumWithinElement(ma.c, v)
		}
		return DeserializeElement(ma.c, v)
	case pendingText:
		ma.c.accumulatedText = ma.textBuf
		ma.textBuf = nil
		return scalarDispatch(ma.c, v)
	default:
		return Message{Text: "MapAccess.Value called without a pending key"}
	}
}

func (ma *MapAccess) skip() error {
	switch ma.pending {
	case pendingAttr:
		ma.c.advance()
	case pendingElement:
		return ma.c.skipElement()
	case pendingText:
		ma.textBuf = nil
	}
	ma.pending = pendingNone
	return nil
}

// drain discards any fields the visitor didn't consume, leaving the
// cursor positioned on the element's closing event.
func (ma *MapAccess) drain() error {
	for {
		_, more, err := ma.NextKey()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := ma.skip(); err != nil {
			return err
		}
	}
}
