package deserialize

import (
	"strconv"
	"strings"

	"github.com/vippsas/sgmlcode/event"
)

func parseBoolString(s string) (bool, error) {
	switch {
	case s == "1" || strings.EqualFold(s, "true"):
		return true, nil
	case s == "0" || strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, InvalidBoolValue{Raw: s}
	}
}

// scalarDispatch consumes the current position's text (or attribute
// value) and delivers it to v according to its Hint. It assumes the
// cursor is already positioned at the value to read, i.e. inside the
// relevant element's content.
func scalarDispatch(c *Cursor, v Visitor) error {
	switch v.Hint() {
	case HintBool:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		b, err := parseBoolString(strings.TrimSpace(s.AsString()))
		if err != nil {
			return err
		}
		return v.VisitBool(b)
	case HintI64:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		raw := strings.TrimSpace(s.AsString())
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ParseIntError{Raw: raw}
		}
		return v.VisitI64(n)
	case HintU64:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		raw := strings.TrimSpace(s.AsString())
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return ParseIntError{Raw: raw}
		}
		return v.VisitU64(n)
	case HintF64:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		raw := strings.TrimSpace(s.AsString())
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ParseFloatError{Raw: raw}
		}
		return v.VisitF64(f)
	case HintString:
		s, err := c.consumeText()
		if err != nil {
			return err
		}
		return v.VisitString(s.AsString())
	case HintUnit:
		if _, err := c.consumeText(); err != nil {
			return err
		}
		return v.VisitUnit()
	case HintAny:
		val, err := c.readAnyValue()
		if err != nil {
			return err
		}
		return v.VisitAny(val)
	case HintIgnoredAny:
		if err := c.skipToClose(); err != nil {
			return err
		}
		return v.VisitIgnored()
	default:
		return Message{Text: "scalarDispatch: unsupported hint"}
	}
}

// deserializeAttributeValue delivers an Attribute's value to v. Bool
// gets the HTML-style bare-boolean treatment: an absent, empty,
// or name-echoing value is true.
func deserializeAttributeValue(c *Cursor, v Visitor) error {
	e, ok := c.current()
	if !ok || e.Kind != event.Attribute {
		return Unsupported{Event: e}
	}

	if v.Hint() == HintBool {
		name := e.Name.AsString()
		val := e.Value.AsString()
		c.advance()
		if !e.HasValue || val == "" || strings.EqualFold(val, name) {
			return v.VisitBool(true)
		}
		b, err := parseBoolString(val)
		if err != nil {
			return err
		}
		return v.VisitBool(b)
	}

	return scalarDispatch(c, v)
}

// readAnyValue decodes the current element's body generically: a
// text-only element decodes to its string content; an element with any
// child elements decodes to a map keyed by child tag name (last
// occurrence wins, matching the struct $value-less map semantics).
func (c *Cursor) readAnyValue() (any, error) {
	hasElements := false
	fields := map[string]any{}
	var text strings.Builder

	for {
		e, ok := c.current()
		if !ok {
			return nil, ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.EndTag, event.XmlCloseEmptyElement:
			if hasElements {
				return fields, nil
			}
			return text.String(), nil
		case event.Character:
			text.WriteString(e.Value.AsString())
			c.advance()
		case event.OpenStartTag:
			hasElements = true
			name := e.Name.AsString()
			if _, err := c.pushElt(); err != nil {
				return nil, err
			}
			if err := c.advanceToContent(); err != nil {
				return nil, err
			}
			val, err := c.readAnyValue()
			if err != nil {
				return nil, err
			}
			if err := c.closeCurrent(); err != nil {
				return nil, err
			}
			fields[name] = val
		default:
			c.advance()
		}
	}
}
