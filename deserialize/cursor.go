package deserialize

import (
	"strings"

	"github.com/vippsas/sgmlcode/event"
)

// Cursor is a pull-based position over a Fragment's event vector, plus
// the open-element path and sequence bookkeeping needed to drive
// structural recursion.
type Cursor struct {
	events []event.Event
	pos    int

	stack []string

	hasExpectedTag bool
	expectedTag    string

	accumulatedText *string
}

func newCursor(f *event.Fragment) *Cursor {
	return &Cursor{events: f.Events()}
}

func (c *Cursor) current() (event.Event, bool) {
	if c.pos >= len(c.events) {
		return event.Event{}, false
	}
	return c.events[c.pos], true
}

func (c *Cursor) advance() {
	c.pos++
}

// pushElt consumes the current OpenStartTag, pushing its name onto the
// element stack.
func (c *Cursor) pushElt() (string, error) {
	e, ok := c.current()
	if !ok {
		return "", ErrUnexpectedEOF{}
	}
	if e.Kind != event.OpenStartTag {
		return "", ErrExpectedStartTag{}
	}
	name := e.Name.AsString()
	if name == "" {
		return "", Unsupported{Event: e}
	}
	c.stack = append(c.stack, name)
	c.advance()
	return name, nil
}

// advanceToContent skips Attribute events and the terminating
// CloseStartTag, positioning the cursor at the element's body. If the
// element used the XmlCloseEmptyElement form, the cursor is left
// positioned on that terminator (empty content).
func (c *Cursor) advanceToContent() error {
	for {
		e, ok := c.current()
		if !ok {
			return ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.Attribute:
			c.advance()
		case event.CloseStartTag:
			c.advance()
			return nil
		default:
			return nil
		}
	}
}

// closeCurrent consumes the EndTag or XmlCloseEmptyElement that closes
// the innermost open element and pops the element stack.
func (c *Cursor) closeCurrent() error {
	e, ok := c.current()
	if !ok {
		return ErrUnexpectedEOF{}
	}
	expected := ""
	if len(c.stack) > 0 {
		expected = c.stack[len(c.stack)-1]
	}
	switch e.Kind {
	case event.EndTag:
		got := e.Name.AsString()
		if got == "" {
			return Unsupported{Event: e}
		}
		if expected != "" && got != expected {
			return MismatchedCloseTag{Expected: expected, Found: got}
		}
		c.advance()
	case event.XmlCloseEmptyElement:
		c.advance()
	default:
		return ErrExpectedStartTag{}
	}
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	return nil
}

// skipElement consumes one full element (OpenStartTag through its
// matching close), recursively skipping any children.
func (c *Cursor) skipElement() error {
	if _, err := c.pushElt(); err != nil {
		return err
	}
	if err := c.advanceToContent(); err != nil {
		return err
	}
	if err := c.skipToClose(); err != nil {
		return err
	}
	return c.closeCurrent()
}

// skipToClose advances past the remaining body of the current element
// (text and nested elements) until positioned on the closing event,
// without consuming it.
func (c *Cursor) skipToClose() error {
	for {
		e, ok := c.current()
		if !ok {
			return ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.EndTag, event.XmlCloseEmptyElement:
			return nil
		case event.OpenStartTag:
			if err := c.skipElement(); err != nil {
				return err
			}
		default:
			c.advance()
		}
	}
}

// consumeText returns the concatenation of all Character payloads
// contained in the current element, recursively including descendants'
// text. It leaves the element's own closing event unconsumed
// for the caller's closeCurrent, matching readAnyValue/skipToClose. If
// the cursor is on an Attribute, its value is returned instead and the
// attribute is consumed. An accumulated-text buffer, if present, takes
// precedence and is cleared.
func (c *Cursor) consumeText() (event.Str, error) {
	if c.accumulatedText != nil {
		s := *c.accumulatedText
		c.accumulatedText = nil
		return event.Owned(s), nil
	}

	if e, ok := c.current(); ok && e.Kind == event.Attribute {
		val := e.Value
		c.advance()
		return val, nil
	}

	if e, ok := c.current(); ok && e.Kind == event.Character {
		if next, ok := c.peekKind(c.pos + 1); ok && (next == event.EndTag || next == event.XmlCloseEmptyElement) {
			val := e.Value
			c.advance()
			return val, nil
		}
	}

	var b strings.Builder
	for {
		e, ok := c.current()
		if !ok {
			return event.Str{}, ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.Character:
			b.WriteString(e.Value.AsString())
			c.advance()
		case event.EndTag, event.XmlCloseEmptyElement:
			return event.Owned(b.String()), nil
		case event.OpenStartTag:
			if _, err := c.pushElt(); err != nil {
				return event.Str{}, err
			}
			if err := c.advanceToContent(); err != nil {
				return event.Str{}, err
			}
			inner, err := c.consumeText()
			if err != nil {
				return event.Str{}, err
			}
			b.WriteString(inner.AsString())
			if err := c.closeCurrent(); err != nil {
				return event.Str{}, err
			}
		default:
			c.advance()
		}
	}
}

func (c *Cursor) peekKind(i int) (event.Kind, bool) {
	if i < 0 || i >= len(c.events) {
		return 0, false
	}
	return c.events[i].Kind, true
}
