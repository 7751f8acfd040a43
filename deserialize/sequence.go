package deserialize

import (
	"strings"

	"github.com/vippsas/sgmlcode/event"
)

// SeqAccess drives repeated-element sequence/tuple decoding:
// each iteration is one child element of the enclosing container,
// blank Character events between elements are skipped, and the
// sequence ends at the enclosing element's closing event or at the
// first child whose tag differs from the first item's tag.
type SeqAccess struct {
	c          *Cursor
	itemTag    string
	hasItemTag bool
}

func deserializeSeq(c *Cursor, v Visitor) error {
	sa := &SeqAccess{c: c}
	return v.VisitSeq(sa)
}

func isBlankText(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Next reports whether another sequence item follows and, if so,
// decodes it into v before returning. Once it returns false the
// sequence is exhausted and the event that ended it (the enclosing
// element's closing event, or a differently named child's start tag)
// is left unconsumed for the caller.
func (sa *SeqAccess) Next(v Visitor) (bool, error) {
	c := sa.c
	for {
		e, ok := c.current()
		if !ok {
			return false, ErrUnexpectedEOF{}
		}
		switch e.Kind {
		case event.Character:
			if isBlankText(e.Value.AsString()) {
				c.advance()
				continue
			}
			return false, Unsupported{Event: e}
		case event.EndTag, event.XmlCloseEmptyElement:
			return false, nil
		case event.OpenStartTag:
			name := e.Name.AsString()
			if sa.hasItemTag && name != sa.itemTag {
				return false, nil
			}
			sa.itemTag = name
			sa.hasItemTag = true
			if v.Hint() == HintEnum {
				if err := deserializeEnum(c, v); err != nil {
					return false, err
				}
			} else if err := DeserializeElement(c, v); err != nil {
				return false, err
			}
			return true, nil
		default:
			c.advance()
		}
	}
}
