package parser

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vippsas/sgmlcode/entity"
	"github.com/vippsas/sgmlcode/event"
	"github.com/vippsas/sgmlcode/token"
)

// parser drives a token.Scanner through the prolog/content/epilogue
// recursive descent, accumulating events. Errors are propagated
// with context labels attached as the recursion unwinds, the way
// sqlparser's Batch.Parse accumulates context around its token-handler
// dispatch.
type parser struct {
	s        *token.Scanner
	cfg      Config
	inputPtr *string
	events   []event.Event
}

// Parse parses text with the default configuration.
func Parse(text string) (*event.Fragment, error) {
	return ParseWithConfig(text, DefaultConfig())
}

// ParseWithConfig parses text under an explicit Config.
func ParseWithConfig(text string, cfg Config) (*event.Fragment, error) {
	p := &parser{
		s:        token.NewScanner("input", text),
		cfg:      cfg,
		inputPtr: &text,
	}
	if err := p.parseStream(); err != nil {
		return nil, err
	}
	return event.NewFragment(p.events), nil
}

func (p *parser) errorHere(msg string) *Error {
	return &Error{Pos: p.s.Pos(), Message: msg}
}

func (p *parser) borrow(offset, length int) event.Str {
	return event.Borrowed(p.inputPtr, offset, length)
}

// applyNameNorm returns a zero-copy Str when no normalization is
// configured (offset must be the raw name's byte offset into the
// source), or an owned, case-folded Str otherwise.
func (p *parser) applyNameNorm(raw string, offset int) event.Str {
	switch p.cfg.NameNormalization {
	case ToLowercase:
		return event.Owned(strings.ToLower(raw))
	case ToUppercase:
		return event.Owned(strings.ToUpper(raw))
	default:
		return p.borrow(offset, len(raw))
	}
}

// normalizeName applies the configured name normalization without any
// zero-copy borrowing, for call sites that do not track the name's
// source offset (end-tag and attribute names, consumed mid-recognizer).
func (p *parser) normalizeName(raw string) event.Str {
	switch p.cfg.NameNormalization {
	case ToLowercase:
		return event.Owned(strings.ToLower(raw))
	case ToUppercase:
		return event.Owned(strings.ToUpper(raw))
	default:
		return event.Owned(raw)
	}
}

// parseStream is the document-level loop: prolog constructs, content
// items, and epilogue constructs are all syntactically distinguishable
// by their leading marker, so one dispatch loop handles all three
// regions; the grammar itself defines what is legal where.
func (p *parser) parseStream() error {
	for !p.s.AtEOF() {
		if p.s.SkipSGMLWhitespace() {
			continue
		}

		if _, ok := p.s.ScanCommentDeclaration(); ok {
			continue
		}

		if matched, err := p.tryMarkupDeclaration(); err != nil {
			return err
		} else if matched {
			continue
		}

		if matched, err := p.tryMarkedSection(); err != nil {
			return err
		} else if matched {
			continue
		}

		if matched, err := p.tryProcessingInstruction(); err != nil {
			return err
		} else if matched {
			continue
		}

		if matched, err := p.tryEndTag(); err != nil {
			return err
		} else if matched {
			continue
		}

		if matched, err := p.tryStartTag(); err != nil {
			return err
		} else if matched {
			continue
		}

		if matched, err := p.tryText(token.TreatAsText); err != nil {
			return err
		} else if matched {
			continue
		}

		return p.errorHere("unrecognized input").withContext("document content")
	}
	return nil
}

func (p *parser) tryMarkupDeclaration() (bool, error) {
	rest := p.s.Rest()
	if !strings.HasPrefix(rest, "<!") {
		return false, nil
	}
	if len(rest) >= 3 && rest[2] == '[' {
		// A marked section opener, handled by tryMarkedSection instead.
		return false, nil
	}

	start := p.s.Pos()
	kw, body, ok, err := p.s.ScanMarkupDeclaration(p.cfg.MaxNestingDepth)
	if err != nil {
		return false, p.wrapScanErr(err, start, "markup declaration")
	}
	if !ok {
		return false, nil
	}
	stop := p.s.Pos()

	if p.cfg.ParameterEntityFunc != nil {
		expanded, err := entity.ExpandParameter(body, p.cfg.ParameterEntityFunc)
		if err != nil {
			return false, errors.Wrap(err, "markup declaration")
		}
		body = expanded
	}

	if p.cfg.IgnoreMarkupDeclarations {
		return true, nil
	}
	p.events = append(p.events, event.Event{
		Kind:  event.MarkupDeclaration,
		Start: start,
		Stop:  stop,
		Name:  event.Owned(kw),
		Value: event.Owned(body),
	})
	return true, nil
}

func (p *parser) tryProcessingInstruction() (bool, error) {
	start := p.s.Pos()
	raw, ok := p.s.ScanProcessingInstruction()
	if !ok {
		return false, nil
	}
	stop := p.s.Pos()
	if p.cfg.IgnoreProcessingInstructions {
		return true, nil
	}
	p.events = append(p.events, event.Event{
		Kind:  event.ProcessingInstruction,
		Start: start,
		Stop:  stop,
		Value: event.Owned(raw),
	})
	return true, nil
}

func (p *parser) tryEndTag() (bool, error) {
	start := p.s.Pos()
	name, ok := p.s.ScanEndTag()
	if !ok {
		return false, nil
	}
	stop := p.s.Pos()
	p.events = append(p.events, event.Event{
		Kind:  event.EndTag,
		Start: start,
		Stop:  stop,
		Name:  p.normalizeName(name),
	})
	return true, nil
}

func (p *parser) tryStartTag() (bool, error) {
	start := p.s.Pos()
	if p.s.ScanEmptyStartTag() {
		p.events = append(p.events, event.Event{Kind: event.OpenStartTag, Start: start, Stop: p.s.Pos()})
		p.events = append(p.events, event.Event{Kind: event.CloseStartTag, Start: p.s.Pos(), Stop: p.s.Pos()})
		return true, nil
	}

	nameOffset := p.s.Offset() + 1 // skip '<'
	name, ok := p.s.ScanOpenStartTag()
	if !ok {
		return false, nil
	}
	p.events = append(p.events, event.Event{
		Kind:  event.OpenStartTag,
		Start: start,
		Stop:  p.s.Pos(),
		Name:  p.applyNameNorm(name, nameOffset),
	})

	for {
		p.s.SkipSGMLWhitespace()
		if p.s.ScanCloseStartTag() {
			p.events = append(p.events, event.Event{Kind: event.CloseStartTag, Start: p.s.Pos(), Stop: p.s.Pos()})
			return true, nil
		}
		if p.s.ScanXMLCloseEmptyElement() {
			p.events = append(p.events, event.Event{Kind: event.XmlCloseEmptyElement, Start: p.s.Pos(), Stop: p.s.Pos()})
			return true, nil
		}

		attrStart := p.s.Pos()
		attrName, attrValue, form, ok := p.s.ScanAttribute()
		if !ok {
			return false, p.errorHere("expected attribute or '>'").withContext("start tag")
		}

		evt := event.Event{
			Kind:  event.Attribute,
			Start: attrStart,
			Stop:  p.s.Pos(),
			Name:  p.normalizeName(attrName),
		}
		if form != token.ValueAbsent {
			evt.HasValue = true
			if form == token.ValueUnquoted {
				evt.Value = event.Owned(attrValue)
			} else {
				expanded, err := p.expandEntities(attrValue)
				if err != nil {
					return false, errors.Wrap(err, "attribute value")
				}
				evt.Value = event.Owned(expanded)
			}
		}
		p.events = append(p.events, evt)
	}
}

func (p *parser) tryText(endHandling token.MarkedSectionEndHandling) (bool, error) {
	start := p.s.Pos()
	offset := p.s.Offset()
	rawText, ok := p.s.ScanText(endHandling)
	if !ok {
		return false, nil
	}
	stop := p.s.Pos()

	text := rawText
	trimmedLeft := 0
	if p.cfg.TrimWhitespace {
		untrimmedLen := len(text)
		text = strings.TrimLeftFunc(text, token.IsSGMLSpace)
		trimmedLeft = untrimmedLen - len(text)
		text = strings.TrimRightFunc(text, token.IsSGMLSpace)
	}
	if text == "" {
		return true, nil
	}

	expanded, err := p.expandEntities(text)
	if err != nil {
		return false, errors.Wrap(err, "character data")
	}

	var value event.Str
	if expanded == text {
		value = p.borrow(offset+trimmedLeft, len(text))
	} else {
		value = event.Owned(expanded)
	}

	p.events = append(p.events, event.Event{
		Kind:  event.Character,
		Start: start,
		Stop:  stop,
		Value: value,
	})
	return true, nil
}

func (p *parser) expandEntities(text string) (string, error) {
	if p.cfg.EntityFunc == nil {
		return text, nil
	}
	return entity.ExpandGeneral(text, p.cfg.EntityFunc)
}

func (p *parser) wrapScanErr(err error, pos token.Pos, context string) error {
	return errors.Wrap(err, context)
}
