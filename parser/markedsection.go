package parser

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vippsas/sgmlcode/entity"
	"github.com/vippsas/sgmlcode/event"
	"github.com/vippsas/sgmlcode/token"
)

// tryMarkedSection recognizes `<![KEYWORDS[ body ]]>` and dispatches on
// the resolved status and the configured MarkedSectionHandling.
func (p *parser) tryMarkedSection() (bool, error) {
	if !strings.HasPrefix(p.s.Rest(), "<![") {
		return false, nil
	}
	start := p.s.Pos()

	rawKeywords, ok := p.s.ScanMarkedSectionStartAndKeywords()
	if !ok {
		return false, p.errorHere("malformed marked section start").withContext("marked section declaration")
	}

	keywords := rawKeywords
	if p.cfg.ParameterEntityFunc != nil {
		expanded, err := entity.ExpandParameter(rawKeywords, p.cfg.ParameterEntityFunc)
		if err != nil {
			return false, errors.Wrap(err, "marked section declaration")
		}
		keywords = expanded
	}

	status, multiple, ok := resolveKeywords(keywords)
	if !ok {
		return false, InvalidMarkedSectionKeyword{Pos: start, Keyword: keywords}
	}

	switch p.cfg.MarkedSectionHandling {
	case KeepUnmodified:
		return true, p.markedSectionKeepUnmodified(start, keywords, status)
	case AcceptOnlyCharacterData:
		if multiple || status == statusInclude {
			return false, InvalidMarkedSectionKeyword{Pos: start, Keyword: keywords}
		}
		if status == statusIgnore {
			return false, InvalidMarkedSectionKeyword{Pos: start, Keyword: keywords}
		}
		return true, p.markedSectionAsCharacterData(start, status)
	case ExpandAll:
		return true, p.markedSectionExpandAll(start, status)
	default:
		return false, nil
	}
}

func (p *parser) markedSectionKeepUnmodified(start token.Pos, keywords string, status sectionStatus) error {
	var body string
	var err error
	if status == statusIgnore {
		body, _, err = p.s.ScanMarkedSectionBodyIgnore(p.cfg.MaxNestingDepth)
		if err != nil {
			return errors.Wrap(err, "marked section declaration")
		}
	} else {
		body, _ = p.s.ScanMarkedSectionBodyCharacterData()
	}
	stop := p.s.Pos()
	p.events = append(p.events, event.Event{
		Kind:  event.MarkedSection,
		Start: start,
		Stop:  stop,
		Name:  event.Owned(keywords),
		Value: event.Owned(body),
	})
	return nil
}

// markedSectionAsCharacterData handles CDATA (verbatim, then trimmed) and
// RCDATA (entity-expanded) bodies, emitted as a single Character event,
// under both AcceptOnlyCharacterData and ExpandAll.
func (p *parser) markedSectionAsCharacterData(start token.Pos, status sectionStatus) error {
	body, _ := p.s.ScanMarkedSectionBodyCharacterData()
	stop := p.s.Pos()

	if p.cfg.TrimWhitespace {
		body = strings.TrimFunc(body, token.IsSGMLSpace)
	}
	if body == "" {
		return nil
	}

	text := body
	if status == statusRCData {
		expanded, err := p.expandEntities(body)
		if err != nil {
			return errors.Wrap(err, "marked section declaration")
		}
		text = expanded
	}

	p.events = append(p.events, event.Event{
		Kind:  event.Character,
		Start: start,
		Stop:  stop,
		Value: event.Owned(text),
	})
	return nil
}

func (p *parser) markedSectionExpandAll(start token.Pos, status sectionStatus) error {
	switch status {
	case statusIgnore:
		_, _, err := p.s.ScanMarkedSectionBodyIgnore(p.cfg.MaxNestingDepth)
		if err != nil {
			return errors.Wrap(err, "marked section declaration")
		}
		return nil
	case statusCData, statusRCData:
		return p.markedSectionAsCharacterData(start, status)
	default: // statusInclude
		return p.parseIncludeBody()
	}
}

// parseIncludeBody re-parses the body of an INCLUDE marked section as
// content, inlining its events into the stream, until the closing
// `]]>` (recognized via MarkedSectionEndHandling::StopParsing so that a
// stray `]]>` cannot be absorbed as text).
func (p *parser) parseIncludeBody() error {
	for {
		if p.s.AtEOF() {
			return p.errorHere("unterminated marked section").withContext("marked section declaration")
		}
		if p.s.SkipSGMLWhitespace() {
			continue
		}
		if p.s.ConsumeLiteral("]]>") {
			return nil
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
		if matched, err := p.tryText(token.StopParsing); err != nil {
			return err
		} else if matched {
			continue
		}
		return p.errorHere("unrecognized input").withContext("marked section declaration")
	}
}
