package token

// ScanMarkedSectionStartAndKeywords recognizes `<![` then a run of
// characters excluding `[]<>!`, trimmed, then `[`. Returns the
// (untrimmed-of-entities, but whitespace-trimmed) status-keyword string,
// which may still contain unexpanded parameter-entity references.
func (s *Scanner) ScanMarkedSectionStartAndKeywords() (string, bool) {
	if !s.hasPrefix("<![") {
		return "", false
	}
	start := s.save()
	s.advance(3)

	kwStart := s.pos
	for {
		if s.AtEOF() {
			s.restore(start)
			return "", false
		}
		r, w := s.peekRune()
		switch r {
		case '[', ']', '<', '>', '!':
			goto done
		default:
			s.advance(w)
		}
	}
done:
	keywords := trimSGMLSpace(s.input[kwStart:s.pos])
	if !s.hasPrefix("[") {
		s.restore(start)
		return "", false
	}
	s.advance(1)
	return keywords, true
}

// ScanMarkedSectionBodyCharacterData recognizes text up to the first
// `]]>` (non-nesting). Returns the body (not including `]]>`) and whether
// a terminator was found; on EOF without finding one the whole remainder
// is consumed and terminated is false.
func (s *Scanner) ScanMarkedSectionBodyCharacterData() (body string, terminated bool) {
	idx := indexOf(s.input[s.pos:], "]]>")
	if idx < 0 {
		body = s.input[s.pos:]
		s.advance(len(body))
		return body, false
	}
	body = s.input[s.pos : s.pos+idx]
	s.advance(idx + 3)
	return body, true
}

// ScanMarkedSectionBodyIgnore recognizes text up to a `]]>` with nesting:
// occurrences of `<![` inside must be matched by corresponding `]]>`
// before the section-closing one. Net depth of `<![`/`]]>` pairs starts
// at 0 and the body terminates when depth would return to -1.
func (s *Scanner) ScanMarkedSectionBodyIgnore(maxDepth int) (body string, terminated bool, err error) {
	bodyStart := s.pos
	depth := 0
	for {
		if s.AtEOF() {
			return s.input[bodyStart:s.pos], false, nil
		}
		switch {
		case s.hasPrefix("]]>"):
			if depth == 0 {
				body = s.input[bodyStart:s.pos]
				s.advance(3)
				return body, true, nil
			}
			depth--
			s.advance(3)
		case s.hasPrefix("<!["):
			depth++
			if depth > maxDepth {
				return "", false, ErrNestingTooDeep{Construct: "marked section IGNORE body", Limit: maxDepth}
			}
			s.advance(3)
		default:
			_, w := s.peekRune()
			if w == 0 {
				return s.input[bodyStart:s.pos], false, nil
			}
			s.advance(w)
		}
	}
}
