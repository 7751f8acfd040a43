package token

import "fmt"

// ErrNestingTooDeep is returned by recognizers that bound recursion
// when a markup declaration subset or IGNORE marked section nests deeper
// than the configured limit.
type ErrNestingTooDeep struct {
	Construct string
	Limit     int
}

func (e ErrNestingTooDeep) Error() string {
	return fmt.Sprintf("%s nested more than %d levels deep", e.Construct, e.Limit)
}

// ScanMarkupDeclaration recognizes `<!` name body `>`, where body is
// composed of comments, single/double-quoted strings, and bracketed
// declaration subsets `[ ... ]` (which may recursively contain the same
// productions, including nested markup declarations). `>` inside a quoted
// string or a bracketed subset does not close the declaration. The
// returned body is trimmed of surrounding whitespace.
func (s *Scanner) ScanMarkupDeclaration(maxDepth int) (keyword, body string, ok bool, err error) {
	if !s.hasPrefix("<!") {
		return "", "", false, nil
	}
	start := s.save()
	s.advance(2)

	kw, ok := s.ScanName()
	if !ok {
		s.restore(start)
		return "", "", false, nil
	}

	bodyStart := s.pos
	if err := s.scanDeclarationBody(maxDepth, 0); err != nil {
		s.restore(start)
		return "", "", false, err
	}
	if !s.hasPrefix(">") {
		s.restore(start)
		return "", "", false, nil
	}
	rawBody := s.input[bodyStart:s.pos]
	s.advance(1)
	return kw, trimSGMLSpace(rawBody), true, nil
}

// scanDeclarationBody consumes declaration-body content up to (but not
// including) the closing '>' of the current nesting level, handling
// comments, quoted strings, and bracketed subsets (which may themselves
// contain nested markup declarations).
func (s *Scanner) scanDeclarationBody(maxDepth, depth int) error {
	if depth > maxDepth {
		return ErrNestingTooDeep{Construct: "markup declaration subset", Limit: maxDepth}
	}
	for {
		if s.AtEOF() {
			return nil // unterminated; caller will fail to find '>'
		}
		switch {
		case s.hasPrefix("--"):
			if _, ok := s.ScanComment(); !ok {
				return nil
			}
		case s.hasPrefix("'") || s.hasPrefix("\""):
			if !s.scanQuotedRegion() {
				return nil
			}
		case s.hasPrefix("["):
			s.advance(1)
			if err := s.scanDeclarationSubset(maxDepth, depth+1); err != nil {
				return err
			}
			if s.hasPrefix("]") {
				s.advance(1)
			}
		case s.hasPrefix(">"):
			return nil
		default:
			_, w := s.peekRune()
			if w == 0 {
				return nil
			}
			s.advance(w)
		}
	}
}

// scanDeclarationSubset consumes the contents of a bracketed `[ ... ]`
// subset, which may itself contain nested markup declarations, comments,
// and quoted strings, up to (not including) the closing `]`.
func (s *Scanner) scanDeclarationSubset(maxDepth, depth int) error {
	if depth > maxDepth {
		return ErrNestingTooDeep{Construct: "markup declaration subset", Limit: maxDepth}
	}
	for {
		if s.AtEOF() {
			return nil
		}
		switch {
		case s.hasPrefix("]"):
			return nil
		case s.hasPrefix("--"):
			if _, ok := s.ScanComment(); !ok {
				return nil
			}
		case s.hasPrefix("'") || s.hasPrefix("\""):
			if !s.scanQuotedRegion() {
				return nil
			}
		case s.hasPrefix("<!"):
			if _, _, ok, err := s.ScanMarkupDeclaration(maxDepth - depth); err != nil {
				return err
			} else if !ok {
				// not a full nested declaration; consume the '<' and
				// continue so we make forward progress.
				s.advance(1)
			}
		case s.hasPrefix("["):
			s.advance(1)
			if err := s.scanDeclarationSubset(maxDepth, depth+1); err != nil {
				return err
			}
			if s.hasPrefix("]") {
				s.advance(1)
			}
		default:
			_, w := s.peekRune()
			if w == 0 {
				return nil
			}
			s.advance(w)
		}
	}
}

// scanQuotedRegion skips a '...' or "..." region (no escapes: SGML
// quoted literals here run to the next matching quote).
func (s *Scanner) scanQuotedRegion() bool {
	r, w := s.peekRune()
	if w == 0 {
		return false
	}
	quote := r
	s.advance(w)
	for {
		if s.AtEOF() {
			return false
		}
		r, w := s.peekRune()
		s.advance(w)
		if r == quote {
			return true
		}
	}
}

func trimSGMLSpace(s string) string {
	start, end := 0, len(s)
	for start < end {
		r := rune(s[start])
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			start++
			continue
		}
		break
	}
	for end > start {
		r := rune(s[end-1])
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			end--
			continue
		}
		break
	}
	return s[start:end]
}
