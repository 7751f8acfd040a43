package token

// ScanComment recognizes a single `-- ... --` comment body (the `--`
// delimiters are consumed but not included in the returned text). The
// Scanner must be positioned exactly on the first `-`.
func (s *Scanner) ScanComment() (string, bool) {
	if !s.hasPrefix("--") {
		return "", false
	}
	s.advance(2)
	idx := indexOf(s.input[s.pos:], "--")
	if idx < 0 {
		// Unterminated comment; consume to EOF, caller treats as error.
		text := s.input[s.pos:]
		s.advance(len(text))
		return text, false
	}
	text := s.input[s.pos : s.pos+idx]
	s.advance(idx + 2)
	return text, true
}

// ScanCommentDeclaration recognizes `<!` followed by one or more `--...--`
// bodies separated by whitespace, then `>`; or the bare `<!>`. Returns the
// comment bodies, one per `--...--` pair (not including `--`/whitespace;
// nil for `<!>`), and true on success, without advancing on failure.
func (s *Scanner) ScanCommentDeclaration() ([]string, bool) {
	if !s.hasPrefix("<!") {
		return nil, false
	}
	start := s.save()
	s.advance(2)

	s.SkipSGMLWhitespace()
	if s.hasPrefix(">") {
		s.advance(1)
		return nil, true
	}

	var bodies []string
	for {
		body, ok := s.ScanComment()
		if !ok {
			s.restore(start)
			return nil, false
		}
		bodies = append(bodies, body)
		s.SkipSGMLWhitespace()
		if s.hasPrefix(">") {
			s.advance(1)
			return bodies, true
		}
		if !s.hasPrefix("--") {
			s.restore(start)
			return nil, false
		}
	}
}

func (s *Scanner) restore(m mark) {
	s.pos, s.line, s.lineStart = m.offset, m.line, m.lineStart
}

func indexOf(haystack, needle string) int {
	// small local helper to avoid importing strings everywhere comments
	// are scanned; kept trivial on purpose.
	n := len(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(haystack); i++ {
		if haystack[i:i+n] == needle {
			return i
		}
	}
	return -1
}
