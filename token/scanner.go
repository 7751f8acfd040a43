package token

import (
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Scanner is a cursor over an input string. Unlike a conventional
// tokenizer that produces one flat stream of tokens independent of
// context, recognition here is context-driven: the parser calls the
// recognizer that matches what it expects to see next (content item,
// attribute, marked section body, ...), the way sqlparser's recursive
// descent parser drives its Scanner directly rather than through an
// intermediate token stream.
type Scanner struct {
	input string
	file  FileRef

	pos int // current byte offset into input

	line        int // 0-based line of pos
	lineStart   int // byte offset where the current line began
}

// NewScanner creates a Scanner positioned at the start of input.
func NewScanner(file FileRef, input string) *Scanner {
	return &Scanner{input: input, file: file}
}

// Input returns the full source string the Scanner was constructed with.
func (s *Scanner) Input() string { return s.input }

// Offset returns the current byte offset.
func (s *Scanner) Offset() int { return s.pos }

// AtEOF reports whether the Scanner has consumed the whole input.
func (s *Scanner) AtEOF() bool { return s.pos >= len(s.input) }

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() string { return s.input[s.pos:] }

// Pos returns the current position in line/column form.
func (s *Scanner) Pos() Pos {
	return Pos{File: s.file, Line: s.line + 1, Col: s.pos - s.lineStart + 1}
}

// PosAt returns the line/column of byte offset, given the 0-based line
// it lies on and the byte offset where that line began; used to report
// the start of a token after it has already been consumed.
func (s *Scanner) PosAt(offset int, line int, lineStart int) Pos {
	return Pos{File: s.file, Line: line + 1, Col: offset - lineStart + 1}
}

// mark captures enough state to compute the Pos of the current offset
// after further scanning has moved line/lineStart forward.
type mark struct {
	offset, line, lineStart int
}

func (s *Scanner) save() mark {
	return mark{s.pos, s.line, s.lineStart}
}

func (s *Scanner) posOf(m mark) Pos {
	return Pos{File: s.file, Line: m.line + 1, Col: m.offset - m.lineStart + 1}
}

// advance moves pos forward by n bytes, updating line/lineStart for any
// newlines in between.
func (s *Scanner) advance(n int) {
	seg := s.input[s.pos : s.pos+n]
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\n' {
			s.line++
			s.lineStart = s.pos + i + 1
		}
	}
	s.pos += n
}

func (s *Scanner) peekRune() (rune, int) {
	if s.pos >= len(s.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.input[s.pos:])
}

func (s *Scanner) peekRuneAt(offset int) (rune, int) {
	if offset >= len(s.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.input[offset:])
}

// hasPrefix reports whether the remaining input starts with lit.
func (s *Scanner) hasPrefix(lit string) bool {
	return len(s.input)-s.pos >= len(lit) && s.input[s.pos:s.pos+len(lit)] == lit
}

// ConsumeLiteral advances past lit if the remaining input starts with it.
func (s *Scanner) ConsumeLiteral(lit string) bool {
	if s.hasPrefix(lit) {
		s.advance(len(lit))
		return true
	}
	return false
}

// IsNameStart reports whether r can begin an SGML name: any Unicode
// alphabetic character, classified with the same xid tables the T-SQL
// scanner this package was adapted from uses for identifier starts.
func IsNameStart(r rune) bool {
	return xid.Start(r)
}

// IsNameChar reports whether r can continue an SGML name: alphanumeric,
// or one of . - _ :
func IsNameChar(r rune) bool {
	if xid.Continue(r) {
		return true
	}
	switch r {
	case '.', '-', '_', ':':
		return true
	}
	return false
}

// IsSGMLSpace reports whether r is SGML whitespace: space, tab, CR, LF.
func IsSGMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// ScanName recognizes name_start name*. Returns ok=false and does not
// advance if the Scanner is not positioned on a name.
func (s *Scanner) ScanName() (string, bool) {
	r, w := s.peekRune()
	if w == 0 || !IsNameStart(r) {
		return "", false
	}
	start := s.pos
	s.advance(w)
	for {
		r, w := s.peekRune()
		if w == 0 || !IsNameChar(r) {
			break
		}
		s.advance(w)
	}
	return s.input[start:s.pos], true
}

// SkipSGMLWhitespace advances over a run of SGML whitespace and returns
// whether anything was skipped.
func (s *Scanner) SkipSGMLWhitespace() bool {
	start := s.pos
	for {
		r, w := s.peekRune()
		if w == 0 || !IsSGMLSpace(r) {
			break
		}
		s.advance(w)
	}
	return s.pos != start
}
