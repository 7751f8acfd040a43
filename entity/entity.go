// Package entity implements the pure entity-reference expander:
// expanding &name; / &#N; / &#xN; general references and %name; parameter
// references using caller-supplied lookup functions. Neither function
// allocates when the text contains no reference marker (`&` or `%`),
// mirroring the zero-copy discipline the rest of this module applies to
// borrowed source slices. Text that contains a marker but no well-formed
// reference is returned as an equal, newly built string.
package entity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vippsas/sgmlcode/token"
)

// LookupFunc resolves an entity or parameter-entity name to its
// replacement text. ok is false when the name is undefined.
type LookupFunc func(name string) (value string, ok bool)

// UndefinedEntity is returned when lookup cannot resolve a reference that
// was recognized as well-formed.
type UndefinedEntity struct {
	Name string
}

func (e UndefinedEntity) Error() string {
	return "undefined entity: " + e.Name
}

// InvalidCharacterRef is returned for a `&#N;`/`&#xN;` reference whose
// code point is not a valid Unicode scalar value and which lookup (called
// with the `#...` name as fallback) also could not resolve.
type InvalidCharacterRef struct {
	Raw string
}

func (e InvalidCharacterRef) Error() string {
	return "invalid character reference: " + e.Raw
}

// ExpandGeneral scans text for `&`-prefixed references and replaces each
// with the value supplied by lookup (for named references) or the
// decoded code point (for `&#N;`/`&#xN;` numeric references). Malformed
// references (bare `&`, `&;`, `&&`, `&#`, `&##`, ...) pass through
// unchanged. Returns text unchanged, with no allocation, when no `&` is
// present.
func ExpandGeneral(text string, lookup LookupFunc) (string, error) {
	if !strings.ContainsRune(text, '&') {
		return text, nil
	}
	return expand(text, '&', lookup, true)
}

// ExpandParameter is identical to ExpandGeneral but triggered by `%`
// rather than `&`, with no character-reference form.
func ExpandParameter(text string, lookup LookupFunc) (string, error) {
	if !strings.ContainsRune(text, '%') {
		return text, nil
	}
	return expand(text, '%', lookup, false)
}

func expand(text string, marker byte, lookup LookupFunc, allowCharRef bool) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	i := 0
	for i < len(text) {
		c := text[i]
		if c != marker {
			out.WriteByte(c)
			i++
			continue
		}

		// Try to recognize a reference starting at i.
		ref, consumed, isCharRef, ok := scanReference(text[i:], marker, allowCharRef)
		if !ok {
			// Malformed reference: pass the marker through unchanged.
			out.WriteByte(c)
			i++
			continue
		}

		if isCharRef {
			if r, ok := decodeCharRef(ref); ok {
				out.WriteRune(r)
				i += consumed
				continue
			}
			// Not a valid scalar value: fall back to lookup with the
			// full reference name (including leading '#').
			val, found := lookup("#" + ref)
			if !found {
				return "", errors.WithStack(InvalidCharacterRef{Raw: "#" + ref})
			}
			out.WriteString(val)
			i += consumed
			continue
		}

		val, found := lookup(ref)
		if !found {
			return "", errors.WithStack(UndefinedEntity{Name: ref})
		}
		out.WriteString(val)
		i += consumed
	}
	return out.String(), nil
}

// scanReference recognizes a reference immediately following the marker
// byte at s[0]. ref is the name (without marker/semicolon), or for a
// character reference the text after '#' (e.g. "65" or "x41"). consumed
// is the number of bytes of s occupied by the whole reference including
// an optional trailing ';'.
func scanReference(s string, marker byte, allowCharRef bool) (ref string, consumed int, isCharRef bool, ok bool) {
	if len(s) < 2 || s[0] != marker {
		return "", 0, false, false
	}
	rest := s[1:]

	if allowCharRef && len(rest) > 0 && rest[0] == '#' {
		body := rest[1:]
		j := 0
		for j < len(body) && isNameByte(body[j]) {
			j++
		}
		if j == 0 {
			return "", 0, false, false
		}
		name := body[:j]
		total := 2 + j // marker + '#' + digits
		if j < len(body) && body[j] == ';' {
			total++
		}
		return name, total, true, true
	}

	if len(rest) == 0 || !isNameStartByte(rest[0]) {
		return "", 0, false, false
	}
	j := 1
	for j < len(rest) && isNameContinueByte(rest[j]) {
		j++
	}
	name := rest[:j]
	total := 1 + j
	if j < len(rest) && rest[j] == ';' {
		total++
	}
	return name, total, false, true
}

func isNameByte(b byte) bool {
	r := rune(b)
	return token.IsNameStart(r) || token.IsNameChar(r)
}

func isNameStartByte(b byte) bool {
	return token.IsNameStart(rune(b))
}

func isNameContinueByte(b byte) bool {
	return token.IsNameChar(rune(b))
}

func decodeCharRef(ref string) (rune, bool) {
	var n int64
	var err error
	if len(ref) > 1 && (ref[0] == 'x' || ref[0] == 'X') {
		n, err = strconv.ParseInt(ref[1:], 16, 32)
	} else {
		n, err = strconv.ParseInt(ref, 10, 32)
	}
	if err != nil {
		return 0, false
	}
	r := rune(n)
	if n < 0 || n > 0x10FFFF || !validScalarValue(r) {
		return 0, false
	}
	return r, true
}

func validScalarValue(r rune) bool {
	if r >= 0xD800 && r <= 0xDFFF {
		return false // surrogate halves are not scalar values
	}
	return r >= 0 && r <= 0x10FFFF
}
