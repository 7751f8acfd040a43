// Package transform implements the end-tag normalization transform: a
// single reverse pass over a Fragment that synthesizes missing end
// tags under the OFX 1.x elision convention (end tags are only elided
// after text-only content), grounded in the explicit-index,
// no-native-recursion style of sqldocument's TopologicalSort.
package transform

import (
	"strings"

	"github.com/vippsas/sgmlcode/event"
	"github.com/vippsas/sgmlcode/token"
)

// UnpairedEndTag is returned when, after the pass, an EndTag was never
// matched by an OpenStartTag of the same name.
type UnpairedEndTag struct {
	Name string
}

func (e UnpairedEndTag) Error() string {
	return "unpaired end tag: " + e.Name
}

// ErrEmptyTagNotSupported is returned when the fragment contains an
// empty start or end tag (`<>` / `</>`), which this transform cannot
// reason about since such tags carry no name to match against.
type ErrEmptyTagNotSupported struct{}

func (ErrEmptyTagNotSupported) Error() string {
	return "empty start or end tags are not supported by end-tag normalization"
}

// NormalizeEndTags returns a new Fragment with missing end tags
// inserted, one reverse pass over f's events.
func NormalizeEndTags(f *event.Fragment) (*event.Fragment, error) {
	src := f.Events()
	out := make([]event.Event, len(src))
	copy(out, src)

	var stack []string
	insertionPoint := len(out)

	for i := len(out) - 1; i >= 0; i-- {
		e := out[i]
		switch e.Kind {
		case event.OpenStartTag:
			name := e.Name.AsString()
			if name == "" {
				return nil, ErrEmptyTagNotSupported{}
			}
			if len(stack) > 0 && stack[len(stack)-1] == name {
				stack = stack[:len(stack)-1]
			} else {
				synthesized := event.Event{
					Kind:  event.EndTag,
					Start: e.Start,
					Stop:  e.Start,
					Name:  event.Owned(name),
				}
				out = insertAt(out, insertionPoint, synthesized)
			}
			insertionPoint = i

		case event.XmlCloseEmptyElement:
			out[i].Kind = event.CloseStartTag
			insertionPoint = i + 1

		case event.EndTag:
			name := e.Name.AsString()
			if name == "" {
				return nil, ErrEmptyTagNotSupported{}
			}
			stack = append(stack, name)
			insertionPoint = i

		case event.Character:
			if insertionPoint == i+1 && isBlank(e.Value.AsString()) {
				insertionPoint = i
			}
		}
	}

	if len(stack) > 0 {
		return nil, UnpairedEndTag{Name: stack[len(stack)-1]}
	}

	return event.NewFragment(out), nil
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, token.IsSGMLSpace) == ""
}

// insertAt inserts v into s at index i, shifting later elements right.
func insertAt(s []event.Event, i int, v event.Event) []event.Event {
	s = append(s, event.Event{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
