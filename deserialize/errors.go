package deserialize

import "fmt"

import "github.com/vippsas/sgmlcode/event"

// ErrUnexpectedEOF is raised when the cursor runs out of events before
// structural recursion expected to find one.
type ErrUnexpectedEOF struct{}

func (ErrUnexpectedEOF) Error() string { return "unexpected end of event stream" }

// ErrExpectedStartTag is raised when the cursor was expected to be
// positioned on an OpenStartTag but was not.
type ErrExpectedStartTag struct{}

func (ErrExpectedStartTag) Error() string { return "expected a start tag" }

// MismatchedCloseTag is raised when an EndTag's name does not match the
// currently open element.
type MismatchedCloseTag struct {
	Expected string
	Found    string
}

func (e MismatchedCloseTag) Error() string {
	return fmt.Sprintf("mismatched close tag: expected %q, found %q", e.Expected, e.Found)
}

// Unsupported is raised when an event cannot be consumed in the current
// structural position: an empty start/end tag, or a MarkedSection/
// ProcessingInstruction event that slipped through because the parser
// wasn't configured to suppress or expand it.
type Unsupported struct {
	Event event.Event
}

func (e Unsupported) Error() string {
	return fmt.Sprintf("unsupported event: %s", e.Event.Kind)
}

// ParseIntError is raised when an integer visit's text content fails to
// parse.
type ParseIntError struct {
	Raw string
}

func (e ParseIntError) Error() string { return "invalid integer: " + e.Raw }

// ParseFloatError is raised when a float visit's text content fails to
// parse.
type ParseFloatError struct {
	Raw string
}

func (e ParseFloatError) Error() string { return "invalid float: " + e.Raw }

// InvalidBoolValue is raised when a boolean visit's text content is
// neither a recognized true-ish nor false-ish token.
type InvalidBoolValue struct {
	Raw string
}

func (e InvalidBoolValue) Error() string { return "invalid boolean value: " + e.Raw }

// Message is a catch-all deserialization error for cases not covered by
// a more specific type.
type Message struct {
	Text string
}

func (e Message) Error() string { return e.Text }
