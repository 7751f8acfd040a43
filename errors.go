package sgmlcode

import (
	"errors"

	"github.com/vippsas/sgmlcode/parser"
)

// Describe renders err as a human-readable message: if err (or something
// it wraps, via github.com/pkg/errors context-wrapping) is a *parser.Error,
// the detailed line/column/caret form is used (parser.Error.Display needs
// the original source to produce the excerpt); otherwise err.Error() is
// returned unchanged. This splits a flattened one-line description from a
// detailed form callers can opt into.
func Describe(err error, source string) string {
	if err == nil {
		return ""
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Display(source)
	}
	return err.Error()
}
