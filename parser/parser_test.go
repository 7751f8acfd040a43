package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sgmlcode/event"
)

func kindsOf(f *event.Fragment) []event.Kind {
	out := make([]event.Kind, f.Len())
	for i, e := range f.Events() {
		out[i] = e.Kind
	}
	return out
}

func TestParseSimpleElement(t *testing.T) {
	f, err := Parse("<A>hi</A>")
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{
		event.OpenStartTag, event.CloseStartTag, event.Character, event.EndTag,
	}, kindsOf(f))
	assert.Equal(t, "hi", f.At(2).Value.AsString())
}

func TestParseHTMLBooleanAttribute(t *testing.T) {
	f, err := NewBuilder().NameNormalization(ToLowercase).Parse(`<input checked disabled="disabled">`)
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{
		event.OpenStartTag, event.Attribute, event.Attribute, event.CloseStartTag,
	}, kindsOf(f))
	assert.Equal(t, "checked", f.At(1).Name.AsString())
	assert.False(t, f.At(1).HasValue)
	assert.Equal(t, "disabled", f.At(2).Name.AsString())
	assert.True(t, f.At(2).HasValue)
	assert.Equal(t, "disabled", f.At(2).Value.AsString())
}

func TestParseOFXElidedEndTags(t *testing.T) {
	input := `<BANKTRANLIST><DTSTART>20210101<DTEND>20210201<STMTTRN><TRNTYPE>DEBIT</STMTTRN></BANKTRANLIST>`
	f, err := Parse(input)
	require.NoError(t, err)

	var names []string
	for _, e := range f.Events() {
		if e.Kind == event.OpenStartTag || e.Kind == event.EndTag {
			names = append(names, e.Name.AsString())
		}
	}
	assert.Equal(t, []string{
		"BANKTRANLIST", "DTSTART", "DTEND", "STMTTRN", "TRNTYPE", "STMTTRN", "BANKTRANLIST",
	}, names)
}

func TestParseQuotedAttributeEntityExpansion(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "amp" {
			return "&", true
		}
		return "", false
	}
	f, err := NewBuilder().EntityFunc(lookup).Parse(`<a href="&amp;x">`)
	require.NoError(t, err)
	require.Equal(t, event.Attribute, f.At(1).Kind)
	assert.Equal(t, "&x", f.At(1).Value.AsString())
}

func TestParseUnquotedAttributeNotExpanded(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "amp" {
			return "&", true
		}
		return "", false
	}
	f, err := NewBuilder().EntityFunc(lookup).Parse(`<a href=&amp;x>`)
	require.NoError(t, err)
	require.Equal(t, event.Attribute, f.At(1).Kind)
	assert.Equal(t, "&amp;x", f.At(1).Value.AsString())
}

func TestParseMarkedSectionIgnoreNested(t *testing.T) {
	input := `<![IGNORE[ <![CDATA[inner]]> outer ]]>after`
	f, err := NewBuilder().MarkedSectionHandling(ExpandAll).Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{event.Character}, kindsOf(f))
	assert.Equal(t, "after", f.At(0).Value.AsString())
}

func TestParseMarkedSectionIncludeExpandAll(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "cond" {
			return "INCLUDE", true
		}
		return "", false
	}
	input := `<![%cond;[ <A>hi</A> ]]>`
	f, err := NewBuilder().MarkedSectionHandling(ExpandAll).ParameterEntityFunc(lookup).Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{
		event.OpenStartTag, event.CloseStartTag, event.Character, event.EndTag,
	}, kindsOf(f))
	assert.Equal(t, "hi", f.At(2).Value.AsString())
}

func TestParseMarkedSectionAcceptOnlyCharacterDataRejectsCombined(t *testing.T) {
	_, err := Parse(`<![CDATA CDATA[x]]>`)
	require.Error(t, err)
}

func TestParseWhitespaceTrimDropsEmptyCharacterEvents(t *testing.T) {
	f, err := Parse("<A>   </A>")
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{event.OpenStartTag, event.CloseStartTag, event.EndTag}, kindsOf(f))
}

func TestParseEmptyTagForms(t *testing.T) {
	f, err := Parse("<></>")
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{event.OpenStartTag, event.CloseStartTag, event.EndTag}, kindsOf(f))
	assert.Equal(t, "", f.At(0).Name.AsString())
	assert.Equal(t, "", f.At(2).Name.AsString())
}

func TestDisplayRoundTripModuloWhitespace(t *testing.T) {
	input := "<A href=\"x\">hi</A>"
	f, err := Parse(input)
	require.NoError(t, err)
	f2, err := Parse(f.Display())
	require.NoError(t, err)
	assert.Equal(t, kindsOf(f), kindsOf(f2))
}

func TestErrorDisplayIncludesCaret(t *testing.T) {
	_, err := Parse(`<a href="unterminated`)
	require.Error(t, err)
	var perr *Error
	if ok := errors.As(err, &perr); ok {
		out := perr.Display(`<a href="unterminated`)
		assert.True(t, strings.Contains(out, "^"))
	}
}
