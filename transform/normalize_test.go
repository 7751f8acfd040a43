package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sgmlcode/event"
	"github.com/vippsas/sgmlcode/parser"
)

func names(f *event.Fragment, kind event.Kind) []string {
	var out []string
	for _, e := range f.Events() {
		if e.Kind == kind {
			out = append(out, e.Name.AsString())
		}
	}
	return out
}

func TestNormalizeEndTagsOFXElision(t *testing.T) {
	input := `<BANKTRANLIST><DTSTART>20210101<DTEND>20210201<STMTTRN><TRNTYPE>DEBIT</STMTTRN></BANKTRANLIST>`
	f, err := parser.Parse(input)
	require.NoError(t, err)

	normalized, err := NormalizeEndTags(f)
	require.NoError(t, err)

	var sawDTStartEnd, sawDTEndEnd bool
	events := normalized.Events()
	for i, e := range events {
		if e.Kind == event.Character && e.Value.AsString() == "20210101" {
			require.Less(t, i+1, len(events))
			if events[i+1].Kind == event.EndTag && events[i+1].Name.AsString() == "DTSTART" {
				sawDTStartEnd = true
			}
		}
		if e.Kind == event.Character && e.Value.AsString() == "20210201" {
			require.Less(t, i+1, len(events))
			if events[i+1].Kind == event.EndTag && events[i+1].Name.AsString() == "DTEND" {
				sawDTEndEnd = true
			}
		}
	}
	assert.True(t, sawDTStartEnd)
	assert.True(t, sawDTEndEnd)
}

func TestNormalizeEndTagsAlreadyPairedUnchanged(t *testing.T) {
	f, err := parser.Parse("<A><B>x</B></A>")
	require.NoError(t, err)
	normalized, err := NormalizeEndTags(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, names(normalized, event.EndTag))
}

func TestNormalizeEndTagsXmlEmptyElementRewritten(t *testing.T) {
	f, err := parser.Parse("<A><B/></A>")
	require.NoError(t, err)
	normalized, err := NormalizeEndTags(f)
	require.NoError(t, err)

	var kinds []event.Kind
	for _, e := range normalized.Events() {
		kinds = append(kinds, e.Kind)
	}
	assert.NotContains(t, kinds, event.XmlCloseEmptyElement)
	assert.Equal(t, []string{"B", "A"}, names(normalized, event.EndTag))
}

func TestNormalizeEndTagsUnpairedFails(t *testing.T) {
	f, err := parser.Parse("<A>x</B>")
	require.NoError(t, err)
	_, err = NormalizeEndTags(f)
	require.Error(t, err)
	var unpaired UnpairedEndTag
	require.ErrorAs(t, err, &unpaired)
	assert.Equal(t, "B", unpaired.Name)
}

func TestNormalizeEndTagsEmptyTagRejected(t *testing.T) {
	f, err := parser.Parse("<></>")
	require.NoError(t, err)
	_, err = NormalizeEndTags(f)
	require.Error(t, err)
}
