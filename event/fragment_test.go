package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleFragment() *Fragment {
	return NewFragment([]Event{
		{Kind: OpenStartTag, Name: Owned("A")},
		{Kind: Attribute, Name: Owned("href"), Value: Owned("x"), HasValue: true},
		{Kind: CloseStartTag},
		{Kind: Character, Value: Owned("hi")},
		{Kind: EndTag, Name: Owned("A")},
	})
}

func TestFragmentDisplayRoundTripShape(t *testing.T) {
	f := buildSimpleFragment()
	out := f.Display()
	assert.Equal(t, `<A href="x">hi</A>`, out)
}

func TestFragmentDisplayAttributeQuoteChoice(t *testing.T) {
	f := NewFragment([]Event{
		{Kind: OpenStartTag, Name: Owned("input")},
		{Kind: Attribute, Name: Owned("title"), Value: Owned(`say "hi"`), HasValue: true},
		{Kind: CloseStartTag},
	})
	out := f.Display()
	assert.Equal(t, `<input title='say "hi"'>`, out)
}

func TestFragmentDisplayAttributeBothQuotesEscaped(t *testing.T) {
	f := NewFragment([]Event{
		{Kind: OpenStartTag, Name: Owned("input")},
		{Kind: Attribute, Name: Owned("title"), Value: Owned(`say "it's" & go`), HasValue: true},
		{Kind: CloseStartTag},
	})
	out := f.Display()
	assert.Equal(t, `<input title="say &#34;it's&#34; &#38; go">`, out)
}

func TestFragmentDigestStable(t *testing.T) {
	f1 := buildSimpleFragment()
	f2 := buildSimpleFragment()
	require.Equal(t, f1.Digest(), f2.Digest())
}

func TestFragmentDetach(t *testing.T) {
	source := "A"
	f := NewFragment([]Event{
		{Kind: OpenStartTag, Name: Borrowed(&source, 0, 1)},
	})
	detached := f.Detach()
	assert.False(t, detached.At(0).Name.IsBorrowed())
}
