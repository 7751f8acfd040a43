package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupTable(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestExpandGeneralNamedReference(t *testing.T) {
	lookup := lookupTable(map[string]string{"amp": "&", "lt": "<"})
	out, err := ExpandGeneral("a &amp; b &lt; c", lookup)
	require.NoError(t, err)
	assert.Equal(t, "a & b < c", out)
}

func TestExpandGeneralNoAmpersandNoAllocationPath(t *testing.T) {
	out, err := ExpandGeneral("plain text", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestExpandGeneralDecimalCharRef(t *testing.T) {
	out, err := ExpandGeneral("&#65;&#66;", nil)
	require.NoError(t, err)
	assert.Equal(t, "AB", out)
}

func TestExpandGeneralHexCharRef(t *testing.T) {
	out, err := ExpandGeneral("&#x41;", nil)
	require.NoError(t, err)
	assert.Equal(t, "A", out)
}

func TestExpandGeneralUndefinedEntity(t *testing.T) {
	_, err := ExpandGeneral("&nope;", lookupTable(nil))
	require.Error(t, err)
	var undef UndefinedEntity
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "nope", undef.Name)
}

func TestExpandGeneralMalformedPassesThrough(t *testing.T) {
	out, err := ExpandGeneral("a & b && c &;", nil)
	require.NoError(t, err)
	assert.Equal(t, "a & b && c &;", out)
}

func TestExpandParameterEntity(t *testing.T) {
	lookup := lookupTable(map[string]string{"ver": "1.0"})
	out, err := ExpandParameter("release %ver; now", lookup)
	require.NoError(t, err)
	assert.Equal(t, "release 1.0 now", out)
}

func TestExpandParameterHasNoCharRefForm(t *testing.T) {
	lookup := lookupTable(map[string]string{"35": "value-of-35"})
	out, err := ExpandParameter("%#35;", lookup)
	require.NoError(t, err)
	// '#' is never a valid name_start, so the reference is malformed and
	// passes through unchanged rather than being looked up.
	assert.Equal(t, "%#35;", out)
}

func TestExpandRequiresNameStartForFirstChar(t *testing.T) {
	lookup := lookupTable(map[string]string{"1": "digit-one", ".foo": "dotfoo"})
	out, err := ExpandGeneral("&1;", lookup)
	require.NoError(t, err)
	assert.Equal(t, "&1;", out)

	out, err = ExpandParameter("%.foo;", lookup)
	require.NoError(t, err)
	assert.Equal(t, "%.foo;", out)
}

func TestExpandGeneralInvalidCharRefFallsBackToLookup(t *testing.T) {
	lookup := lookupTable(map[string]string{"#xFFFFFFFF": "fallback"})
	out, err := ExpandGeneral("&#xFFFFFFFF;", lookup)
	require.NoError(t, err)
	assert.Equal(t, "fallback", out)
}

func TestExpandGeneralSurrogateHalfRejected(t *testing.T) {
	lookup := lookupTable(map[string]string{"#xD800": "replacement"})
	out, err := ExpandGeneral("&#xD800;", lookup)
	require.NoError(t, err)
	assert.Equal(t, "replacement", out)
}
