package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrBorrowedVsOwned(t *testing.T) {
	source := "hello world"
	b := Borrowed(&source, 6, 5)
	assert.True(t, b.IsBorrowed())
	assert.Equal(t, "world", b.AsString())
	assert.Equal(t, 5, b.Len())

	o := Owned("world")
	assert.False(t, o.IsBorrowed())
	assert.Equal(t, "world", o.AsString())
}

func TestStrDetach(t *testing.T) {
	source := "hello world"
	b := Borrowed(&source, 0, 5)
	d := b.Detach()
	assert.False(t, d.IsBorrowed())
	assert.Equal(t, "hello", d.AsString())
}
