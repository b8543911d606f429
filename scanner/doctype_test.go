package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctypeLookup(t *testing.T) {
	s := NewString("<!DOCTYPE html><html></html>")
	dt := s.DoctypeElement()
	require.NotNil(t, dt)
	assert.Equal(t, OtherElement, dt.Type)
	assert.Equal(t, byte('!'), dt.Symbol)
	assert.Equal(t, 0, dt.Start)
	assert.Equal(t, 15, dt.End)
	assert.Equal(t, "DOCTYPE html", dt.Content)
}

func TestDoctypeCaseInsensitive(t *testing.T) {
	s := NewString("<!doctype HTML>")
	dt := s.DoctypeElement()
	require.NotNil(t, dt)
	assert.Equal(t, "doctype HTML", dt.Content)
}

func TestDoctypeAfterOtherElements(t *testing.T) {
	in := `<!--c--><?xml version="1.0"?><!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN"><p>`
	s := NewString(in)
	dt := s.DoctypeElement()
	require.NotNil(t, dt)
	assert.Equal(t, strings.Index(in, "<!DOCTYPE"), dt.Start)
	assert.Equal(t, `DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN"`, dt.Content)
}

func TestDoctypeAbsent(t *testing.T) {
	assert.Nil(t, NewString("<html><p>x</p></html>").DoctypeElement())
	assert.Nil(t, NewString("<!-- doctype html -->").DoctypeElement())
	assert.Nil(t, NewString("<!ENTITY x>").DoctypeElement())
}

func TestDoctypeWindowIsBounded(t *testing.T) {
	s := NewString(strings.Repeat("<b>", 400) + "<!DOCTYPE html>")
	assert.Nil(t, s.DoctypeElement())
}

func TestDoctypeLookupLeavesNoStateBehind(t *testing.T) {
	s := NewString("<!DOCTYPE html><p><i>")
	require.True(t, s.Valid())
	offset := s.Offset()
	count := s.CountStates()

	for i := 0; i < 3; i++ {
		require.NotNil(t, s.DoctypeElement())
	}
	assert.Equal(t, offset, s.Offset())
	assert.Equal(t, count, s.CountStates())

	// the memoized element is stable across cursor movement
	first := s.DoctypeElement()
	s.Next()
	s.Next()
	assert.Same(t, first, s.DoctypeElement())
}
