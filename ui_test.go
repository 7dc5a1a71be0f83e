package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avahowell/passgen/pwgen"
)

func TestUIInputHandler(t *testing.T) {
	s, mem := newTestSession(t)
	m := newPassgenUI(s)
	quit := false
	m.quit = func() { quit = true }

	assert.Equal(t, "Your password will appear here", m.passwordPar.Text)
	assert.Equal(t, 0, m.strength.Percent)

	m.inputHandler("g")
	require.Len(t, s.password, 12)
	assert.Equal(t, s.password, m.passwordPar.Text)
	assert.Equal(t, s.strength()*20, m.strength.Percent)

	m.inputHandler("+")
	m.inputHandler("+")
	assert.Equal(t, 14, s.cfg.Length)
	assert.True(t, strings.HasPrefix(m.lengthPar.Text, "14 "))
	for i := 0; i < 10; i++ {
		m.inputHandler("-")
	}
	assert.Equal(t, pwgen.MinLength, s.cfg.Length)

	m.inputHandler("u")
	assert.False(t, s.cfg.Classes.Has(pwgen.Uppercase))
	assert.Contains(t, m.optionsPar.Text, "[ ] Uppercase")
	m.inputHandler("x")
	assert.True(t, s.cfg.ExcludeSimilar)
	assert.Contains(t, m.optionsPar.Text, "[x] Exclude Similar")

	m.inputHandler("c")
	assert.Equal(t, s.password, mem.contents)
	assert.True(t, m.displayFlash)
	assert.Contains(t, m.flash.Text, "copied")

	m.inputHandler("q")
	assert.True(t, quit)
}

func TestUINoClassSelected(t *testing.T) {
	s, _ := newTestSession(t)
	m := newPassgenUI(s)
	m.inputHandler("g")
	previous := s.password

	for _, key := range []string{"u", "l", "n", "s"} {
		m.inputHandler(key)
	}
	require.True(t, s.cfg.Classes.Empty())

	m.inputHandler("<enter>")
	assert.Equal(t, previous, s.password)
	assert.Equal(t, previous, m.passwordPar.Text)
	assert.Contains(t, m.flash.Text, pwgen.ErrNoClassSelected.Error())
}
