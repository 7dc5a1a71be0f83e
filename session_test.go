package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/secureclip"
)

func TestSessionClampsInitialLength(t *testing.T) {
	s := newSession(pwgen.Config{Length: 3, Classes: pwgen.AllClasses}, pwgen.New(nil), secureclip.New(&memClipboard{}, 0))
	assert.Equal(t, pwgen.MinLength, s.cfg.Length)
}

func TestSessionGenerate(t *testing.T) {
	s, _ := newTestSession(t)
	s.toggleSimilar()
	s.setLength(24)

	pw, err := s.generate()
	require.NoError(t, err)
	assert.Len(t, pw, 24)
	assert.Equal(t, pw, s.password)
	assert.False(t, strings.ContainsAny(pw, pwgen.SimilarChars))
}

func TestSessionCloseWithoutCopy(t *testing.T) {
	mem := &memClipboard{contents: "user data"}
	s := newSession(pwgen.DefaultConfig(), pwgen.New(nil), secureclip.New(mem, time.Minute))
	_, err := s.generate()
	require.NoError(t, err)
	s.close()
	assert.Equal(t, "user data", mem.contents, "close must not clear a clipboard the session never wrote")
}

func TestPrintPasswords(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, printPasswords(s, 3))

	s.cfg.Classes = 0
	assert.ErrorIs(t, printPasswords(s, 1), pwgen.ErrNoClassSelected)
}
