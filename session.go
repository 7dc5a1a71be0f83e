package main

import (
	"log/slog"

	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/secureclip"
)

// session holds the front end state: the current settings and the most
// recently generated password.
type session struct {
	cfg      pwgen.Config
	password string
	gen      *pwgen.Generator
	clip     *secureclip.Clipper
	copied   bool
}

func newSession(cfg pwgen.Config, gen *pwgen.Generator, clip *secureclip.Clipper) *session {
	cfg.Length = pwgen.ClampLength(cfg.Length)
	return &session{cfg: cfg, gen: gen, clip: clip}
}

// generate replaces the current password. On failure the previous password
// is kept.
func (s *session) generate() (string, error) {
	pw, err := s.gen.Generate(s.cfg)
	if err != nil {
		slog.Debug("password generation failed", "error", err, "classes", s.cfg.Classes.String())
		return "", err
	}
	s.password = pw
	slog.Debug("password generated", "length", s.cfg.Length, "classes", s.cfg.Classes.String(), "exclude_similar", s.cfg.ExcludeSimilar)
	return pw, nil
}

func (s *session) setLength(n int) int {
	s.cfg.Length = pwgen.ClampLength(n)
	return s.cfg.Length
}

func (s *session) toggle(c pwgen.Class) bool {
	s.cfg.Classes = s.cfg.Classes.Toggle(c)
	return s.cfg.Classes.Has(c)
}

func (s *session) toggleSimilar() bool {
	s.cfg.ExcludeSimilar = !s.cfg.ExcludeSimilar
	return s.cfg.ExcludeSimilar
}

func (s *session) strength() int {
	return pwgen.AssessStrength(s.password)
}

// copy puts the current password on the clipboard. It reports false if
// there is no password yet.
func (s *session) copy() (bool, error) {
	if s.password == "" {
		return false, nil
	}
	if err := s.clip.Clip(s.password); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		return false, err
	}
	s.copied = true
	return true, nil
}

// close clears the clipboard if this session wrote to it.
func (s *session) close() {
	if !s.copied {
		return
	}
	s.copied = false
	if err := s.clip.Clear(); err != nil {
		slog.Warn("could not clear clipboard on exit", "error", err)
	}
}
