package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/repl"
)

var (
	genCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "gen",
			Action: gen(s),
			Usage:  "gen [length]: generate a new password, optionally setting the length first",
		}
	}

	lengthCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "length",
			Action: length(s),
			Usage:  fmt.Sprintf("length [n]: set the password length (%v-%v)", pwgen.MinLength, pwgen.MaxLength),
		}
	}

	toggleCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "toggle",
			Action: toggle(s),
			Usage:  "toggle [uppercase|lowercase|numbers|symbols|similar]: switch a character class, or the exclusion of similar characters (I, l, 1, O, 0), on or off",
		}
	}

	showCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "show",
			Action: show(s),
			Usage:  "show: print the current settings and password",
		}
	}

	strengthCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "strength",
			Action: strength(s),
			Usage:  "strength [password]: rate the current password, or [password] if given",
		}
	}

	clipCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "clip",
			Action: clip(s),
			Usage:  "clip: copy the current password to the clipboard",
		}
	}
)

func formatStrength(score int) string {
	if score == 0 {
		return "strength: 0/5\n"
	}
	return fmt.Sprintf("strength: %v/5 (%v)\n", score, pwgen.StrengthLabel(score))
}

func gen(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) > 1 {
			return "", fmt.Errorf("gen takes at most one argument. See help for usage.")
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("invalid length %q", args[0])
			}
			s.setLength(n)
		}
		pw, err := s.generate()
		if err != nil {
			return "", err
		}
		return pw + "\n" + formatStrength(s.strength()), nil
	}
}

func length(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("length requires 1 argument. See help for usage.")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid length %q", args[0])
		}
		return fmt.Sprintf("length set to %v\n", s.setLength(n)), nil
	}
}

func toggle(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("toggle requires 1 argument. See help for usage.")
		}
		if strings.EqualFold(args[0], "similar") {
			return fmt.Sprintf("exclude similar characters: %v\n", onOff(s.toggleSimilar())), nil
		}
		c, err := pwgen.ParseClass(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v: %v\n", c, onOff(s.toggle(c))), nil
	}
}

func show(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		classes := s.cfg.Classes.String()
		if classes == "" {
			classes = "(none)"
		}
		printstring := fmt.Sprintf("length: %v\nclasses: %v\nexclude similar: %v\n", s.cfg.Length, classes, onOff(s.cfg.ExcludeSimilar))
		if s.password != "" {
			printstring += "password: " + s.password + "\n" + formatStrength(s.strength())
		}
		return printstring, nil
	}
}

func strength(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) > 1 {
			return "", fmt.Errorf("strength takes at most one argument. See help for usage.")
		}
		if len(args) == 1 {
			return formatStrength(pwgen.AssessStrength(args[0])), nil
		}
		return formatStrength(s.strength()), nil
	}
}

func clip(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		ok, err := s.copy()
		if err != nil {
			return "", err
		}
		if !ok {
			return "nothing to copy, run gen first\n", nil
		}
		if t := s.clip.Timeout(); t > 0 {
			return fmt.Sprintf("password copied to clipboard, will clear in %v\n", t), nil
		}
		return "password copied to clipboard\n", nil
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
