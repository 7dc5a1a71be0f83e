package main

import (
	"fmt"
	"strings"

	"github.com/avahowell/passgen/pwgen"

	ui "github.com/gizak/termui"
)

var strengthColors = [pwgen.MaxStrength]ui.Attribute{
	ui.ColorRed,
	ui.ColorMagenta,
	ui.ColorYellow,
	ui.ColorGreen,
	ui.ColorCyan,
}

var classKeys = map[string]pwgen.Class{
	"u": pwgen.Uppercase,
	"l": pwgen.Lowercase,
	"n": pwgen.Numbers,
	"s": pwgen.Symbols,
}

type passgenUI struct {
	s *session

	passwordPar *ui.Par
	strength    *ui.Gauge
	lengthPar   *ui.Par
	optionsPar  *ui.Par
	flash       *ui.Par

	displayFlash bool
	quit         func()
}

func newPassgenUI(s *session) *passgenUI {
	passwordPar := ui.NewPar("")
	passwordPar.Height = 3
	passwordPar.BorderLabel = "Password"
	passwordPar.TextFgColor = ui.ColorWhite

	strength := ui.NewGauge()
	strength.Height = 3
	strength.BorderLabel = "Strength"

	lengthPar := ui.NewPar("")
	lengthPar.Height = 3
	lengthPar.BorderLabel = "Length"

	optionsPar := ui.NewPar("")
	optionsPar.Height = 7
	optionsPar.BorderLabel = "Character Types"

	flash := ui.NewPar("")
	flash.Height = 1
	flash.Border = false

	helpPar := ui.NewPar("[ g ](fg-black,bg-white) Generate  [ c ](fg-black,bg-white) Copy  [ +/- ](fg-black,bg-white) Length  [ u l n s x ](fg-black,bg-white) Toggle  [ q ](fg-black,bg-white) Quit")
	helpPar.Height = 1
	helpPar.Border = false

	m := &passgenUI{
		s:           s,
		passwordPar: passwordPar,
		strength:    strength,
		lengthPar:   lengthPar,
		optionsPar:  optionsPar,
		flash:       flash,
		quit:        ui.StopLoop,
	}
	m.refresh()

	if ui.Body != nil {
		ui.Body.AddRows(
			ui.NewRow(ui.NewCol(12, 0, passwordPar)),
			ui.NewRow(ui.NewCol(12, 0, strength)),
			ui.NewRow(
				ui.NewCol(4, 0, lengthPar),
				ui.NewCol(8, 0, optionsPar),
			),
			ui.NewRow(ui.NewCol(12, 0, helpPar)),
			ui.NewRow(ui.NewCol(12, 0, flash)),
		)
	}
	return m
}

func checkbox(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// refresh copies the session state into the widgets.
func (m *passgenUI) refresh() {
	if m.s.password == "" {
		m.passwordPar.Text = "Your password will appear here"
	} else {
		m.passwordPar.Text = m.s.password
	}

	score := m.s.strength()
	m.strength.Percent = score * 100 / pwgen.MaxStrength
	if score > 0 {
		m.strength.BarColor = strengthColors[score-1]
		m.strength.Label = "Strength: " + pwgen.StrengthLabel(score)
	} else {
		m.strength.Label = ""
	}

	m.lengthPar.Text = fmt.Sprintf("%v (%v-%v)", m.s.cfg.Length, pwgen.MinLength, pwgen.MaxLength)

	var lines []string
	for _, c := range pwgen.Classes {
		name := c.String()
		lines = append(lines, fmt.Sprintf("%v %v (%v)", checkbox(m.s.cfg.Classes.Has(c)), strings.ToUpper(name[:1])+name[1:], name[:1]))
	}
	lines = append(lines, fmt.Sprintf("%v Exclude Similar Characters (I, l, 1, O, 0) (x)", checkbox(m.s.cfg.ExcludeSimilar)))
	m.optionsPar.Text = strings.Join(lines, "\n")
}

func (m *passgenUI) setFlash(text string) {
	m.flash.Text = text
	m.displayFlash = true
}

func (m *passgenUI) inputHandler(inputKey string) {
	switch inputKey {
	case "g", "<enter>":
		if _, err := m.s.generate(); err != nil {
			m.setFlash("Error: " + err.Error())
		}
	case "c":
		ok, err := m.s.copy()
		switch {
		case err != nil:
			m.setFlash("Error: " + err.Error())
		case ok && m.s.clip.Timeout() > 0:
			m.setFlash(fmt.Sprintf("Password copied to clipboard, clearing in %v", m.s.clip.Timeout()))
		case ok:
			m.setFlash("Password copied to clipboard")
		}
	case "+", "<right>", "<up>":
		m.s.setLength(m.s.cfg.Length + 1)
	case "-", "<left>", "<down>":
		m.s.setLength(m.s.cfg.Length - 1)
	case "x":
		m.s.toggleSimilar()
	case "q", "C-c":
		m.quit()
	default:
		if c, ok := classKeys[inputKey]; ok {
			m.s.toggle(c)
		}
	}
	m.refresh()
}

func (m *passgenUI) render() {
	if !m.displayFlash {
		m.flash.Text = ""
	}
	m.displayFlash = false
	ui.Clear()
	ui.Body.Align()
	ui.Render(ui.Body)
}

func runUI(s *session) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	m := newPassgenUI(s)

	ui.Handle("/sys/kbd", func(e ui.Event) {
		m.inputHandler(e.Data.(ui.EvtKbd).KeyStr)
		m.render()
	})
	ui.Handle("/sys/wnd/resize", func(ui.Event) {
		if ui.TermWidth() > 20 {
			ui.Body.Width = ui.TermWidth()
		}
		m.render()
	})

	m.render()
	ui.Loop()
	return nil
}
