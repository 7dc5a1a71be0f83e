package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/avahowell/passgen/config"
	"github.com/avahowell/passgen/pwgen"
	"github.com/avahowell/passgen/repl"
	"github.com/avahowell/passgen/secureclip"
)

const usage = `Usage: passgen [-repl] [-print n] [-length n] [-classes list] [-exclude-similar] [-env file]`

func die(err error) {
	fmt.Println(err)
	os.Exit(1)
}

func startRepl(s *session) error {
	r := repl.New("passgen > ")
	r.AddCommand(genCmd(s))
	r.AddCommand(lengthCmd(s))
	r.AddCommand(toggleCmd(s))
	r.AddCommand(showCmd(s))
	r.AddCommand(strengthCmd(s))
	r.AddCommand(clipCmd(s))
	return r.Loop()
}

func printPasswords(s *session, n int) error {
	for i := 0; i < n; i++ {
		pw, err := s.generate()
		if err != nil {
			return err
		}
		fmt.Println(pw)
	}
	return nil
}

func main() {
	replMode := flag.Bool("repl", false, "use the line-oriented prompt instead of the terminal UI")
	printN := flag.Int("print", 0, "print `n` passwords and exit")
	lengthFlag := flag.Int("length", 0, fmt.Sprintf("password length (%v-%v)", pwgen.MinLength, pwgen.MaxLength))
	classesFlag := flag.String("classes", "", "comma separated character classes: uppercase,lowercase,numbers,symbols")
	excludeFlag := flag.Bool("exclude-similar", false, "exclude similar characters (I, l, 1, O, 0)")
	envFile := flag.String("env", "", "load settings from this .env file")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(flag.Args()) != 0 {
		flag.Usage()
		os.Exit(1)
	}

	var cfg config.Config
	if *envFile != "" {
		cfg = config.Load(*envFile)
	} else {
		cfg = config.Load()
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length":
			cfg.Length = *lengthFlag
		case "classes":
			cfg.Classes, err = config.ParseClasses(*classesFlag)
		case "exclude-similar":
			cfg.ExcludeSimilar = *excludeFlag
		}
	})
	if err != nil {
		die(err)
	}

	s := newSession(cfg.GenerationConfig(), pwgen.New(nil), secureclip.New(secureclip.System, cfg.ClipTimeout))

	switch {
	case *printN > 0:
		err = printPasswords(s, *printN)
	case *replMode:
		err = startRepl(s)
	default:
		err = runUI(s)
	}
	s.close()
	if err != nil {
		die(err)
	}
}
