package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"
)

// ErrUnknownCommand is returned by eval for an unregistered command name.
var ErrUnknownCommand = errors.New("command not recognized. Type `help` for a list of commands")

type (
	// REPL is a read-eval-print loop driving the passgen prompt.
	REPL struct {
		prompt          string
		commands        map[string]Command
		prefixCompleter *readline.PrefixCompleter
		output          io.Writer
		rl              *readline.Instance
		stopfunc        func()
	}

	// Command is a command that can be registered with the REPL. It consists
	// of a name, an action that is run when the name is input to the REPL, and
	// a usage string.
	Command struct {
		Name   string
		Action ActionFunc
		Usage  string
	}

	// ActionFunc is run with the arguments following the command name and
	// returns the text to print.
	ActionFunc func([]string) (string, error)
)

// New instantiates a new REPL using the provided `prompt`.
func New(prompt string) *REPL {
	r := &REPL{
		commands: make(map[string]Command),
		prompt:   prompt,
		output:   os.Stdout,
	}

	r.AddCommand(Command{
		Name:  "help",
		Usage: "help: displays available commands and their usage",
		Action: func(args []string) (string, error) {
			return r.Usage(), nil
		},
	})

	r.AddCommand(Command{
		Name:  "exit",
		Usage: "exit: exit the interactive prompt",
		Action: func(args []string) (string, error) {
			return "", r.Stop()
		},
	})

	r.AddCommand(Command{
		Name:  "clear",
		Usage: "clear: clear the terminal",
		Action: func(args []string) (string, error) {
			if _, err := readline.ClearScreen(r.output); err != nil {
				return "", err
			}
			return "", nil
		},
	})

	return r
}

// SetOutput redirects command results.
func (r *REPL) SetOutput(w io.Writer) {
	r.output = w
}

// OnStop registers a function to be called when the REPL stops.
func (r *REPL) OnStop(sf func()) {
	r.stopfunc = sf
}

// Stop runs the stop function and ends Loop.
func (r *REPL) Stop() error {
	if r.stopfunc != nil {
		r.stopfunc()
	}
	if r.rl == nil {
		return nil
	}
	return r.rl.Close()
}

// Usage returns the usage for every command in the REPL, sorted by name.
func (r *REPL) Usage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(r.commands[name].Usage + "\n")
	}
	return sb.String()
}

// AddCommand registers the command provided in `cmd` with the REPL.
func (r *REPL) AddCommand(cmd Command) {
	r.commands[cmd.Name] = cmd

	var completers []readline.PrefixCompleterInterface
	for name := range r.commands {
		completers = append(completers, readline.PcItem(name))
	}

	r.prefixCompleter = readline.NewPrefixCompleter(completers...)
}

// eval evaluates a line that was input to the REPL.
func (r *REPL) eval(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, exists := r.commands[args[0]]
	if !exists {
		return "", ErrUnknownCommand
	}

	return cmd.Action(args[1:])
}

// Loop starts the Read-Eval-Print loop. It returns once the input is closed,
// interrupted, or `exit` is run.
func (r *REPL) Loop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       r.prompt,
		AutoComplete: r.prefixCompleter,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.rl = rl

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt && r.stopfunc != nil {
				r.stopfunc()
			}
			break
		}
		res, err := r.eval(line)
		if err != nil {
			fmt.Fprintln(r.output, err.Error())
			continue
		}
		fmt.Fprint(r.output, res)
	}
	return nil
}
