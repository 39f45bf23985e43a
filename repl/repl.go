// Package repl implements the interactive loop: reading one line at a
// time, parsing and evaluating it, and reporting either a value, a
// solver report, or an error, following the teacher's run.Run
// (run/run.go): a per-statement panic/recover boundary, an "interactive"
// vs. piped-input distinction, and a trailing blank line after each
// interactive result. The read_line/write_line collaborators named in
// spec §6 are implemented here, outside the core engine.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/env"
	"github.com/DinaGala/computor-v2/errs"
	"github.com/DinaGala/computor-v2/eval"
	"github.com/DinaGala/computor-v2/parser"
	"github.com/DinaGala/computor-v2/value"
)

// lineSource is the read_line collaborator of spec §6, satisfied either
// by an interactive readline.Instance (with history) or a plain
// bufio.Scanner over piped/file input.
type lineSource interface {
	ReadLine() (string, bool) // text, more-input-follows
	Close() error
}

type readlineSource struct{ rl *readline.Instance }

func (s *readlineSource) ReadLine() (string, bool) {
	line, err := s.rl.Readline()
	if err != nil {
		return "", false
	}
	return line, true
}
func (s *readlineSource) Close() error { return s.rl.Close() }

type scannerSource struct{ sc *bufio.Scanner }

func (s *scannerSource) ReadLine() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}
func (s *scannerSource) Close() error { return nil }

// REPL is the interactive loop: an Environment, a Config, and a
// read_line/write_line collaborator pair (spec §6).
type REPL struct {
	Env  *env.Environment
	Cfg  *config.Config
	out  io.Writer
	src  lineSource
	tty  bool
}

// NewInteractive builds a REPL reading from a terminal via
// github.com/chzyer/readline, with history persisted at cfg.HistoryPath()
// (SPEC_FULL §11).
func NewInteractive(cfg *config.Config, out io.Writer) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "computor> ",
		HistoryFile:     cfg.HistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return nil, err
	}
	return &REPL{Env: env.New(), Cfg: cfg, out: out, src: &readlineSource{rl: rl}, tty: true}, nil
}

// NewNonInteractive builds a REPL reading from an arbitrary io.Reader
// (piped input or a script file), falling back to bufio.Scanner exactly
// as the teacher's run.Run distinguishes its non-interactive branch.
func NewNonInteractive(cfg *config.Config, in io.Reader, out io.Writer) *REPL {
	return &REPL{Env: env.New(), Cfg: cfg, out: out, src: &scannerSource{sc: bufio.NewScanner(in)}, tty: false}
}

// Close releases the underlying line source (flushing readline history).
func (r *REPL) Close() error {
	return r.src.Close()
}

// Run drives the loop until EOF, following the teacher's run.Run
// recover-per-statement shape. It returns the number of statements that
// failed; the computor command does not use this count for its exit status.
func (r *REPL) Run() int {
	errCount := 0
	for {
		line, ok := r.src.ReadLine()
		if !ok {
			return errCount
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ")") {
			r.special(trimmed)
			continue
		}
		if !r.evalLine(trimmed) {
			errCount++
		}
	}
}

// evalLine parses and evaluates one statement, recovering any *errs.Error
// panic at this boundary (the teacher's run.Run recover block) and
// reporting it as "Error: <message>" per spec §7. It returns false on
// error.
func (r *REPL) evalLine(line string) (ok bool) {
	snapshot := r.Env.Snapshot()
	defer func() {
		if rec := recover(); rec != nil {
			e, isErr := rec.(*errs.Error)
			if !isErr {
				panic(rec)
			}
			r.Env.Restore(snapshot)
			fmt.Fprintf(r.out, "Error: %s\n", e.Error())
			ok = false
		}
	}()
	stmt := parser.ParseLine(line, r.Env)
	outcome := eval.Run(stmt, r.Env, r.Cfg)
	switch {
	case outcome.Silent:
		// FunDef: installs a binding, prints nothing (spec §4.4).
	case outcome.Report != "":
		fmt.Fprintln(r.out, outcome.Report)
	default:
		fmt.Fprintln(r.out, outcome.Value.Sprint(r.Cfg))
	}
	if r.tty && !outcome.Silent {
		fmt.Fprintln(r.out)
	}
	return true
}

// special dispatches the `)vars`, `)funcs`, and `)angles` introspection
// commands (SPEC_FULL §12), following ivy's own `)debug name` special
// command style.
func (r *REPL) special(cmd string) {
	switch cmd {
	case ")vars":
		for _, name := range r.Env.Names() {
			if v, ok := r.Env.Lookup(name); ok {
				fmt.Fprintf(r.out, "%s = %s\n", name, v.Sprint(r.Cfg))
			}
		}
	case ")funcs":
		for _, name := range r.Env.Names() {
			if v, ok := r.Env.Lookup(name); ok {
				if fn, ok := v.(value.Function); ok {
					fmt.Fprintf(r.out, "%s(%s) = %s\n", name, fn.Param, fn.Body)
				}
			}
		}
	case ")angles":
		if r.Cfg.AngleMode() == config.Degrees {
			r.Cfg.SetAngleMode(config.Radians)
		} else {
			r.Cfg.SetAngleMode(config.Degrees)
		}
		fmt.Fprintf(r.out, "angle mode: %s\n", r.Cfg.AngleMode())
	case ")radians":
		r.Cfg.SetAngleMode(config.Radians)
		fmt.Fprintln(r.out, "angle mode: radians")
	case ")degrees":
		r.Cfg.SetAngleMode(config.Degrees)
		fmt.Fprintln(r.out, "angle mode: degrees")
	default:
		if name, ok := strings.CutPrefix(cmd, ")debug "); ok {
			name = strings.TrimSpace(name)
			enabled := !r.Cfg.Debug(name)
			r.Cfg.SetDebug(name, enabled)
			fmt.Fprintf(r.out, "debug %s: %v\n", name, enabled)
			return
		}
		fmt.Fprintf(r.out, "Error: unknown command %q\n", cmd)
	}
}
