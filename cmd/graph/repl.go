package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/repr"
	"github.com/peterh/liner"

	"github.com/njchilds90/gograph"
)

const (
	historyFile = ".gograph_history"
	promptMain  = "y = "
	promptCont  = "... "
	banner      = "gograph. Enter an expression in x, or :help."
)

const replHelp = `  <expr>             simplify, and evaluate when constant
  :solve <expr>      solve y = <expr> for x
  :latex <expr>      print LaTeX
  :at <x> <expr>     evaluate at x
  :tree <expr>       dump the simplified tree
  :quit              leave`

// ============================================================
// repl
// ============================================================

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, ok := readBalanced(ln)
		if !ok {
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, ":quit") {
			return 0
		}
		if err := replLine(os.Stdout, line); err != nil {
			reportError(err)
			continue
		}
		ln.AppendHistory(line)
	}
	return 0
}

// readBalanced keeps prompting while the input has unclosed parentheses.
func readBalanced(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)

		src := b.String()
		if strings.Count(src, "(") > strings.Count(src, ")") {
			continue
		}
		return src, true
	}
}

// replLine runs one REPL input and writes its result to w.
func replLine(w io.Writer, line string) error {
	cmd, rest := "", line
	if strings.HasPrefix(line, ":") {
		cmd, rest, _ = strings.Cut(line, " ")
		cmd = strings.ToLower(cmd)
		rest = strings.TrimSpace(rest)
	}

	switch cmd {
	case ":help":
		fmt.Fprintln(w, replHelp)
		return nil
	case ":at":
		xs, src, _ := strings.Cut(rest, " ")
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return fmt.Errorf(":at needs a number, got %q", xs)
		}
		e, err := gograph.ParseFunction(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatFloat(gograph.EvaluateAt(e, x)))
		return nil
	case "", ":solve", ":latex", ":tree":
	default:
		return fmt.Errorf("unknown command %s. Type :help for a list", cmd)
	}

	e, err := gograph.ParseFunction(rest)
	if err != nil {
		return err
	}

	switch cmd {
	case ":solve":
		sols, err := gograph.SolveForX(e)
		if err != nil {
			return err
		}
		for _, s := range sols {
			fmt.Fprintln(w, "x =", gograph.DescribeSolution(s))
		}
		return nil
	case ":latex":
		fmt.Fprintln(w, gograph.LaTeX(e))
		return nil
	}

	s, err := gograph.TrySimplify(e)
	if err != nil {
		return err
	}
	if cmd == ":tree" {
		fmt.Fprintln(w, repr.String(s, repr.Indent("  ")))
		return nil
	}
	fmt.Fprintln(w, gograph.String(s))
	if !gograph.ContainsVariable(s) {
		v, err := gograph.TryEvaluate(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "  ≈", formatFloat(v))
	}
	return nil
}
