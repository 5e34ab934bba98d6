// cmd/graph/main.go - command-line front end for gograph
//
// Usage:
//
//	graph eval     [-x 2] <expr>
//	graph simplify [-latex] [-tree] <expr>
//	graph solve    [-trace] <expr>
//	graph latex    <expr>
//	graph table    [-from -5 -to 5 -steps 10] <expr>
//	graph repl
//
// Every command except repl also reads one expression per line from a
// file given with -f.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/repr"

	"github.com/njchilds90/gograph"
)

const appName = "graph"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "simplify":
		os.Exit(cmdSimplify(os.Args[2:]))
	case "solve":
		os.Exit(cmdSolve(os.Args[2:]))
	case "latex":
		os.Exit(cmdLatex(os.Args[2:]))
	case "table":
		os.Exit(cmdTable(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`gograph command line

Usage:
  %s eval     [-x <value>] [-f file] <expr>     Evaluate, at x when given.
  %s simplify [-latex] [-tree] [-f file] <expr> Simplify.
  %s solve    [-trace] [-f file] <expr>         Solve y = <expr> for x.
  %s latex    [-f file] <expr>                  Print LaTeX.
  %s table    [-from a] [-to b] [-steps n] <expr>
                                                Tabulate y = <expr>.
  %s repl                                       Start the interactive prompt.

Expressions may be written as "y = ..." or "f(x) = ...".
`, appName, appName, appName, appName, appName, appName)
}

// ============================================================
// Shared flag and input handling
// ============================================================

type command struct {
	fs   *flag.FlagSet
	file *string
	out  io.Writer
}

func newCommand(name string) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &command{fs: fs, file: fs.String("f", "", "read expressions from file, one per line"), out: os.Stdout}
}

// inputs returns the expressions to process: the lines of -f, or the
// remaining arguments joined into one expression.
func (c *command) inputs() ([]string, error) {
	if *c.file != "" {
		data, err := os.ReadFile(*c.file)
		if err != nil {
			return nil, err
		}
		return expressionLines(string(data)), nil
	}
	if c.fs.NArg() == 0 {
		return nil, errors.New("no expression given")
	}
	return []string{strings.Join(c.fs.Args(), " ")}, nil
}

// each parses every input and calls fn on it, reporting errors per line.
// It returns the process exit code.
func (c *command) each(args []string, fn func(src string, e gograph.Expr) error) int {
	if err := c.fs.Parse(args); err != nil {
		return 2
	}
	srcs, err := c.inputs()
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 2
	}
	code := 0
	for _, src := range srcs {
		e, err := gograph.ParseFunction(src)
		if err == nil {
			err = fn(src, e)
		}
		if err != nil {
			reportError(err)
			code = 1
		}
	}
	return code
}

func reportError(err error) {
	var pe *gograph.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintln(os.Stderr, red(pe.Snippet()))
		return
	}
	fmt.Fprintln(os.Stderr, red(err.Error()))
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// ============================================================
// Commands
// ============================================================

func cmdEval(args []string) int {
	c := newCommand("eval")
	xs := c.fs.String("x", "", "value of x")
	return c.each(args, func(_ string, e gograph.Expr) error {
		if *xs != "" {
			x, err := strconv.ParseFloat(*xs, 64)
			if err != nil {
				return fmt.Errorf("-x: %w", err)
			}
			fmt.Fprintln(c.out, formatFloat(gograph.EvaluateAt(e, x)))
			return nil
		}
		v, err := gograph.TryEvaluate(e)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, formatFloat(v))
		return nil
	})
}

func cmdSimplify(args []string) int {
	c := newCommand("simplify")
	asLatex := c.fs.Bool("latex", false, "print LaTeX")
	tree := c.fs.Bool("tree", false, "dump the simplified tree")
	return c.each(args, func(_ string, e gograph.Expr) error {
		s, err := gograph.TrySimplify(e)
		if err != nil {
			return err
		}
		switch {
		case *tree:
			fmt.Fprintln(c.out, repr.String(s, repr.Indent("  ")))
		case *asLatex:
			fmt.Fprintln(c.out, gograph.LaTeX(s))
		default:
			fmt.Fprintln(c.out, gograph.String(s))
		}
		return nil
	})
}

func cmdSolve(args []string) int {
	c := newCommand("solve")
	trace := c.fs.Bool("trace", false, "print every isolation step")
	return c.each(args, func(_ string, e gograph.Expr) error {
		res := gograph.Solve(e)
		if res.Function != nil {
			fmt.Fprintln(c.out, "y =", gograph.String(res.Function))
		}
		if *trace {
			for _, q := range res.Steps {
				fmt.Fprintln(c.out, "  ", q.String())
			}
		}
		if res.Error != "" {
			return errors.New(res.Error)
		}
		sols := make([]string, len(res.Solutions))
		for i, s := range res.Solutions {
			sols[i] = gograph.DescribeSolution(s)
		}
		fmt.Fprintln(c.out, "x =", strings.Join(sols, ", "))
		return nil
	})
}

func cmdLatex(args []string) int {
	c := newCommand("latex")
	return c.each(args, func(_ string, e gograph.Expr) error {
		fmt.Fprintln(c.out, gograph.LaTeX(e))
		return nil
	})
}

func cmdTable(args []string) int {
	c := newCommand("table")
	from := c.fs.Float64("from", -5, "first x")
	to := c.fs.Float64("to", 5, "last x")
	steps := c.fs.Int("steps", 10, "number of intervals")
	return c.each(args, func(_ string, e gograph.Expr) error {
		if *steps < 1 {
			return fmt.Errorf("-steps must be at least 1")
		}
		fmt.Fprintln(c.out, "y =", gograph.String(e))
		tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "x\ty\t")
		for _, p := range gograph.SampleRange(e, *from, *to, *steps) {
			y := "undefined"
			if p.Defined {
				y = formatFloat(p.Y)
			}
			fmt.Fprintf(tw, "%s\t%s\t\n", formatFloat(p.X), y)
		}
		return tw.Flush()
	})
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }
