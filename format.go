package gograph

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/width"
)

// ============================================================
// Formatting pass
// ============================================================
//
// Format turns free-form input into the strictly spaced form the term
// splitter expects: every binary operator surrounded by single spaces,
// implicit products made explicit and unary minus written as 0 - a.
// The steps are order-sensitive.

type rewrite struct {
	re   *regexp2.Regexp
	repl string
}

func rx(pattern, repl string) rewrite {
	return rewrite{re: regexp2.MustCompile(pattern, regexp2.None), repl: repl}
}

func (r rewrite) apply(s string) string {
	out, err := r.re.Replace(s, r.repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// fnStart matches the first characters of a term that can follow an
// operand implicitly multiplied with it.
const fnStart = `x|X|sqrt|cbrt|root|log`

var (
	typographic = strings.NewReplacer("−", "-", "×", "*", "·", "*", "÷", "/")
	braces      = strings.NewReplacer("{", "(", "[", "(", "]", ")", "}", ")")

	subscriptBase = rx(`(log|root)(0*[2-9]|0*[1-9]\d+)\(`, "$1<$2>(")
	spaceOps      = rx(`([-+]?\d+|\)|[xX])([-+*/^])(?=[-+]?\d|\(|`+fnStart+`)`, "$1 $2 ")
	varAfterTerm  = rx(`(?<=[^<+\s(-])[xX]`, " * x")
	varBeforeTerm = rx(`[xX](?=[^\s>)])`, "x * ")
	parenProduct  = rx(`(?<!log|root)([-+]?\d+)(?=\(|`+fnStart+`)|(\))(?=[-+]?\d)|(\))(?=\(|`+fnStart+`)`, "$1$2$3 * ")
	openProduct   = rx(`(?<=\)|\d|[xX])\(`, " * (")
	closeProduct  = rx(`\)(?=\(|\w)`, ") * ")
	fnProduct     = rx(`([-+]?\d+)(?=`+fnStart+`)`, "$1 * ")
	negateGroup   = rx(`-(\(|[xX])`, "0 - $1")
	negateNumber  = rx(`-([-+]?\d+)`, "(0 - $1)")
	plusPrefix    = rx(`(?<=[\s(])\+(?=[^)\s])`, "")
	emptyParens   = rx(`\([\s()]*\)`, "")
)

// Glyph forms written by String: log₂x, logx, ³√x, ˣ√(8) and √(x).
var (
	subscriptLog    = regexp2.MustCompile(`log([₀₁₂₃₄₅₆₇₈₉₋]+)`, regexp2.None)
	superscriptRoot = regexp2.MustCompile(`([⁰¹²³⁴⁵⁶⁷⁸⁹⁻]+)√`, regexp2.None)
	fromSubscript   = strings.NewReplacer("₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4", "₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9", "₋", "-")
	fromSuperscript = strings.NewReplacer("⁰", "0", "¹", "1", "²", "2", "³", "3", "⁴", "4", "⁵", "5", "⁶", "6", "⁷", "7", "⁸", "8", "⁹", "9", "⁻", "-")
	radicals        = strings.NewReplacer("ˣ√", "root<x>", "√", "sqrt")
	bareArgument    = rx(`((?:log|root)<[^<>]*>|log)(\d+|[xX])(?![\d(])`, "$1($2)")
)

// glyphIndex rewrites the glyph run captured by re as an <n> index.
func glyphIndex(re *regexp2.Regexp, digits *strings.Replacer, name, s string) string {
	out, err := re.ReplaceFunc(s, func(m regexp2.Match) string {
		return name + "<" + digits.Replace(m.GroupByNumber(1).String()) + ">"
	}, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// joinFields drops whitespace except between two digit runs, which stay
// separate terms so "2 3" is reported instead of read as 23.
func joinFields(s string) string {
	var sb strings.Builder
	prev := ""
	for _, f := range strings.Fields(s) {
		if prev != "" && isDigit(prev[len(prev)-1]) && isDigit(f[0]) {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
		prev = f
	}
	return sb.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func readGlyphs(s string) string {
	s = glyphIndex(subscriptLog, fromSubscript, "log", s)
	s = glyphIndex(superscriptRoot, fromSuperscript, "root", s)
	s = radicals.Replace(s)
	return bareArgument.apply(s)
}

func Format(raw string) string {
	s := width.Fold.String(raw)
	s = typographic.Replace(s)
	s = joinFields(s)
	s = strings.ReplaceAll(s, "--", "+")

	s = braces.Replace(s)
	s = readGlyphs(s)
	s = strings.ReplaceAll(s, "**", "^")
	s = strings.ReplaceAll(s, "log(", "log<10>(")
	s = subscriptBase.apply(s)

	s = spaceOps.apply(s)

	s = varAfterTerm.apply(s)
	s = varBeforeTerm.apply(s)
	s = parenProduct.apply(s)
	s = openProduct.apply(s)
	s = closeProduct.apply(s)
	s = strings.ReplaceAll(s, ")(", ") * (")
	s = fnProduct.apply(s)

	if strings.HasPrefix(s, "-") {
		s = "0 - " + s[1:]
	}
	s = negateGroup.apply(s)
	s = negateNumber.apply(s)

	s = strings.TrimPrefix(s, "+")
	s = plusPrefix.apply(s)

	s = emptyParens.apply(s)
	return strings.TrimSpace(s)
}
