package gograph

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// ============================================================
// Parse
// ============================================================

// Parse formats text and builds the expression it describes. Malformed
// input yields a *ParseError; Parse never panics on user text.
func Parse(text string) (Expr, error) {
	s := Format(text)
	if s == "" {
		return nil, parseErr(s, "", ErrEmpty, "nothing to parse")
	}
	if err := checkBalance(s); err != nil {
		return nil, err
	}
	return parseExpr(s, s)
}

func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

var functionPrefix = regexp2.MustCompile(`^([yY]|[a-zA-Z]\([xX]\))\s*=\s*`, regexp2.None)

// ParseFunction accepts the "y = ..." and "f(x) = ..." spellings of a
// function definition as well as a bare expression.
func ParseFunction(text string) (Expr, error) {
	text = strings.TrimSpace(text)
	if stripped, err := functionPrefix.Replace(text, "", -1, 1); err == nil {
		text = stripped
	}
	return Parse(text)
}

func checkBalance(s string) error {
	parens, angles := 0, 0
	for _, c := range s {
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		case '<':
			angles++
		case '>':
			angles--
		}
		if parens < 0 {
			return parseErr(s, "", ErrUnbalanced, "')' without matching '('")
		}
		if angles < 0 {
			return parseErr(s, "", ErrUnbalanced, "'>' without matching '<'")
		}
	}
	if parens != 0 {
		return parseErr(s, "", ErrUnbalanced, "%d unclosed '('", parens)
	}
	if angles != 0 {
		return parseErr(s, "", ErrUnbalanced, "%d unclosed '<'", angles)
	}
	return nil
}

// ============================================================
// Term splitting and identification
// ============================================================

// token is either an operand or one of the operator bytes + - * / ^.
type token struct {
	expr Expr
	op   byte
}

func (t token) isOp() bool { return t.expr == nil }

// splitTerms cuts s at spaces that are outside every (...) and <...> group.
func splitTerms(s string) []string {
	var terms []string
	parens, angles, start := 0, 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '<':
			angles++
		case '>':
			angles--
		case ' ':
			if parens == 0 && angles == 0 {
				terms = append(terms, s[start:i])
				start = i + 1
			}
		}
	}
	return append(terms, s[start:])
}

func parseExpr(s, input string) (Expr, error) {
	if s == "" {
		return nil, parseErr(input, "", ErrEmpty, "empty group")
	}
	terms := splitTerms(s)
	tokens := make([]token, 0, len(terms))
	for _, term := range terms {
		tok, err := identify(term, input)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return build(tokens, input)
}

// identify classifies one term. The order of the cases matters.
func identify(term, input string) (token, error) {
	switch {
	case term == "":
		return token{}, parseErr(input, "", ErrInvalidTerm, "empty term")
	case len(term) == 1 && strings.IndexByte("+-*/^", term[0]) >= 0:
		return token{op: term[0]}, nil
	case isDigits(term):
		n, err := strconv.Atoi(term)
		if err != nil {
			return token{}, parseErr(input, term, ErrInvalidTerm, "integer out of range")
		}
		return token{expr: N(n)}, nil
	case term == "x" || term == "X":
		return token{expr: X()}, nil
	case strings.HasPrefix(term, "root"):
		e, err := parseRoot(term, input)
		return token{expr: e}, err
	case strings.HasPrefix(term, "sqrt"):
		arg, err := parseCall(term, term[len("sqrt"):], input)
		if err != nil {
			return token{}, err
		}
		return token{expr: RootOf(N(2), arg)}, nil
	case strings.HasPrefix(term, "cbrt"):
		arg, err := parseCall(term, term[len("cbrt"):], input)
		if err != nil {
			return token{}, err
		}
		return token{expr: RootOf(N(3), arg)}, nil
	case strings.HasPrefix(term, "log"):
		e, err := parseLog(term, input)
		return token{expr: e}, err
	case term[0] == '(' && matching(term, 0) == len(term)-1:
		e, err := parseExpr(term[1:len(term)-1], input)
		return token{expr: e}, err
	}
	return token{}, parseErr(input, term, ErrInvalidTerm, "unrecognized term")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// matching returns the index of the delimiter closing s[open], or -1.
func matching(s string, open int) int {
	var closer byte
	switch s[open] {
	case '(':
		closer = ')'
	case '<':
		closer = '>'
	default:
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case s[open]:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseCall parses the "(expr)" argument that must make up all of rest.
func parseCall(term, rest, input string) (Expr, error) {
	if rest == "" || rest[0] != '(' || matching(rest, 0) != len(rest)-1 {
		return nil, parseErr(input, term, ErrInvalidTerm, "expected a parenthesized argument")
	}
	return parseExpr(rest[1:len(rest)-1], input)
}

// parseIndex reads a leading "<expr>" group or integer from rest and
// returns it with the remainder.
func parseIndex(term, rest, input string, signed bool) (Expr, string, error) {
	if rest == "" {
		return nil, rest, nil
	}
	if rest[0] == '<' {
		end := matching(rest, 0)
		if end < 0 {
			return nil, "", parseErr(input, term, ErrUnbalanced, "unclosed '<'")
		}
		e, err := parseExpr(rest[1:end], input)
		if err != nil {
			return nil, "", err
		}
		if n, ok := literalInt(e); ok && n < 2 && n > -2 {
			return nil, "", parseErr(input, term, ErrInvalidTerm, "index %d is below 2", n)
		}
		return e, rest[end+1:], nil
	}
	i := 0
	if signed && (rest[0] == '+' || rest[0] == '-') {
		i++
	}
	j := i
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	if j == i {
		return nil, rest, nil
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return nil, "", parseErr(input, term, ErrInvalidTerm, "integer out of range")
	}
	if n < 2 && n > -2 {
		return nil, "", parseErr(input, term, ErrInvalidTerm, "index %d is below 2", n)
	}
	return N(n), rest[j:], nil
}

// literalInt reads n or 0 - n.
func literalInt(e Expr) (int, bool) {
	if v, ok := num(e); ok {
		return v, true
	}
	if z, n, ok := as[*Sub](e); ok && isNum(z, 0) {
		if v, ok := num(n); ok {
			return -v, true
		}
	}
	return 0, false
}

func parseRoot(term, input string) (Expr, error) {
	degree, rest, err := parseIndex(term, term[len("root"):], input, true)
	if err != nil {
		return nil, err
	}
	if degree == nil {
		return nil, parseErr(input, term, ErrInvalidTerm, "root needs a degree")
	}
	radicand, err := parseCall(term, rest, input)
	if err != nil {
		return nil, err
	}
	return RootOf(degree, radicand), nil
}

func parseLog(term, input string) (Expr, error) {
	base, rest, err := parseIndex(term, term[len("log"):], input, false)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = N(10)
	}
	if b, ok := literalInt(base); ok && b < 2 {
		return nil, parseErr(input, term, ErrInvalidTerm, "log base %d is below 2", b)
	}
	arg, err := parseCall(term, rest, input)
	if err != nil {
		return nil, err
	}
	return LogOf(base, arg), nil
}

// ============================================================
// Expression builder
// ============================================================

var precedence = []struct {
	ops   string
	right bool
}{
	{"^", true},
	{"*/", false},
	{"+-", false},
}

func build(tokens []token, input string) (Expr, error) {
	if len(tokens)%2 == 0 {
		return nil, parseErr(input, "", ErrMalformed, "operator without a right operand")
	}
	for i, t := range tokens {
		if wantOp := i%2 == 1; t.isOp() != wantOp {
			if wantOp {
				return nil, parseErr(input, "", ErrMalformed, "missing operator before term %d", i/2+1)
			}
			return nil, parseErr(input, string(t.op), ErrMalformed, "operator without an operand")
		}
	}
	if len(tokens) == 1 {
		return tokens[0].expr, nil
	}

	for _, group := range precedence {
		fold := func(i int) {
			e := combine(tokens[i].op, tokens[i-1].expr, tokens[i+1].expr)
			tokens = append(tokens[:i-1], append([]token{{expr: e}}, tokens[i+2:]...)...)
		}
		if group.right {
			for i := len(tokens) - 2; i > 0; i -= 2 {
				if strings.IndexByte(group.ops, tokens[i].op) >= 0 {
					fold(i)
				}
			}
			continue
		}
		for i := 1; i < len(tokens); {
			if strings.IndexByte(group.ops, tokens[i].op) >= 0 {
				fold(i)
				continue
			}
			i += 2
		}
	}
	if len(tokens) != 1 || tokens[0].isOp() {
		panic("gograph: expression builder left " + strconv.Itoa(len(tokens)) + " tokens")
	}
	return tokens[0].expr, nil
}

func combine(op byte, l, r Expr) Expr {
	switch op {
	case '+':
		return AddOf(l, r)
	case '-':
		return SubOf(l, r)
	case '*':
		return MulOf(l, r)
	case '/':
		return DivOf(l, r)
	}
	return PowOf(l, r)
}
