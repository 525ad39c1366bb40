package textfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenKind classifies one lexical token of the bracketed-record grammar.
type tokenKind byte

const (
	tokLBracket tokenKind = iota
	tokRBracket
	tokNumber
)

type token struct {
	kind tokenKind
	text string // only meaningful for tokNumber
}

// lex strips `#` comment lines and blank lines, then splits what remains
// into `[`, `]` and number tokens, treating whitespace and commas as plain
// separators.
func lex(text string) ([]token, error) {
	var cleaned strings.Builder
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		cleaned.WriteString(trimmed)
		cleaned.WriteByte(' ')
	}

	var tokens []token
	runes := []rune(cleaned.String())
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '[':
			tokens = append(tokens, token{kind: tokLBracket})
			i++
		case r == ']':
			tokens = append(tokens, token{kind: tokRBracket})
			i++
		case r == ',' || r == ' ' || r == '\t':
			i++
		default:
			start := i
			for i < len(runes) && isNumberRune(runes[i]) {
				i++
			}
			if i == start {
				return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, r)
			}
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i])})
		}
	}
	return tokens, nil
}

func isNumberRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		return true
	default:
		return false
	}
}

// parser walks a flat token stream producing nested []interface{}/float64
// values, mirroring the bracketed-list shape dg_standard_input.py's
// literal_eval-based dg_my_eval produces from one input line.
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) atEOF() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() (token, bool) {
	if p.atEOF() {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

// parseList consumes a leading '[', a sequence of values, and a trailing
// ']', returning the values in order.
func (p *parser) parseList() ([]interface{}, error) {
	tok, ok := p.peek()
	if !ok || tok.kind != tokLBracket {
		return nil, fmt.Errorf("%w: expected '[' at record start", ErrSyntax)
	}
	p.pos++

	var values []interface{}
	for {
		tok, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("%w: unexpected end of input inside record", ErrSyntax)
		}
		if tok.kind == tokRBracket {
			p.pos++
			return values, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// parseValue parses either a nested list or a bare number.
func (p *parser) parseValue() (interface{}, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	if tok.kind == tokLBracket {
		return p.parseList()
	}
	if tok.kind != tokNumber {
		return nil, fmt.Errorf("%w: expected a number or '['", ErrSyntax)
	}
	p.pos++
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, tok.text)
	}
	return f, nil
}

// asFloats converts a []interface{} produced by parseList into a []float64,
// failing if any element is itself a nested list.
func asFloats(v []interface{}) ([]float64, error) {
	out := make([]float64, len(v))
	for i, e := range v {
		f, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: expected a flat list of numbers", ErrSyntax)
		}
		out[i] = f
	}
	return out, nil
}

// asInts is asFloats plus an integral check: every numeric token must have
// a zero fractional part to be used where the grammar expects a count or an
// identifier.
func asInts(v []interface{}) ([]int, error) {
	floats, err := asFloats(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(floats))
	for i, f := range floats {
		if f != float64(int(f)) {
			return nil, fmt.Errorf("%w: expected an integer, got %v", ErrSyntax, f)
		}
		out[i] = int(f)
	}
	return out, nil
}
