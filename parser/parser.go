package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/perlDreamer/Image-SVG-Transform/transform"
)

// commandPattern matches one transform function at the start of the
// remaining input: a name, an opening paren, a numbers region (digits,
// '.', ',', 'e'/'E', '-', whitespace), a closing paren, and an optional
// trailing separator (whitespace and/or a single comma).
//
// The pattern is anchored; Parse consumes the input prefix by prefix so
// that any text that does not form a function is detected as leftover
// rather than silently skipped.
var commandPattern = regexp.MustCompile(`^(\w+)\s*\(\s*([0-9eE.,\s-]*)\)\s*(?:,\s*)?`)

// Parse parses an SVG transform attribute into an ordered command list.
//
// A string that is empty after trimming parses successfully into an
// empty list (the caller interprets that as "clear all transforms").
// Functions are consumed left to right and must be contiguous: input
// with no recognizable function, or with unmatched text between or
// after functions, fails with UNPARSEABLE_INPUT. Arity violations fail
// with the matching ParseError code.
//
// rotate with a pivot is desugared here: rotate(a, cx, cy) becomes
// translate(cx, cy), rotate(a), translate(-cx, -cy). Every returned
// rotate command therefore has exactly one parameter.
func Parse(raw string) ([]transform.Command, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []transform.Command{}, nil
	}

	var cmds []transform.Command
	rest := trimmed
	for len(rest) > 0 {
		m := commandPattern.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		expanded, err := buildCommands(m[1], m[2])
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, expanded...)
		rest = rest[len(m[0]):]
	}

	if len(cmds) == 0 {
		return nil, NewUnparseableInputError(raw)
	}
	if rest != "" {
		// Leftover text between or after functions is a hard error, not
		// silently dropped.
		return nil, NewUnparseableInputError(rest)
	}
	return cmds, nil
}

// buildCommands validates one matched (name, numbers) pair and expands
// it into commands.
func buildCommands(name, blob string) ([]transform.Command, error) {
	kind, ok := transform.KindFromName(name)
	if !ok {
		return nil, NewUnknownTypeError(name)
	}

	params, err := parseNumbers(blob)
	if err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, NewNoParametersError(name)
	}
	if len(params) > kind.MaxParams() {
		return nil, NewTooManyParametersError(len(params), name)
	}

	switch kind {
	case transform.Rotate:
		if len(params) == 2 {
			return nil, NewInvalidRotateArityError()
		}
		if len(params) == 3 {
			return desugarRotate(params), nil
		}
	case transform.Matrix:
		if len(params) != 6 {
			return nil, NewInvalidMatrixArityError(len(params))
		}
	}

	return []transform.Command{{Kind: kind, Params: params}}, nil
}

// desugarRotate expands rotate(angle, cx, cy) into a translate to the
// pivot, the rotation about the origin, and the translate back.
func desugarRotate(params []float64) []transform.Command {
	angle, cx, cy := params[0], params[1], params[2]
	return []transform.Command{
		{Kind: transform.Translate, Params: []float64{cx, cy}},
		{Kind: transform.Rotate, Params: []float64{angle}},
		{Kind: transform.Translate, Params: []float64{-cx, -cy}},
	}
}

// parseNumbers splits a numbers region into floats. Commas and
// whitespace runs separate tokens, and a '-' that is not immediately
// preceded by 'e' or 'E' starts a new token: "4-7" is two numbers 4 and
// -7, while "1e-5" stays a single number.
func parseNumbers(blob string) ([]float64, error) {
	var params []float64
	var cur strings.Builder

	flush := func() error {
		if cur.Len() == 0 {
			return nil
		}
		tok := cur.String()
		cur.Reset()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return NewUnparseableInputError(tok)
		}
		params = append(params, v)
		return nil
	}

	var prev rune
	for _, r := range blob {
		switch {
		case r == ',' || unicode.IsSpace(r):
			if err := flush(); err != nil {
				return nil, err
			}
		case r == '-' && prev != 'e' && prev != 'E':
			if err := flush(); err != nil {
				return nil, err
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return params, nil
}
