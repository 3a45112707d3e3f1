package transform

import "fmt"

// Kind identifies one of the six SVG transform functions.
type Kind int

// The six transform kinds, in the order they appear in the SVG
// transform attribute specification.
const (
	Scale Kind = iota
	Translate
	Rotate
	SkewX
	SkewY
	Matrix
)

// kindNames maps each Kind to its SVG function name. Names are
// case-sensitive: "skewX" is valid, "skewx" is not.
var kindNames = [...]string{
	Scale:     "scale",
	Translate: "translate",
	Rotate:    "rotate",
	SkewX:     "skewX",
	SkewY:     "skewY",
	Matrix:    "matrix",
}

// maxParams is the arity ceiling per kind. The parser applies further
// refinements on top of this (rotate never takes 2, matrix takes
// exactly 6).
var maxParams = [...]int{
	Scale:     2,
	Translate: 2,
	Rotate:    3,
	SkewX:     1,
	SkewY:     1,
	Matrix:    6,
}

// String returns the SVG function name for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MaxParams returns the maximum number of numeric parameters the kind
// accepts in the transform attribute grammar.
func (k Kind) MaxParams() int {
	return maxParams[k]
}

// KindFromName resolves an SVG function name to its Kind. The second
// return value is false when the name is not one of the six transform
// functions.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Command is a single parsed transform function: a kind plus its
// numeric parameters in source order.
//
// Commands are produced exclusively by the parser and are immutable
// once produced. Params always satisfies the arity contract for Kind:
// scale/translate 1-2, skewX/skewY exactly 1, rotate exactly 1
// (pivoted rotates are desugared by the parser), matrix exactly 6.
type Command struct {
	Kind   Kind
	Params []float64
}

// Clone returns a deep copy of the command. Use it before exposing a
// stored command to callers that may mutate Params.
func (c Command) Clone() Command {
	params := make([]float64, len(c.Params))
	copy(params, c.Params)
	return Command{Kind: c.Kind, Params: params}
}

// CloneAll deep-copies a command list. A nil input yields nil.
func CloneAll(cmds []Command) []Command {
	if cmds == nil {
		return nil
	}
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = c.Clone()
	}
	return out
}

// String renders the command in transform-attribute syntax, e.g.
// "translate(4, 8)". Used for diagnostics and golden snapshots.
func (c Command) String() string {
	s := c.Kind.String() + "("
	for i, p := range c.Params {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g", p)
	}
	return s + ")"
}
