// Package parser turns the SVG transform attribute grammar into
// transform.Command lists.
//
// Parsing is strict: functions must be contiguous, names are matched
// case-sensitively against the six SVG transform functions, and every
// arity violation is reported with a coded ParseError rather than
// recovered from. Nothing is retried and nothing is silently dropped;
// the caller decides what to do with a failed parse.
package parser
