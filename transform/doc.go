// Package transform provides the command types shared by the parser and
// the matrix engine.
//
// This package contains type definitions only. Both parser and matrix
// import transform; transform imports nothing from this module. This
// keeps the command representation the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Kind is a closed enum over the six SVG transform functions;
//     consumers switch exhaustively on it
//   - A Command is immutable once produced by the parser; use Clone
//     before handing one to code that may mutate Params
//   - Function names are matched case-sensitively ("skewX", not "skewx"),
//     per the SVG attribute grammar
package transform
