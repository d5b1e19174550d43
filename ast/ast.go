// Package ast defines the evaluator's node set: every expression and
// statement the language has, each directly executable against a
// runtime.Closure and runtime.Context. There is no separate
// compile/resolve pass — building a tree out of these nodes and calling
// Execute on its root is the entire evaluation story. Building that
// tree from source text is an external parser's job; this package only
// consumes the tree, it never produces one from tokens.
package ast

import "github.com/mavmi/mython-interpreter/runtime"

// Statement is implemented by every node, expression or statement
// alike: the language has no syntactic distinction between the two at
// evaluation time, since every construct produces a value (None for
// constructs with no natural result, such as Print or Compound).
type Statement interface {
	Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error)
}

// Statement satisfies runtime.MethodBody structurally — no adapter type
// or explicit implements-list needed, by construction of both
// interfaces' method sets.
var _ runtime.MethodBody = Statement(nil)
