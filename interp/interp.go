// Package interp is the top-level driver that runs a tree of ast
// statements against a closure and context.
package interp

import (
	"fmt"

	"github.com/mavmi/mython-interpreter/ast"
	"github.com/mavmi/mython-interpreter/runtime"
)

// Run executes stmts in order against closure and ctx, returning the
// first error encountered. Every *runtime.RuntimeError is returned as
// an ordinary error by the ast/runtime dispatch code itself (see
// DESIGN.md); the one in-band signal still carried by panic is
// returnSignal, which a top-level Return outside any MethodBody would
// raise — a programming error in the tree, not a script-level failure,
// so Run does not recover it.
func Run(stmts []ast.Statement, closure *runtime.Closure, ctx *runtime.Context) error {
	for _, stmt := range stmts {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
	}
	return nil
}
