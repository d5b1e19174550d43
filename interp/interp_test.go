package interp_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavmi/mython-interpreter/ast"
	"github.com/mavmi/mython-interpreter/interp"
	"github.com/mavmi/mython-interpreter/runtime"
)

// ExampleRun demonstrates wiring a hand-built tree through interp.Run,
// standing in for the out-of-scope CLI driver: define a class, build
// an instance, call a method, print the result.
func ExampleRun() {
	classDef := &ast.ClassDefinition{
		Name: "Greeter",
		Methods: []ast.MethodDef{
			{
				Name:   "greet",
				Params: []string{"self", "name"},
				Body: &ast.Compound{Statements: []ast.Statement{
					&ast.Return{Value: &ast.Add{
						Lhs: &ast.StringLiteral{Value: "hello, "},
						Rhs: &ast.VariableValue{Name: "name"},
					}},
				}},
			},
		},
	}

	program := []ast.Statement{
		classDef,
		&ast.Assignment{Name: "g", Value: &ast.NewInstance{ClassName: "Greeter"}},
		&ast.Print{Args: []ast.Statement{
			&ast.MethodCall{
				Object: &ast.VariableValue{Name: "g"},
				Method: "greet",
				Args:   []ast.Statement{&ast.StringLiteral{Value: "world"}},
			},
		}},
	}

	var out bytes.Buffer
	ctx := runtime.NewContext(&out)
	closure := runtime.NewClosure()

	if err := interp.Run(program, closure, ctx); err != nil {
		panic(err)
	}
	fmt.Print(out.String())
	// Output: hello, world
}

func TestRunStopsAtFirstError(t *testing.T) {
	var out bytes.Buffer
	ctx := runtime.NewContext(&out)
	closure := runtime.NewClosure()

	program := []ast.Statement{
		&ast.Print{Args: []ast.Statement{&ast.VariableValue{Name: "undefined"}}},
		&ast.Print{Args: []ast.Statement{&ast.StringLiteral{Value: "unreachable"}}},
	}

	err := interp.Run(program, closure, ctx)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunSucceedsOnEmptyProgram(t *testing.T) {
	ctx := runtime.NewContext(&bytes.Buffer{})
	closure := runtime.NewClosure()
	assert.NoError(t, interp.Run(nil, closure, ctx))
}
