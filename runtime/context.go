package runtime

import (
	"io"
	"log/slog"
	"os"
)

// Context bundles the capabilities an evaluating statement needs beyond
// its own closure: where Print statements write, a logger for
// diagnostic tracing, and the global class table ClassDefinition
// populates. It is passed by pointer through every Execute call rather
// than threaded as separate arguments, the same capability-bundle shape
// cmdneo-tree_lox's Interpreter struct gives its interpreter loop.
type Context struct {
	Output  io.Writer
	Logger  *slog.Logger
	Classes map[string]*Class

	maxCallDepth int
	callDepth    int
}

// defaultMaxCallDepth bounds recursive ClassInstance.Call nesting. A
// C++ build of this interpreter would eventually exhaust its native
// call stack on unbounded recursion; Go's growable goroutine stack
// would instead run for a long time before a fatal, unrecoverable
// out-of-memory, which is worse for a script author than a prompt
// *RuntimeError. The limit only bounds recursion through method calls,
// not through Compound/IfElse nesting depth, which tracks the size of
// the AST rather than anything a running script can grow unbounded.
const defaultMaxCallDepth = 1000

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		c.Logger = logger
	}
}

// WithMaxCallDepth overrides the default recursive call-depth limit.
func WithMaxCallDepth(depth int) Option {
	return func(c *Context) {
		c.maxCallDepth = depth
	}
}

// WithClasses seeds the class table with already-defined classes
// (e.g. builtins a host program wants visible before the first
// ClassDefinition runs).
func WithClasses(classes map[string]*Class) Option {
	return func(c *Context) {
		for name, class := range classes {
			c.Classes[name] = class
		}
	}
}

// NewContext builds a Context writing to out. The default logger writes
// warnings and above to stderr; pass WithLogger to capture the Debug-
// level method-resolution/instance-construction/class-binding trace the
// evaluator emits.
func NewContext(out io.Writer, opts ...Option) *Context {
	c := &Context{
		Output:       out,
		Logger:       slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		Classes:      make(map[string]*Class),
		maxCallDepth: defaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefineClass registers class in the context's global class table,
// overwriting any prior class of the same name.
func (c *Context) DefineClass(class *Class) {
	c.Classes[class.Name] = class
}

// LookupClass returns the class registered under name, if any.
func (c *Context) LookupClass(name string) (*Class, bool) {
	class, ok := c.Classes[name]
	return class, ok
}

// enterCall increments the active call depth, failing once
// maxCallDepth is exceeded. exitCall must be called exactly once for
// every enterCall that succeeded, regardless of how the call returned.
func (c *Context) enterCall() error {
	c.callDepth++
	if c.callDepth > c.maxCallDepth {
		c.callDepth--
		return &RuntimeError{Message: "maximum call depth exceeded"}
	}
	return nil
}

func (c *Context) exitCall() {
	c.callDepth--
}
