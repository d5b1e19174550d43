package runtime

// Closure is a single flat lexical scope: local variables and method
// parameters, name-indexed. The language has no nested block scoping
// below method granularity, so one map per call frame is enough — there
// is no parent-scope chain to walk, unlike cmdneo-tree_lox's
// slot-indexed, depth-chained LocalEnv.
type Closure struct {
	vars map[string]ObjectHolder
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]ObjectHolder)}
}

// Get looks up name, reporting whether it is bound.
func (c *Closure) Get(name string) (ObjectHolder, bool) {
	h, ok := c.vars[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding.
func (c *Closure) Set(name string, h ObjectHolder) {
	c.vars[name] = h
}

// Has reports whether name is bound.
func (c *Closure) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}
