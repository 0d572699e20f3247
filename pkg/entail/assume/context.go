package assume

import "github.com/cognicore/entail/pkg/entail/prop"

// Context is an ordered collection of globally active assumptions,
// consulted by every query in addition to per-query assumptions. It is
// mutable without synchronization: concurrent mutation is unsupported and
// callers must serialize. The revision counter lets caches detect that the
// context changed under them.
type Context struct {
	props []prop.Prop
	rev   uint64
}

// NewContext returns a context holding the given assumptions
func NewContext(ps ...prop.Prop) *Context {
	c := &Context{}
	c.Add(ps...)
	return c
}

// Add appends assumptions to the context
func (c *Context) Add(ps ...prop.Prop) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		c.props = append(c.props, p)
		c.rev++
	}
}

// Remove drops the first assumption structurally equal to p, reporting
// whether one was found
func (c *Context) Remove(p prop.Prop) bool {
	for i, have := range c.props {
		if prop.Equal(have, p) {
			c.props = append(c.props[:i], c.props[i+1:]...)
			c.rev++
			return true
		}
	}
	return false
}

// Clear removes every assumption
func (c *Context) Clear() {
	if len(c.props) == 0 {
		return
	}
	c.props = nil
	c.rev++
}

// All returns a copy of the active assumptions in insertion order
func (c *Context) All() []prop.Prop {
	out := make([]prop.Prop, len(c.props))
	copy(out, c.props)
	return out
}

// Len returns the number of active assumptions
func (c *Context) Len() int { return len(c.props) }

// Rev returns the mutation counter
func (c *Context) Rev() uint64 { return c.rev }

var globalContext = NewContext()

// Global returns the process-wide default context
func Global() *Context {
	return globalContext
}
