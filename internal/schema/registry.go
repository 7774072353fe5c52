package schema

// Registry maps node names to nodes so Ref targets and forward references
// resolve. It is scoped to one generation run.
type Registry struct {
	nodes map[string]*Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// BuildRegistry collects every named node in the model, including named
// nodes nested inside other nodes, so references resolve regardless of
// declaration order or nesting depth.
func BuildRegistry(model Model) *Registry {
	r := NewRegistry()
	for _, n := range model {
		r.collect(n)
	}
	return r
}

func (r *Registry) collect(n *Node) {
	if n == nil {
		return
	}
	if n.Name != "" {
		r.nodes[n.Name] = n
	}
	r.collect(n.Items)
	for _, p := range n.Properties {
		r.collect(p.Type)
	}
	for _, p := range n.Patterns {
		r.collect(p.Value)
	}
	for _, m := range n.Members {
		r.collect(m)
	}
	r.collect(n.Wrapped)
	r.collect(n.Source)
}

// Register adds a named node.
func (r *Registry) Register(name string, n *Node) {
	r.nodes[name] = n
}

// Resolve returns the node registered under name, if any.
func (r *Registry) Resolve(name string) (*Node, bool) {
	n, ok := r.nodes[name]
	return n, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.nodes[name]
	return ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.nodes)
}
