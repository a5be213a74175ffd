package pickergrid

// nodePool keeps released RealizedNodes for reuse. After warmup, scrolling
// through a grid allocates no nodes.
type nodePool struct {
	free []*RealizedNode
}

// Acquire returns a node reset to defaults, recycled when possible.
func (p *nodePool) Acquire() *RealizedNode {
	if n := len(p.free); n > 0 {
		node := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		nodeDefaults(node)
		return node
	}
	return newRealizedNode()
}

// Release returns a disposed node to the pool.
// Panics if node is nil or still live.
func (p *nodePool) Release(node *RealizedNode) {
	if node == nil {
		panic("pickergrid: cannot release nil node")
	}
	if !node.disposed {
		panic("pickergrid: releasing a node that was not disposed")
	}
	p.free = append(p.free, node)
}

// Len returns the number of pooled nodes.
func (p *nodePool) Len() int {
	return len(p.free)
}
