package gridastar

// World is a sparse grid: only cells that have been referenced hold a Node.
// A cell without a node is passable and unvisited.
type World struct {
	nodes map[Coord]*Node
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{nodes: make(map[Coord]*Node)}
}

// Get returns the node at c without creating it.
func (w *World) Get(c Coord) (*Node, bool) {
	n, ok := w.nodes[c]
	return n, ok
}

// GetOrCreate returns the node at c, materialising a default one first if
// needed.
func (w *World) GetOrCreate(c Coord) *Node {
	if n, ok := w.nodes[c]; ok {
		return n
	}
	n := newNode(c)
	w.nodes[c] = n
	return n
}

// Remove drops the node at c, reverting the cell to its default state.
func (w *World) Remove(c Coord) {
	delete(w.nodes, c)
}

// Clear drops every node.
func (w *World) Clear() {
	clear(w.nodes)
}

// Len returns the number of materialised nodes.
func (w *World) Len() int {
	return len(w.nodes)
}
