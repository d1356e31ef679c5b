package gridastar

import "math"

// Unreached is the cost of a node no path has reached yet.
const Unreached = math.MaxFloat64

// Node holds the search state of one grid cell.
type Node struct {
	coord     Coord
	passable  bool
	visited   bool
	pathPart  bool
	parent    Coord
	hasParent bool
	g         float64
	h         float64
}

func newNode(c Coord) *Node {
	return &Node{
		coord:    c,
		passable: true,
		g:        Unreached,
		h:        Unreached,
	}
}

func (n *Node) Coord() Coord   { return n.coord }
func (n *Node) Passable() bool { return n.passable }
func (n *Node) Visited() bool  { return n.visited }
func (n *Node) PathPart() bool { return n.pathPart }
func (n *Node) GCost() float64 { return n.g }
func (n *Node) HCost() float64 { return n.h }

// Parent returns the cell this node was reached from on its best known path.
func (n *Node) Parent() (Coord, bool) { return n.parent, n.hasParent }

// FCost is the search priority g + h. It stays Unreached until both parts
// are known.
func (n *Node) FCost() float64 {
	if n.g == Unreached || n.h == Unreached {
		return Unreached
	}
	return n.g + n.h
}

// NodeView is the read-only subset of a node's state used for rendering.
type NodeView struct {
	Coord    Coord `json:"coord"`
	Visited  bool  `json:"visited"`
	Passable bool  `json:"passable"`
	PathPart bool  `json:"path_part"`
}

func (n *Node) view() NodeView {
	return NodeView{
		Coord:    n.coord,
		Visited:  n.visited,
		Passable: n.passable,
		PathPart: n.pathPart,
	}
}
