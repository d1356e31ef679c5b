package gridastar

// PriorityQueueItem is one open-set entry. A cell may have several entries
// when a cheaper route was found after it was queued; only the first one
// popped while the cell is unvisited is expanded.
type PriorityQueueItem struct {
	Cell  Coord
	FCost float64
	seq   uint64
}

// PriorityQueue is a container/heap min-queue on FCost. Among equal
// priorities the most recently pushed entry wins.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].seq > queue[j].seq
}
func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
