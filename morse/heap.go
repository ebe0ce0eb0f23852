package morse

// cellItem pairs a cell with its cached priority, the unit pushed onto the
// flow/coflow priority queues. Grounded on dijkstra's nodeItem/nodePQ pair:
// a tiny value type plus a container/heap.Interface slice wrapper, rather
// than reaching for a generic heap library.
type cellItem struct {
	cell     int
	priority int
}

// maxPQ is a max-heap of cellItem by priority, used by flow to always pop
// the highest-priority queen first.
type maxPQ []cellItem

func (pq maxPQ) Len() int            { return len(pq) }
func (pq maxPQ) Less(i, j int) bool  { return pq[i].priority > pq[j].priority }
func (pq maxPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *maxPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *maxPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// minPQ is a min-heap of cellItem by priority, used by coflow to always pop
// the lowest-priority king first.
type minPQ []cellItem

func (pq minPQ) Len() int            { return len(pq) }
func (pq minPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq minPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *minPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *minPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
