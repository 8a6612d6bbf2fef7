package expand

// nodeItem is one entry in the frontier priority queue: a vertex index and
// its tentative distance from the start. Stale entries (a vertex already
// settled at a better distance) are left in place and filtered on pop
// instead of being decrease-keyed or removed eagerly.
type nodeItem struct {
	idx  int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance, with
// ties broken by ascending vertex index so the traversal's settlement
// order — and therefore its output — is fully deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
