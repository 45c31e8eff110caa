package search

import (
	"container/heap"
	"fmt"
	"strings"
)

// Frontier holds the nodes waiting to be expanded. Its ordering discipline
// decides which node is removed next.
type Frontier[A, S any] interface {
	Push(node Node[A, S])
	// Pop removes the next node. It reports false when the frontier is empty.
	Pop() (Node[A, S], bool)
	Len() int
}

// FrontierFunc returns a fresh, empty frontier. It is called once per search.
type FrontierFunc[A, S any] func() Frontier[A, S]

// Queue is a FIFO frontier, giving breadth-first search
type Queue[A, S any] struct {
	nodes []Node[A, S]
	head  int
}

// NewQueue creates an empty FIFO frontier
func NewQueue[A, S any]() Frontier[A, S] {
	return &Queue[A, S]{}
}

func (q *Queue[A, S]) Push(node Node[A, S]) {
	q.nodes = append(q.nodes, node)
}

func (q *Queue[A, S]) Pop() (Node[A, S], bool) {
	if q.head == len(q.nodes) {
		return Node[A, S]{}, false
	}
	node := q.nodes[q.head]
	q.nodes[q.head] = Node[A, S]{}
	q.head++

	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.nodes) {
		n := copy(q.nodes, q.nodes[q.head:])
		q.nodes = q.nodes[:n]
		q.head = 0
	}
	return node, true
}

func (q *Queue[A, S]) Len() int {
	return len(q.nodes) - q.head
}

// Stack is a LIFO frontier, giving depth-first search
type Stack[A, S any] struct {
	nodes []Node[A, S]
}

// NewStack creates an empty LIFO frontier
func NewStack[A, S any]() Frontier[A, S] {
	return &Stack[A, S]{}
}

func (s *Stack[A, S]) Push(node Node[A, S]) {
	s.nodes = append(s.nodes, node)
}

func (s *Stack[A, S]) Pop() (Node[A, S], bool) {
	last := len(s.nodes) - 1
	if last < 0 {
		return Node[A, S]{}, false
	}
	node := s.nodes[last]
	s.nodes[last] = Node[A, S]{}
	s.nodes = s.nodes[:last]
	return node, true
}

func (s *Stack[A, S]) Len() int {
	return len(s.nodes)
}

// PriorityQueue removes the node that orders first under less. Nodes that
// compare equal come out in insertion order.
type PriorityQueue[A, S any] struct {
	items priorityItems[A, S]
	seq   uint64
}

// NewPriorityQueue returns a constructor for priority frontiers ordered by less
func NewPriorityQueue[A, S any](less func(a, b Node[A, S]) bool) FrontierFunc[A, S] {
	return func() Frontier[A, S] {
		return &PriorityQueue[A, S]{items: priorityItems[A, S]{less: less}}
	}
}

// NewPathCostQueue creates a frontier ordered by path cost, giving uniform-cost search
func NewPathCostQueue[A, S any]() Frontier[A, S] {
	return NewPriorityQueue(func(a, b Node[A, S]) bool {
		return a.PathCost() < b.PathCost()
	})()
}

func (pq *PriorityQueue[A, S]) Push(node Node[A, S]) {
	heap.Push(&pq.items, priorityItem[A, S]{node: node, seq: pq.seq})
	pq.seq++
}

func (pq *PriorityQueue[A, S]) Pop() (Node[A, S], bool) {
	if pq.items.Len() == 0 {
		return Node[A, S]{}, false
	}
	item := heap.Pop(&pq.items).(priorityItem[A, S])
	return item.node, true
}

func (pq *PriorityQueue[A, S]) Len() int {
	return pq.items.Len()
}

type priorityItem[A, S any] struct {
	node Node[A, S]
	seq  uint64
}

type priorityItems[A, S any] struct {
	entries []priorityItem[A, S]
	less    func(a, b Node[A, S]) bool
}

func (p *priorityItems[A, S]) Len() int { return len(p.entries) }

func (p *priorityItems[A, S]) Less(i, j int) bool {
	a, b := p.entries[i], p.entries[j]
	if p.less(a.node, b.node) {
		return true
	}
	if p.less(b.node, a.node) {
		return false
	}
	return a.seq < b.seq
}

func (p *priorityItems[A, S]) Swap(i, j int) {
	p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
}

func (p *priorityItems[A, S]) Push(x any) {
	p.entries = append(p.entries, x.(priorityItem[A, S]))
}

func (p *priorityItems[A, S]) Pop() any {
	last := len(p.entries) - 1
	item := p.entries[last]
	p.entries[last] = priorityItem[A, S]{}
	p.entries = p.entries[:last]
	return item
}

// FrontierByName maps a discipline name to its constructor:
// bfs/fifo, dfs/lifo and ucs/cost
func FrontierByName[A, S any](name string) (FrontierFunc[A, S], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "fifo", "breadth-first":
		return NewQueue[A, S], nil
	case "dfs", "lifo", "depth-first":
		return NewStack[A, S], nil
	case "ucs", "cost", "uniform-cost":
		return NewPathCostQueue[A, S], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrontier, name)
	}
}
