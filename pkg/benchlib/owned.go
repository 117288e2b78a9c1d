package benchlib

// Array is an owned float64 array returned by AllocateArray.
type Array struct {
	data []float64
}

// AllocateArray returns an owned array of size elements with arr[i] = i.
func AllocateArray(size int) (*Array, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = float64(i)
	}
	return &Array{data: data}, nil
}

// Data returns the array contents, or nil after Free.
func (a *Array) Data() []float64 {
	if a == nil {
		return nil
	}
	return a.data
}

// Len returns the number of elements, 0 after Free.
func (a *Array) Len() int {
	return len(a.Data())
}

// Free releases the array. A second call returns ErrReleased.
func (a *Array) Free() error {
	if a == nil {
		return ErrNilPointer
	}
	if a.data == nil {
		return ErrReleased
	}
	a.data = nil
	return nil
}

// nilIndex terminates a list.
const nilIndex = -1

// Node is one list element. Next indexes the owning list's arena, nilIndex
// for the last node.
type Node struct {
	Payload int32
	Next    int32
}

// List is a singly linked list whose nodes live in one arena slice.
type List struct {
	nodes    []Node
	head     int32
	released bool
}

// CreateList builds a list of size nodes holding payloads 0..size-1 in list
// order.
func CreateList(size int) (*List, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size > int(^uint32(0)>>1) {
		return nil, ErrOutOfDomain
	}
	l := &List{nodes: make([]Node, size), head: nilIndex}
	// Built back to front so every node links to one already present.
	for i := size - 1; i >= 0; i-- {
		l.nodes[i] = Node{Payload: int32(i), Next: l.head}
		l.head = int32(i)
	}
	return l, nil
}

// Len returns the number of nodes.
func (l *List) Len() int {
	if l == nil || l.released {
		return 0
	}
	return len(l.nodes)
}

// Walk calls fn for each payload in list order.
func (l *List) Walk(fn func(payload int32)) error {
	if l == nil {
		return nil
	}
	if l.released {
		return ErrReleased
	}
	for i := l.head; i != nilIndex; i = l.nodes[i].Next {
		fn(l.nodes[i].Payload)
	}
	return nil
}

// SumList returns the sum of all payloads in l. A nil list sums to 0.
func SumList(l *List) (int64, error) {
	var sum int64
	err := l.Walk(func(p int32) { sum += int64(p) })
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// Free releases every node. A second call returns ErrReleased.
func (l *List) Free() error {
	if l == nil {
		return ErrNilPointer
	}
	if l.released {
		return ErrReleased
	}
	l.nodes = nil
	l.head = nilIndex
	l.released = true
	return nil
}
