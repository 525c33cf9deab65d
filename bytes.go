package llist

// Allocator provides buffers for element copies. An Allocator reports
// exhaustion by returning an error, which aborts the operation without
// touching the list.
type Allocator func(n int) ([]byte, error)

func defaultAlloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

type Option func(l *ByteList)

// WithAllocator replaces the default make backed allocator.
func WithAllocator(alloc Allocator) Option {
	return func(l *ByteList) {
		if alloc != nil {
			l.alloc = alloc
		}
	}
}

// ByteList stores raw byte payloads with copy-in, copy-out semantics:
// Add and Insert keep a private copy of the caller's bytes, and Delete
// hands the stored buffer back to the caller, who then owns it. Get
// returns the stored buffer itself, not a copy.
//
// Like List, a ByteList clamps out of range indexes instead of
// failing, and is not safe for concurrent use.
type ByteList struct {
	list  List[[]byte]
	alloc Allocator
}

func NewBytes(opts ...Option) *ByteList {
	var l = &ByteList{}
	l.alloc = defaultAlloc
	for _, opt := range opts {
		opt(l)
	}
	l.list.Init()
	return l
}

// Init resets the list to the empty state. It does not release
// existing elements. Safe to call more than once.
func (l *ByteList) Init() error {
	if l == nil {
		return ErrNilArgument
	}
	if l.alloc == nil {
		l.alloc = defaultAlloc
	}
	l.list.Init()
	return nil
}

func (l *ByteList) Len() int {
	if l == nil {
		return 0
	}
	return l.list.Len()
}

// Get returns the stored bytes at index i, or nil if the list is
// empty. An index beyond the end yields the last element.
func (l *ByteList) Get(i int) []byte {
	if l == nil {
		return nil
	}
	var ref = l.list.Get(i)
	if ref == nil {
		return nil
	}
	return *ref
}

// Add appends a copy of data to the end of the list.
func (l *ByteList) Add(data []byte) error {
	var buf, err = l.copyIn(data)
	if err != nil {
		return err
	}
	l.list.Add(buf)
	return nil
}

// Insert places a copy of data at index i, shifting later elements one
// position back. Inserting into an empty list or at an index beyond
// the end appends.
func (l *ByteList) Insert(data []byte, i int) error {
	var buf, err = l.copyIn(data)
	if err != nil {
		return err
	}
	l.list.Insert(buf, i)
	return nil
}

// Delete removes the element at index i and returns its buffer. An
// index beyond the end removes the last element. Returns nil if the
// list is empty.
func (l *ByteList) Delete(i int) []byte {
	if l == nil {
		return nil
	}
	var data, ok = l.list.Delete(i)
	if !ok {
		return nil
	}
	return data
}

// Clear drops every element and resets the list to the empty state.
// No-op on an empty list.
func (l *ByteList) Clear() {
	if l != nil {
		l.list.Clear()
	}
}

// copyIn allocates a buffer for data and copies it. The allocation
// happens before any link is touched, so a failure leaves the list
// exactly as it was.
func (l *ByteList) copyIn(data []byte) ([]byte, error) {
	if l == nil || len(data) == 0 {
		return nil, ErrNilArgument
	}
	if l.alloc == nil {
		l.alloc = defaultAlloc
	}
	var buf, err = l.alloc(len(data))
	if err != nil || len(buf) < len(data) {
		return nil, ErrAllocation
	}
	buf = buf[:len(data)]
	copy(buf, data)
	return buf, nil
}
