package dfg

import "ssaflow/internal/dfgid"

// ValueListPool is the arena spec §2 ("Value list pool") and §9
// ("Side-table arenas instead of owning graphs") describe: a single
// backing slice shared by every ValueList in a DataFlowGraph, so that a
// list of two or three values (the overwhelmingly common case: an
// instruction's arguments, an instruction's results, an EBB's arguments)
// doesn't need its own heap allocation.
//
// The pool is append-only. A ValueList never reuses space in place: every
// Push copies the list's current contents to a fresh region at the end of
// the pool and appends there. This keeps every other ValueList's window
// into the pool valid (an append can only grow the pool, never relocate an
// untouched window's logical contents), at the cost of stranding the old
// region as unreachable garbage — an acceptable trade given spec §5's
// append-only, monotonically-growing resource model.
type ValueListPool struct {
	data []dfgid.Value
}

// NewValueListPool creates an empty pool.
func NewValueListPool() *ValueListPool {
	return &ValueListPool{}
}

// ValueList is a handle to a variable-length sequence of values living in a
// ValueListPool. The zero value is the empty list.
type ValueList struct {
	start  uint32
	length uint32
}

// Len returns the number of values currently in the list.
func (vl ValueList) Len() int { return int(vl.length) }

// IsEmpty reports whether the list holds no values.
func (vl ValueList) IsEmpty() bool { return vl.length == 0 }

// AsSlice returns a read-only view of the list's current contents.
func (vl ValueList) AsSlice(pool *ValueListPool) []dfgid.Value {
	if vl.length == 0 {
		return nil
	}
	return pool.data[vl.start : vl.start+vl.length]
}

// AsMutSlice returns a mutable view of the list's current contents, for
// in-place rewrites such as patching the first result slot in
// redefine_first_value (spec §4.7) or reversing the result list in
// make_inst_results (spec §4.4).
func (vl ValueList) AsMutSlice(pool *ValueListPool) []dfgid.Value {
	if vl.length == 0 {
		return nil
	}
	return pool.data[vl.start : vl.start+vl.length]
}

// Get returns the value at position i, if present.
func (vl ValueList) Get(i int, pool *ValueListPool) (dfgid.Value, bool) {
	if i < 0 || uint32(i) >= vl.length {
		return dfgid.Value{}, false
	}
	return pool.data[vl.start+uint32(i)], true
}

// First returns the first value in the list, if any.
func (vl ValueList) First(pool *ValueListPool) (dfgid.Value, bool) {
	return vl.Get(0, pool)
}

// Push appends v to the list and returns its new index.
func (vl *ValueList) Push(v dfgid.Value, pool *ValueListPool) int {
	existing := vl.AsSlice(pool)
	newStart := uint32(len(pool.data))
	pool.data = append(pool.data, existing...)
	pool.data = append(pool.data, v)
	vl.start = newStart
	vl.length = uint32(len(existing)) + 1
	return int(vl.length - 1)
}

// Clear empties the list. The values it held are not deleted from the
// pool — spec §5 is append-only — they simply become unreachable from this
// list.
func (vl *ValueList) Clear(pool *ValueListPool) {
	vl.start = 0
	vl.length = 0
}

// Take empties the receiver and returns its former contents as an
// independent ValueList, transferring ownership without copying the
// underlying data. Used by DetachEbbArgs to hand an EBB's whole argument
// list to the caller.
func (vl *ValueList) Take() ValueList {
	taken := *vl
	vl.start = 0
	vl.length = 0
	return taken
}

// Reverse reverses the list's contents in place.
func (vl ValueList) Reverse(pool *ValueListPool) {
	s := vl.AsMutSlice(pool)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
