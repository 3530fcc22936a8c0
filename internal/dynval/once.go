package dynval

// Once is a write-once cell for single-assignment fields. The zero cell is
// empty; the first Set succeeds and every later one fails.
type Once[T any] struct {
	val T
	set bool
}

// Set stores the value; a second call returns ErrAlreadySet and leaves the
// stored value intact.
func (o *Once[T]) Set(v T) error {
	if o.set {
		return ErrAlreadySet
	}
	o.val = v
	o.set = true
	return nil
}

// Get returns the stored value and whether the cell has been set.
func (o *Once[T]) Get() (T, bool) {
	return o.val, o.set
}

// IsSet reports whether the cell holds a value.
func (o *Once[T]) IsSet() bool { return o.set }
