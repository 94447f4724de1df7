// Package borrow checks the shared/exclusive discipline of asbytes views
// at runtime.
//
// The asbytes package itself never validates aliasing. Code that wants
// the check routes its views through a Tracker: any number of Shared
// borrows may overlap, an Exclusive borrow may not overlap anything.
// Overlap is decided by address range, so borrowing a struct field
// conflicts with borrowing the struct that contains it.
package borrow

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/rawbytedev/asbytes"
)

var (
	ErrBorrowed        = errors.New("borrow: value is already borrowed")
	ErrMutablyBorrowed = errors.New("borrow: value is already mutably borrowed")
	ErrNilValue        = errors.New("borrow: nil value")
	ErrReadOnly        = errors.New("borrow: value storage is read-only")
)

type Options struct {
	// PanicOnConflict panics with the conflict error instead of returning it.
	PanicOnConflict bool
}

// Tracker records live borrows. It is safe for concurrent use.
type Tracker struct {
	Opts Options

	mu     sync.Mutex
	live   map[*Ref]struct{}
	nextID uint64
}

// Ref is a live borrow. Release ends it.
type Ref struct {
	tr        *Tracker
	id        uint64
	start     uintptr
	end       uintptr
	exclusive bool
	// keeps the borrowed memory reachable while start/end are tracked
	base     unsafe.Pointer
	released bool
}

func NewTracker(opts Options) *Tracker {
	return &Tracker{
		Opts: opts,
		live: make(map[*Ref]struct{}),
	}
}

// Shared borrows *v for reading and returns a view over it.
func Shared[T any](tr *Tracker, v *T) (asbytes.View, *Ref, error) {
	if v == nil {
		return asbytes.View{}, nil, tr.fail(ErrNilValue)
	}
	view := asbytes.Of(v)
	r, err := tr.acquire(view.Bytes(), false)
	if err != nil {
		return asbytes.View{}, nil, err
	}
	return view, r, nil
}

// Exclusive borrows *v for writing and returns a mutable view over it.
// String and interface types are refused with ErrReadOnly: their viewed
// bytes may sit in read-only or shared runtime memory.
func Exclusive[T any](tr *Tracker, v *T) ([]byte, *Ref, error) {
	if v == nil {
		return nil, nil, tr.fail(ErrNilValue)
	}
	switch k := reflect.TypeFor[T]().Kind(); k {
	case reflect.String, reflect.Interface:
		return nil, nil, tr.fail(fmt.Errorf("%w: %s", ErrReadOnly, k))
	}
	b := asbytes.MutOf(v)
	r, err := tr.acquire(b, true)
	if err != nil {
		return nil, nil, err
	}
	return b, r, nil
}

func (tr *Tracker) acquire(b []byte, exclusive bool) (*Ref, error) {
	base := unsafe.Pointer(unsafe.SliceData(b))
	start := uintptr(base)
	r := &Ref{
		tr:        tr,
		start:     start,
		end:       start + uintptr(len(b)),
		exclusive: exclusive,
		base:      base,
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()
	for other := range tr.live {
		if !r.overlaps(other) {
			continue
		}
		if other.exclusive {
			return nil, tr.fail(fmt.Errorf("%w: [%#x, %#x) held by borrow %d", ErrMutablyBorrowed, other.start, other.end, other.id))
		}
		if exclusive {
			return nil, tr.fail(fmt.Errorf("%w: [%#x, %#x) held by borrow %d", ErrBorrowed, other.start, other.end, other.id))
		}
	}
	tr.nextID++
	r.id = tr.nextID
	tr.live[r] = struct{}{}
	return r, nil
}

func (tr *Tracker) fail(err error) error {
	if tr.Opts.PanicOnConflict {
		panic(err)
	}
	return err
}

// Active returns the number of live borrows.
func (tr *Tracker) Active() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.live)
}

// Release ends the borrow. Calling it more than once is a no-op.
func (r *Ref) Release() {
	if r == nil {
		return
	}
	r.tr.mu.Lock()
	defer r.tr.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	delete(r.tr.live, r)
	r.base = nil
}

// Exclusive reports whether r is a mutable borrow.
func (r *Ref) Exclusive() bool {
	return r.exclusive
}

// empty ranges never overlap
func (r *Ref) overlaps(o *Ref) bool {
	return r.start < o.end && o.start < r.end
}
