package tdx

import (
	"github.com/tinyrange/dxbridge/internal/dx"
)

// ID identifies a registry entry. IDs start at 1 and are never reused, so a
// stale ID can not alias a resource registered later with the same native
// handle.
type ID uint64

// Resource is the capability set shared by every wrapper.
//
// Wrappers returned by the registry are views: they share the owner's handle
// but do not own it, and disposing them only detaches the view. The registry
// keeps the owning wrapper and releases it on Unregister or Close, after
// which every view reports StateDisposed and its operations return -1
// without reaching the library.
type Resource interface {
	Kind() Kind
	Handle() dx.Handle
	// Owned reports whether Dispose will release the native handle.
	Owned() bool
	State() State
	// ID is zero until the wrapper is registered.
	ID() ID
	// Path is the file the resource was loaded from, if any.
	Path() string
	// Dispose releases the native handle when the wrapper owns a valid one,
	// then zeroes it. Further calls do nothing.
	Dispose()

	core() *resource
	view() Resource
}

// releaseFunc deletes a native handle.
type releaseFunc func(b dx.Backend, h dx.Handle) int32

// statusDisposed is returned by operations on a disposed resource or view
// instead of calling into the library with a released handle.
const statusDisposed int32 = -1

// cell is the state an owner shares with all of its views.
type cell struct {
	h     dx.Handle
	state State
	id    ID
}

type resource struct {
	b       dx.Backend
	c       *cell
	owns    bool
	dropped bool
	path    string
	release releaseFunc
}

func newResource(b dx.Backend, h dx.Handle, path string, release releaseFunc) resource {
	return resource{b: b, c: &cell{h: h}, owns: true, path: path, release: release}
}

// Handle returns the native handle, or dx.NoHandle once the owner or this
// view has been disposed.
func (r *resource) Handle() dx.Handle {
	if r.dropped {
		return dx.NoHandle
	}
	return r.c.h
}

func (r *resource) Owned() bool { return r.owns }

func (r *resource) State() State {
	if r.dropped {
		return StateDisposed
	}
	return r.c.state
}

func (r *resource) ID() ID          { return r.c.id }
func (r *resource) Path() string    { return r.path }
func (r *resource) core() *resource { return r }

// live returns the handle to pass to the library, or false once the owner
// or this view has been disposed.
func (r *resource) live() (dx.Handle, bool) {
	if r.dropped || r.c.state == StateDisposed {
		return dx.NoHandle, false
	}
	return r.c.h, true
}

// Dispose releases an owned handle and marks it disposed for every view.
// On a view it only detaches that view.
func (r *resource) Dispose() {
	if !r.owns {
		r.dropped = true
		return
	}
	c := r.c
	if c.state == StateDisposed {
		return
	}
	if c.h.Valid() && r.release != nil {
		r.release(r.b, c.h)
	}
	c.h = dx.NoHandle
	c.state = StateDisposed
}

// weak returns a non-owning view sharing r's handle and state.
func (r *resource) weak() resource {
	v := *r
	v.owns = false
	return v
}
