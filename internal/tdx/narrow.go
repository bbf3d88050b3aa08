package tdx

import (
	"fmt"
	"reflect"
)

// wantName names the narrowing target for KindError.
func wantName[T Resource]() string {
	var zero T
	if k, ok := any(zero).(interface{ Kind() Kind }); ok {
		return k.Kind().String()
	}
	return reflect.TypeFor[T]().Name()
}

// Narrow looks up id and returns a non-owning view of it as T.
//
// T is either a concrete wrapper such as *Sound, or a capability interface
// such as Player that several wrappers satisfy. Narrowing to the wrong type
// returns a *KindError.
func Narrow[T Resource](t *Tdx, id ID) (T, error) {
	var zero T
	r, err := t.owner(id)
	if err != nil {
		return zero, err
	}
	v, ok := r.view().(T)
	if !ok {
		return zero, &KindError{ID: id, Want: wantName[T](), Got: r.Kind()}
	}
	return v, nil
}

// MustNarrow is like Narrow but panics on error.
func MustNarrow[T Resource](t *Tdx, id ID) T {
	v, err := Narrow[T](t, id)
	if err != nil {
		panic(fmt.Sprintf("tdx: %v", err))
	}
	return v
}

// As narrows a wrapper that is already in hand. The result never owns the
// handle, even when r does.
func As[T Resource](r Resource) (T, error) {
	var zero T
	if r == nil {
		return zero, fmt.Errorf("narrow nil resource: %w", ErrNotFound)
	}
	v, ok := r.view().(T)
	if !ok {
		return zero, &KindError{ID: r.ID(), Want: wantName[T](), Got: r.Kind()}
	}
	return v, nil
}

func (t *Tdx) Sound(id ID) (*Sound, error)   { return Narrow[*Sound](t, id) }
func (t *Tdx) Music(id ID) (*Music, error)   { return Narrow[*Music](t, id) }
func (t *Tdx) Graph(id ID) (*Graph, error)   { return Narrow[*Graph](t, id) }
func (t *Tdx) Screen(id ID) (*Screen, error) { return Narrow[*Screen](t, id) }
func (t *Tdx) Light(id ID) (*Light, error)   { return Narrow[*Light](t, id) }
func (t *Tdx) Font(id ID) (*Font, error)     { return Narrow[*Font](t, id) }

func (t *Tdx) VertexShader(id ID) (*VertexShader, error) {
	return Narrow[*VertexShader](t, id)
}

func (t *Tdx) PixelShader(id ID) (*PixelShader, error) {
	return Narrow[*PixelShader](t, id)
}

func (t *Tdx) GeometryShader(id ID) (*GeometryShader, error) {
	return Narrow[*GeometryShader](t, id)
}

func (t *Tdx) ConstantBuffer(id ID) (*ConstantBuffer, error) {
	return Narrow[*ConstantBuffer](t, id)
}
