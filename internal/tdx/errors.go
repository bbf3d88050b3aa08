package tdx

import (
	"errors"
	"fmt"
)

var (
	ErrInitFailed  = errors.New("cannot init DxLib")
	ErrClosed      = errors.New("registry closed")
	ErrNotFound    = errors.New("resource not found")
	ErrWrongKind   = errors.New("wrong resource kind")
	ErrHandleInUse = errors.New("native handle already registered")
	ErrRegistered  = errors.New("resource already registered or disposed")
)

// Error records the operation and resource path that failed.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindError is returned when a registry entry is narrowed to the wrong
// wrapper type. It matches ErrWrongKind.
type KindError struct {
	ID   ID
	Want string
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("resource %d: want %s, got %s", e.ID, e.Want, e.Got)
}

func (e *KindError) Is(target error) bool {
	return target == ErrWrongKind
}
