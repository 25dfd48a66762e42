package data

import (
	"fmt"
	"reflect"
	"sync"
)

// Lazy is a deferred association. Get resolves it at most once; resolution is
// an explicit call, never a side effect of a plain field access.
type Lazy[T any] interface {
	Get() (T, error)
}

type LazyLoad[T any] struct {
	m      sync.Mutex
	done   bool
	value  T
	err    error
	loadFn func() (any, error)
}

func LazyLoadFn[T any](load func() (any, error)) *LazyLoad[T] {
	return &LazyLoad[T]{loadFn: load}
}

func LazyLoadValue[T any](v T) *LazyLoad[T] {
	return &LazyLoad[T]{
		done:  true,
		value: v,
	}
}

func (l *LazyLoad[T]) Get() (T, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.done {
		return l.value, l.err
	}
	l.done = true
	if l.loadFn == nil {
		return l.value, nil
	}
	var value any
	value, l.err = l.loadFn()
	if l.err != nil {
		return l.value, l.err
	}
	var ok bool
	l.value, ok = value.(T)
	if !ok {
		panic(fmt.Sprintf("LazyLoad got %s, not %s", reflect.TypeOf(value), reflect.TypeOf(l.value)))
	}
	return l.value, nil
}
