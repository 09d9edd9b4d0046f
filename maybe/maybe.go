/*
Package maybe implements an optional value, used for lookups which may
come up empty, e.g. searching a forest for a node id.

	switch m := shape.FindNode(roots, 5).Match(); m {
	case m.Just(&node):
	    … found
	case m.Nothing():
	    … no such node
	}
*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return f(x.WithDefault(zero))
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to unpack a Maybe, see the
// package documentation. Matchers compare by identity, so T need not be
// comparable.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
