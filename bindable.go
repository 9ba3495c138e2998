package rhythmui

import "errors"

// ErrBindableDisabled is returned by Bindable.Set when the bindable is disabled.
var ErrBindableDisabled = errors.New("rhythmui: cannot set a disabled bindable")

// ValueChangedEvent carries the previous and current value of a Bindable.
type ValueChangedEvent[T comparable] struct {
	OldValue T
	NewValue T
}

// Bindable is a value that notifies listeners when it changes and can be
// bound to other bindables of the same type. Bound bindables always share a
// value: setting any one of them updates the rest.
//
// Bindables are not safe for concurrent use; like the scene graph, they are
// meant to be touched from the update loop only.
type Bindable[T comparable] struct {
	value    T
	def      T
	disabled bool

	bindings  []*Bindable[T]
	listeners []func(ValueChangedEvent[T])
}

// NewBindable returns a bindable holding v, which is also its default.
func NewBindable[T comparable](v T) *Bindable[T] {
	return &Bindable[T]{value: v, def: v}
}

// Value returns the current value.
func (b *Bindable[T]) Value() T {
	return b.value
}

// Default returns the default value.
func (b *Bindable[T]) Default() T {
	return b.def
}

// SetDefault changes the default value without touching the current one.
func (b *Bindable[T]) SetDefault(v T) {
	b.def = v
}

// Disabled reports whether Set is currently rejected.
func (b *Bindable[T]) Disabled() bool {
	return b.disabled
}

// SetDisabled toggles whether Set is rejected, for this bindable and every
// bindable bound to it.
func (b *Bindable[T]) SetDisabled(d bool) {
	b.walk(func(o *Bindable[T]) { o.disabled = d })
}

// Set changes the value across the binding group and notifies listeners of
// every bindable whose value actually changed.
func (b *Bindable[T]) Set(v T) error {
	if b.disabled {
		return ErrBindableDisabled
	}
	b.walk(func(o *Bindable[T]) { o.setValue(v) })
	return nil
}

// SetToDefault sets the value back to the default.
func (b *Bindable[T]) SetToDefault() error {
	return b.Set(b.def)
}

func (b *Bindable[T]) setValue(v T) {
	if b.value == v {
		return
	}
	old := b.value
	b.value = v
	ev := ValueChangedEvent[T]{OldValue: old, NewValue: v}
	for _, fn := range b.listeners {
		fn(ev)
	}
}

// BindValueChanged registers fn to run on every change. If runOnceImmediately
// is true, fn is also called right away with the current value as NewValue.
func (b *Bindable[T]) BindValueChanged(fn func(ValueChangedEvent[T]), runOnceImmediately bool) {
	b.listeners = append(b.listeners, fn)
	if runOnceImmediately {
		fn(ValueChangedEvent[T]{OldValue: b.value, NewValue: b.value})
	}
}

// BindTo joins b to target's binding group. b adopts target's value, default
// and disabled state.
func (b *Bindable[T]) BindTo(target *Bindable[T]) {
	if target == nil || target == b {
		return
	}
	b.def = target.def
	b.disabled = target.disabled
	b.bindings = append(b.bindings, target)
	target.bindings = append(target.bindings, b)
	b.setValue(target.value)
}

// GetBoundCopy returns a new bindable bound to b.
func (b *Bindable[T]) GetBoundCopy() *Bindable[T] {
	c := &Bindable[T]{}
	c.BindTo(b)
	return c
}

// UnbindAll removes b from its binding group and drops its listeners. Other
// members keep any bindings they hold to each other.
func (b *Bindable[T]) UnbindAll() {
	for _, o := range b.bindings {
		o.removeBinding(b)
	}
	b.bindings = nil
	b.listeners = nil
}

func (b *Bindable[T]) removeBinding(o *Bindable[T]) {
	for i, x := range b.bindings {
		if x == o {
			b.bindings = append(b.bindings[:i], b.bindings[i+1:]...)
			return
		}
	}
}

// walk visits every bindable reachable through bindings, b first.
func (b *Bindable[T]) walk(fn func(*Bindable[T])) {
	seen := map[*Bindable[T]]bool{}
	var visit func(*Bindable[T])
	visit = func(o *Bindable[T]) {
		if seen[o] {
			return
		}
		seen[o] = true
		fn(o)
		for _, x := range o.bindings {
			visit(x)
		}
	}
	visit(b)
}
