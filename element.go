package vector

// Element types opt into lifecycle hooks by implementing the interfaces below
// on their pointer type. A type that implements none of them is a plain
// value: it is default-constructed as the zero value, copied and moved by
// assignment, and needs no destruction.
//
// Every hook that can fail must leave its receiver holding nothing that
// needs Destroy when it returns an error. The slot is reset to the zero
// value afterwards.

// Initializer is implemented by element types whose default state is more
// than the zero value. Init runs on a zeroed slot.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types that need a deep copy. CopyFrom
// runs on a zeroed slot and must leave src unchanged.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by element types whose move can fail or needs more
// than a bitwise transfer. MoveFrom runs on a zeroed slot. On success src is
// left moved-from but must still accept Destroy. On failure src must be
// intact.
//
// A Mover that does not also implement Copier is move-only.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Destroyer is implemented by element types that release resources when
// they go out of the vector. Destroy must accept the zero value.
type Destroyer interface {
	Destroy()
}

// traits records which hooks *T implements.
type traits[T any] struct {
	hasInit    bool
	hasCopy    bool
	hasMove    bool
	hasDestroy bool
}

func traitsOf[T any]() traits[T] {
	var p *T
	_, hasInit := any(p).(Initializer)
	_, hasCopy := any(p).(Copier[T])
	_, hasMove := any(p).(Mover[T])
	_, hasDestroy := any(p).(Destroyer)
	return traits[T]{
		hasInit:    hasInit,
		hasCopy:    hasCopy,
		hasMove:    hasMove,
		hasDestroy: hasDestroy,
	}
}

// nothrowMove reports whether moving a T cannot fail.
func (tr traits[T]) nothrowMove() bool {
	return !tr.hasMove
}

func (tr traits[T]) copyable() bool {
	return !tr.hasMove || tr.hasCopy
}

// relocateByMove reports whether elements are moved rather than copied when
// transplanted into a new block. A failing copy leaves the source intact, so
// copying is preferred unless the move cannot fail or there is no copy.
func (tr traits[T]) relocateByMove() bool {
	return tr.nothrowMove() || !tr.copyable()
}

func (tr traits[T]) zero(p *T) {
	var zero T
	*p = zero
}

// construct default-constructs the zeroed slot p.
func (tr traits[T]) construct(p *T) error {
	tr.zero(p)
	if !tr.hasInit {
		return nil
	}
	if err := any(p).(Initializer).Init(); err != nil {
		tr.zero(p)
		return err
	}
	return nil
}

// emplace constructs the slot p with fn.
func (tr traits[T]) emplace(p *T, fn func(*T) error) error {
	tr.zero(p)
	if fn == nil {
		return tr.construct(p)
	}
	if err := fn(p); err != nil {
		tr.zero(p)
		return err
	}
	return nil
}

// copyConstruct makes dst a copy of src.
func (tr traits[T]) copyConstruct(dst, src *T) error {
	switch {
	case tr.hasCopy:
		tr.zero(dst)
		if err := any(dst).(Copier[T]).CopyFrom(src); err != nil {
			tr.zero(dst)
			return err
		}
		return nil
	case tr.hasMove:
		return ErrNotCopyable
	default:
		*dst = *src
		return nil
	}
}

// moveConstruct moves src into dst. Afterwards src is moved-from and must be
// vacated, never destroyed directly.
func (tr traits[T]) moveConstruct(dst, src *T) error {
	if !tr.hasMove {
		*dst = *src
		return nil
	}
	tr.zero(dst)
	if err := any(dst).(Mover[T]).MoveFrom(src); err != nil {
		tr.zero(dst)
		return err
	}
	return nil
}

// assign replaces the live element dst with a copy of src. dst is left
// unchanged if the copy fails.
func (tr traits[T]) assign(dst, src *T) error {
	if !tr.hasCopy && !tr.hasMove && !tr.hasDestroy {
		*dst = *src
		return nil
	}
	var tmp T
	if err := tr.copyConstruct(&tmp, src); err != nil {
		return err
	}
	tr.destroy(dst)
	defer tr.vacate(&tmp)
	return tr.moveConstruct(dst, &tmp)
}

// destroy ends the life of the live element p.
func (tr traits[T]) destroy(p *T) {
	if tr.hasDestroy {
		any(p).(Destroyer).Destroy()
	}
	tr.zero(p)
}

// vacate ends the life of a moved-from slot. After a bitwise move the slot
// aliases the moved value, so it is only cleared.
func (tr traits[T]) vacate(p *T) {
	if tr.hasMove {
		tr.destroy(p)
		return
	}
	tr.zero(p)
}
