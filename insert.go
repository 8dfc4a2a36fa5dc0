package vector

// Insert moves value into position pos and returns pos. pos may be Size(),
// which appends. The vector takes ownership of value: if the insert fails,
// value has been destroyed.
//
// See Emplace for the failure guarantees.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	consumed := false
	pos, err := v.Emplace(pos, func(p *T) error {
		*p = value
		consumed = true
		return nil
	})
	if err != nil && !consumed {
		traitsOf[T]().destroy(&value)
	}
	return pos, err
}

// Emplace constructs a new element at position pos by running construct on
// a zeroed slot, and returns pos. A nil construct default-constructs the
// element. pos must be in [0, Size()]; Size() appends.
//
// When the vector is full, the new element is built in a block twice the
// size (one slot if empty) before anything else is touched, and the existing
// elements are relocated around it. Any failure on that path leaves v
// unchanged. When there is room, an element is built directly at the end or
// in a temporary that is then moved into place. If a Mover fails while the
// tail is shifted, v is left valid but its contents are unspecified.
func (v *Vector[T]) Emplace(pos int, construct func(*T) error) (int, error) {
	assertf(pos >= 0 && pos <= v.size, "vector: insert position %d out of range [0, %d]", pos, v.size)
	var err error
	if v.size == v.data.Capacity() {
		err = v.emplaceWithReallocation(pos, construct)
	} else {
		err = v.emplaceWithoutReallocation(pos, construct)
	}
	return pos, err
}

// PushBack moves value to the end of the vector.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.Insert(v.size, value)
	return err
}

// EmplaceBack constructs a new element at the end of the vector and returns
// a pointer to it.
func (v *Vector[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	pos, err := v.Emplace(v.size, construct)
	if err != nil {
		return nil, err
	}
	return v.data.Slot(pos), nil
}

// Erase removes the element at pos, shifting the later elements left, and
// returns pos. It panics unless 0 <= pos < Size().
//
// The erased element is destroyed before the shift, so Destroy always runs
// on the element that was at pos. The last slot is then vacated.
func (v *Vector[T]) Erase(pos int) (int, error) {
	assertf(pos >= 0 && pos < v.size, "vector: erase position %d out of range [0, %d)", pos, v.size)
	tr := traitsOf[T]()
	buf := v.data.Slots(0, v.size)
	tr.destroy(&buf[pos])

	if !tr.hasMove {
		copy(buf[pos:], buf[pos+1:])
		tr.zero(&buf[v.size-1])
		v.size--
		return pos, nil
	}

	for i := pos; i < v.size-1; i++ {
		if err := tr.moveConstruct(&buf[i], &buf[i+1]); err != nil {
			return pos, wrapElem(err, "moving", i+1)
		}
		tr.vacate(&buf[i+1])
	}
	v.size--
	return pos, nil
}

// PopBack destroys the last element. It panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "vector: PopBack on empty vector")
	traitsOf[T]().destroy(v.data.Slot(v.size - 1))
	v.size--
}

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	traitsOf[T]().destroyN(v.Items())
	v.size = 0
}

func (v *Vector[T]) emplaceWithReallocation(pos int, construct func(*T) error) error {
	next, err := newStorage[T](growth(v.size), v.config())
	if err != nil {
		return err
	}

	tr := traitsOf[T]()
	if err := tr.emplace(next.Slot(pos), construct); err != nil {
		next.Release()
		return wrapElem(err, "constructing", pos)
	}

	byMove := tr.relocateByMove()
	if err := tr.relocateN(next.Slots(0, pos), v.data.Slots(0, pos), byMove, 0); err != nil {
		tr.destroy(next.Slot(pos))
		next.Release()
		return err
	}
	if err := tr.relocateN(next.Slots(pos+1, v.size+1), v.data.Slots(pos, v.size), byMove, pos); err != nil {
		tr.destroyN(next.Slots(0, pos+1))
		next.Release()
		return err
	}

	v.adopt(&next, byMove, v.size+1)
	return nil
}

func (v *Vector[T]) emplaceWithoutReallocation(pos int, construct func(*T) error) error {
	tr := traitsOf[T]()
	if pos == v.size {
		if err := tr.emplace(v.data.Slot(pos), construct); err != nil {
			return wrapElem(err, "constructing", pos)
		}
		v.size++
		return nil
	}

	var tmp T
	if err := tr.emplace(&tmp, construct); err != nil {
		return wrapElem(err, "constructing", pos)
	}
	if tr.hasMove {
		return v.shiftInsert(pos, &tmp)
	}

	buf := v.data.Slots(0, v.size+1)
	buf[v.size] = buf[v.size-1]
	copy(buf[pos+1:v.size], buf[pos:v.size-1])
	buf[pos] = tmp
	v.size++
	return nil
}

// shiftInsert opens a hole at pos with Mover moves, right to left, and moves
// tmp into it. tmp is consumed either way.
func (v *Vector[T]) shiftInsert(pos int, tmp *T) error {
	tr := traitsOf[T]()
	defer tr.vacate(tmp)

	buf := v.data.Slots(0, v.size+1)
	last := v.size
	if err := tr.moveConstruct(&buf[last], &buf[last-1]); err != nil {
		return wrapElem(err, "moving", last-1)
	}
	v.size++

	for i := last - 1; i > pos; i-- {
		tr.vacate(&buf[i])
		if err := tr.moveConstruct(&buf[i], &buf[i-1]); err != nil {
			return wrapElem(err, "moving", i-1)
		}
	}
	tr.vacate(&buf[pos])
	if err := tr.moveConstruct(&buf[pos], tmp); err != nil {
		return wrapElem(err, "constructing", pos)
	}
	return nil
}
