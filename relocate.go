package vector

// The helpers below construct runs of elements into zeroed slots. Each one
// counts the elements it has placed and, on failure, destroys exactly that
// prefix before returning, so the caller only has to release the block.
// base is the vector index of the first slot and only feeds error messages.

// valueConstructN default-constructs every slot of dst.
func (tr traits[T]) valueConstructN(dst []T, base int) (err error) {
	built := 0
	defer func() {
		if err != nil {
			tr.destroyN(dst[:built])
		}
	}()
	for built < len(dst) {
		if err := tr.construct(&dst[built]); err != nil {
			return wrapElem(err, "constructing", base+built)
		}
		built++
	}
	return nil
}

// copyConstructN copies src into dst. src is never modified.
func (tr traits[T]) copyConstructN(dst, src []T, base int) (err error) {
	if !tr.hasCopy && !tr.hasMove {
		copy(dst, src)
		return nil
	}
	built := 0
	defer func() {
		if err != nil {
			tr.destroyN(dst[:built])
		}
	}()
	for built < len(src) {
		if err := tr.copyConstruct(&dst[built], &src[built]); err != nil {
			return wrapElem(err, "copying", base+built)
		}
		built++
	}
	return nil
}

// moveConstructN moves src into dst. A bitwise move cannot fail. A failing
// Mover leaves the already-moved part of src moved-from.
func (tr traits[T]) moveConstructN(dst, src []T, base int) (err error) {
	if !tr.hasMove {
		copy(dst, src)
		return nil
	}
	built := 0
	defer func() {
		if err != nil {
			tr.destroyN(dst[:built])
		}
	}()
	for built < len(src) {
		if err := tr.moveConstruct(&dst[built], &src[built]); err != nil {
			return wrapElem(err, "moving", base+built)
		}
		built++
	}
	return nil
}

// relocateN transplants src into dst, moving or copying as decided by
// relocateByMove. The caller resolves byMove once per operation.
func (tr traits[T]) relocateN(dst, src []T, byMove bool, base int) error {
	if byMove {
		return tr.moveConstructN(dst, src, base)
	}
	return tr.copyConstructN(dst, src, base)
}

// disposeRelocated ends the life of every source slot after a successful
// relocateN.
func (tr traits[T]) disposeRelocated(src []T, byMove bool) {
	if !byMove {
		tr.destroyN(src)
		return
	}
	if !tr.hasMove {
		clear(src)
		return
	}
	for i := range src {
		tr.vacate(&src[i])
	}
}

// destroyN destroys the live elements of s in index order.
func (tr traits[T]) destroyN(s []T) {
	if !tr.hasDestroy {
		clear(s)
		return
	}
	for i := range s {
		tr.destroy(&s[i])
	}
}
