// Package vector implements a growable contiguous sequence on top of an
// explicitly managed slot block.
//
// # Overview
//
// The package has two layers:
//
//   - Storage owns one block of slots and hands out slot addresses. It never
//     runs element hooks and does not know which slots are live.
//   - Vector owns one Storage and a count of live elements. It constructs and
//     destroys elements in place, grows the block on demand, and inserts or
//     erases at any position.
//
// # Basic Usage
//
//	v, err := vector.New[int](0)
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_, _ = v.Insert(1, 99) // [1 99 2]
//	_, _ = v.Erase(0)      // [99 2]
//	v.PopBack()            // [99]
//
// # Element Lifecycle
//
// A plain Go value needs nothing. Element types that own resources or
// cannot be copied bit for bit implement some of Initializer, Copier, Mover
// and Destroyer on their pointer type. Destroy runs exactly once for every
// element that was constructed, no matter which path removed it.
//
// When the block grows, elements are moved if the move cannot fail (no
// Mover) or if the type cannot be copied (Mover without Copier). Otherwise
// they are copied, so that a failure leaves the original elements intact.
//
// # Growth
//
// Inserting into a full vector allocates a block of twice the size, or one
// slot for an empty vector, giving capacities 1, 2, 4, 8, ... Reserve and
// Resize allocate exactly the requested capacity.
//
// # Failure Guarantees
//
//   - Allocation failure (ErrOutOfMemory) never changes the vector.
//   - Growth, Reserve, Clone and reallocating inserts either succeed or leave
//     the vector exactly as it was.
//   - Assign into sufficient capacity works element by element and may leave
//     a partial assignment behind.
//   - Out-of-range positions are caller bugs and panic.
//
// # Thread Safety
//
// Vector and Storage are not safe for concurrent use. Callers serialize
// access themselves.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
