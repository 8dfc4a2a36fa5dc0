package vector

import (
	"testing"

	"github.com/cockroachdb/errors"
)

var (
	errInit = errors.New("init failed")
	errCopy = errors.New("copy failed")
	errMove = errors.New("move failed")
)

// ledger counts element lifecycle events so tests can check that every
// constructed element is destroyed exactly once.
type ledger struct {
	live     int
	inits    int
	copies   int
	moves    int
	destroys int

	failInitAt int // fail the n-th Init (1-based), 0 = never
	failCopyAt int
	failMoveAt int
}

// led is shared by the element types below. Tests using it must not run in
// parallel.
var led ledger

func resetLedger(t *testing.T) *ledger {
	t.Helper()
	led = ledger{}
	t.Cleanup(func() { led = ledger{} })
	return &led
}

func (l *ledger) hit(counter *int, failAt int, err error) error {
	*counter++
	if failAt != 0 && *counter == failAt {
		return err
	}
	return nil
}

// tracked owns a resource that must be destroyed. It moves bitwise and
// copies through CopyFrom.
type tracked struct {
	val  int
	live bool
}

func mkTracked(val int) tracked {
	led.live++
	return tracked{val: val, live: true}
}

func (e *tracked) Init() error {
	if err := led.hit(&led.inits, led.failInitAt, errInit); err != nil {
		return err
	}
	*e = tracked{val: -1, live: true}
	led.live++
	return nil
}

func (e *tracked) CopyFrom(src *tracked) error {
	if err := led.hit(&led.copies, led.failCopyAt, errCopy); err != nil {
		return err
	}
	*e = tracked{val: src.val, live: true}
	led.live++
	return nil
}

func (e *tracked) Destroy() {
	if !e.live {
		return
	}
	e.live = false
	led.live--
	led.destroys++
}

// fragile has a move that can fail, so the vector relocates it by copying.
type fragile struct {
	val  int
	live bool
}

func mkFragile(val int) fragile {
	led.live++
	return fragile{val: val, live: true}
}

func (e *fragile) Init() error {
	if err := led.hit(&led.inits, led.failInitAt, errInit); err != nil {
		return err
	}
	*e = fragile{val: -1, live: true}
	led.live++
	return nil
}

func (e *fragile) CopyFrom(src *fragile) error {
	if err := led.hit(&led.copies, led.failCopyAt, errCopy); err != nil {
		return err
	}
	*e = fragile{val: src.val, live: true}
	led.live++
	return nil
}

func (e *fragile) MoveFrom(src *fragile) error {
	if err := led.hit(&led.moves, led.failMoveAt, errMove); err != nil {
		return err
	}
	*e = fragile{val: src.val, live: true}
	src.val = 0
	led.live++
	return nil
}

func (e *fragile) Destroy() {
	if !e.live {
		return
	}
	e.live = false
	led.live--
	led.destroys++
}

// moveOnly has a custom move and no copy.
type moveOnly struct {
	val  int
	live bool
}

func mkMoveOnly(val int) moveOnly {
	led.live++
	return moveOnly{val: val, live: true}
}

func (e *moveOnly) MoveFrom(src *moveOnly) error {
	if err := led.hit(&led.moves, led.failMoveAt, errMove); err != nil {
		return err
	}
	*e = moveOnly{val: src.val, live: true}
	src.val = 0
	led.live++
	return nil
}

func (e *moveOnly) Destroy() {
	if !e.live {
		return
	}
	e.live = false
	led.live--
	led.destroys++
}

// Interface guards
var (
	_ Initializer     = (*tracked)(nil)
	_ Copier[tracked] = (*tracked)(nil)
	_ Destroyer       = (*tracked)(nil)

	_ Copier[fragile] = (*fragile)(nil)
	_ Mover[fragile]  = (*fragile)(nil)

	_ Mover[moveOnly] = (*moveOnly)(nil)
	_ Destroyer       = (*moveOnly)(nil)
)

type valued interface {
	tracked | fragile | moveOnly
}

func valuesOf[T valued](v *Vector[T]) []int {
	out := make([]int, 0, v.Size())
	for _, p := range v.All() {
		switch e := any(p).(type) {
		case *tracked:
			out = append(out, e.val)
		case *fragile:
			out = append(out, e.val)
		case *moveOnly:
			out = append(out, e.val)
		}
	}
	return out
}

func intsOf(v *Vector[int]) []int {
	out := make([]int, 0, v.Size())
	return append(out, v.Items()...)
}
