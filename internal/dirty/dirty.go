// Package dirty folds the outcomes of independent state updates into a single
// "should the frame be redrawn" decision.
package dirty

import "iter"

// Flag reports whether an update changed what is on screen.
type Flag bool

const (
	// Clean means nothing visible changed.
	Clean Flag = false
	// Dirty means the frame must be redrawn.
	Dirty Flag = true
)

// Or combines two flags. Dirty dominates Clean.
func (f Flag) Or(other Flag) Flag {
	return f || other
}

func (f Flag) String() string {
	if f {
		return "dirty"
	}
	return "clean"
}

// Redraw maps an outcome to the boolean returned to the host. An error always
// asks for a redraw so a degraded state is visible instead of a frozen bar.
func Redraw(f Flag, err error) bool {
	if err != nil {
		return true
	}
	return bool(f)
}

// TryFold reduces seq with step, starting from init. It stops pulling from seq
// at the first error and returns that error; elements after it are never
// produced or passed to step.
func TryFold[T, A any](seq iter.Seq[T], init A, step func(A, T) (A, error)) (A, error) {
	acc := init
	var err error
	for item := range seq {
		acc, err = step(acc, item)
		if err != nil {
			var zero A
			return zero, err
		}
	}
	return acc, nil
}

// Consume applies fn to every element of seq and ORs the results, starting
// from Clean. The first error short-circuits.
func Consume[T any](seq iter.Seq[T], fn func(T) (Flag, error)) (Flag, error) {
	return TryFold(seq, Clean, func(acc Flag, item T) (Flag, error) {
		f, err := fn(item)
		if err != nil {
			return acc, err
		}
		return acc.Or(f), nil
	})
}

// Op is a fallible update producing a Flag.
type Op func() (Flag, error)

// All runs ops in order and folds their outcomes like Consume.
func All(ops ...Op) (Flag, error) {
	return Consume(func(yield func(Op) bool) {
		for _, op := range ops {
			if !yield(op) {
				return
			}
		}
	}, func(op Op) (Flag, error) {
		return op()
	})
}
