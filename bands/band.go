package bands

import "fmt"

// Band is the memory tape: byte cells under a single head.
// Cell values wrap; head movement either grows the band or faults.
type Band interface {
	Read() byte
	Write(byte)
	Add(byte)
	Move(offset int) error

	// Cells returns a copy of the band contents, leftmost first.
	Cells() []byte
	// Head returns the head index into Cells.
	Head() int
}

type Kind uint8

const (
	KindBounded Kind = iota
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindBounded:
		return "bounded"
	case KindUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func New(kind Kind) Band {
	switch kind {
	case KindUnbounded:
		return NewUnbounded()
	case KindBounded:
		return NewBounded()
	}
	panic(fmt.Errorf("unknown band kind: %v", kind))
}

// KindOf reports the kind of a band built by New.
func KindOf(band Band) (Kind, bool) {
	switch band.(type) {
	case *Unbounded:
		return KindUnbounded, true
	case *Bounded:
		return KindBounded, true
	}
	return 0, false
}
