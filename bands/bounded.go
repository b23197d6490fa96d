package bands

import (
	"errors"
	"fmt"
)

const (
	Capacity = 30_000
	// Origin is where the head of a fresh bounded band rests.
	Origin = Capacity / 2
)

var ErrOutOfBounds = errors.New("head moved out of bounds")

// Fault reports a rejected head movement. The head stays where it was.
type Fault struct {
	Head     int
	Offset   int
	Capacity int
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: moving by %d from cell %d, capacity %d",
		ErrOutOfBounds.Error(), f.Offset, f.Head, f.Capacity)
}

func (f *Fault) Unwrap() error {
	return ErrOutOfBounds
}

// Bounded is a fixed band of Capacity cells with the head starting at Origin.
type Bounded struct {
	Data []byte
	Pos  int
}

var _ Band = new(Bounded)

func NewBounded() *Bounded {
	return &Bounded{
		Data: make([]byte, Capacity),
		Pos:  Origin,
	}
}

func (b *Bounded) Read() byte {
	return b.Data[b.Pos]
}

func (b *Bounded) Write(v byte) {
	b.Data[b.Pos] = v
}

func (b *Bounded) Add(v byte) {
	b.Data[b.Pos] += v
}

func (b *Bounded) Move(offset int) error {
	target := b.Pos + offset
	if target < 0 || target >= len(b.Data) {
		return &Fault{
			Head:     b.Pos,
			Offset:   offset,
			Capacity: len(b.Data),
		}
	}
	b.Pos = target
	return nil
}

func (b *Bounded) Cells() []byte {
	return append([]byte(nil), b.Data...)
}

func (b *Bounded) Head() int {
	return b.Pos
}
