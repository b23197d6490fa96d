package bands

import "slices"

// Unbounded grows zero-filled cells on either side as the head walks past
// its ends. Cells left of the origin live reversed in Left, so growth in
// both directions is an append.
type Unbounded struct {
	Left  []byte
	Right []byte
	// Pos is the head relative to the origin; negative positions index Left.
	Pos int
}

var _ Band = new(Unbounded)

func NewUnbounded() *Unbounded {
	return &Unbounded{
		Right: []byte{0},
	}
}

func (u *Unbounded) cell() *byte {
	if u.Pos >= 0 {
		return &u.Right[u.Pos]
	}
	return &u.Left[-u.Pos-1]
}

func (u *Unbounded) Read() byte {
	return *u.cell()
}

func (u *Unbounded) Write(b byte) {
	*u.cell() = b
}

func (u *Unbounded) Add(b byte) {
	*u.cell() += b
}

func (u *Unbounded) Move(offset int) error {
	u.Pos += offset
	if u.Pos >= len(u.Right) {
		u.Right = append(u.Right, make([]byte, u.Pos-len(u.Right)+1)...)
	} else if u.Pos < 0 && -u.Pos > len(u.Left) {
		u.Left = append(u.Left, make([]byte, -u.Pos-len(u.Left))...)
	}
	return nil
}

func (u *Unbounded) Cells() []byte {
	ret := make([]byte, 0, len(u.Left)+len(u.Right))
	ret = append(ret, u.Left...)
	slices.Reverse(ret)
	return append(ret, u.Right...)
}

func (u *Unbounded) Head() int {
	return u.Pos + len(u.Left)
}
