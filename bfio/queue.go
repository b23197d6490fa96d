package bfio

// Queue is an in-memory input.
type Queue struct {
	runes []rune
}

var _ Input = new(Queue)

func NewQueue(s string) *Queue {
	return &Queue{
		runes: []rune(s),
	}
}

func (q *Queue) ReadChar() (rune, bool) {
	if len(q.runes) == 0 {
		return 0, false
	}
	r := q.runes[0]
	q.runes = q.runes[1:]
	return r, true
}

func (q *Queue) Len() int {
	return len(q.runes)
}

// Capture collects output characters in order.
type Capture struct {
	Runes []rune
}

var _ Output = new(Capture)

func (c *Capture) WriteChar(r rune) error {
	c.Runes = append(c.Runes, r)
	return nil
}

func (c *Capture) String() string {
	return string(c.Runes)
}
