// Package bfio holds the character capabilities a program talks to.
package bfio

// Input yields one character per call; false means input is exhausted.
type Input interface {
	ReadChar() (rune, bool)
}

// Output accepts one character per call.
type Output interface {
	WriteChar(rune) error
}

type InputFunc func() (rune, bool)

func (f InputFunc) ReadChar() (rune, bool) {
	return f()
}

type OutputFunc func(rune) error

func (f OutputFunc) WriteChar(r rune) error {
	return f(r)
}

// Empty is an input that is always exhausted.
var Empty Input = InputFunc(func() (rune, bool) {
	return 0, false
})
