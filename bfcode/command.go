package bfcode

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Command is one node of a parsed program: Move, Add, Print, Read or Loop.
type Command interface {
	command()
	String() string
}

// Program is an ordered sequence of commands. It is never mutated after
// parsing and can run any number of times.
type Program []Command

func (p Program) String() string {
	return strings.Join(lo.Map(p, func(c Command, _ int) string {
		return c.String()
	}), " ")
}

// Move displaces the head by a signed amount.
type Move int

// Add adds to the current cell modulo 256.
type Add uint8

// Print emits the current cell as a character.
type Print struct{}

// Read stores the next input character in the current cell, or 0 on exhaustion.
type Read struct{}

// Loop runs Body while the current cell is not zero.
type Loop struct {
	Body Program
}

func (Move) command()  {}
func (Add) command()   {}
func (Print) command() {}
func (Read) command()  {}
func (Loop) command()  {}

func (m Move) String() string {
	return "Move(" + strconv.Itoa(int(m)) + ")"
}

func (a Add) String() string {
	return "Add(" + strconv.Itoa(int(a)) + ")"
}

func (Print) String() string {
	return "Print"
}

func (Read) String() string {
	return "Read"
}

func (l Loop) String() string {
	return "Loop[" + l.Body.String() + "]"
}
