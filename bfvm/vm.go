package bfvm

import (
	"fmt"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfio"
)

// VM walks a program tree over one band. A nil Input is always exhausted;
// a nil Output discards.
type VM struct {
	Band   bands.Band
	Input  bfio.Input
	Output bfio.Output
}

// Run executes program to completion. Loops have no iteration limit, so a
// loop whose body never clears its cell runs forever. The only errors are
// band faults and output failures.
func (v *VM) Run(program bfcode.Program) error {
	for _, command := range program {
		switch command := command.(type) {

		case bfcode.Move:
			if err := v.Band.Move(int(command)); err != nil {
				return fmt.Errorf("%v: %w", command, err)
			}

		case bfcode.Add:
			v.Band.Add(byte(command))

		case bfcode.Print:
			if v.Output == nil {
				continue
			}
			if err := v.Output.WriteChar(rune(v.Band.Read())); err != nil {
				return fmt.Errorf("print: %w", err)
			}

		case bfcode.Read:
			var cell byte
			if v.Input != nil {
				if r, ok := v.Input.ReadChar(); ok {
					cell = byte(r)
				}
			}
			v.Band.Write(cell)

		case bfcode.Loop:
			for v.Band.Read() != 0 {
				if err := v.Run(command.Body); err != nil {
					return err
				}
			}

		default:
			panic(fmt.Errorf("unknown command: %T", command))
		}
	}
	return nil
}

// Exec runs program on a caller-owned band, so state carries over between calls.
func Exec(program bfcode.Program, band bands.Band, input bfio.Input, output bfio.Output) error {
	vm := &VM{
		Band:   band,
		Input:  input,
		Output: output,
	}
	return vm.Run(program)
}

// ExecFresh runs program on a new band of kind and returns the band.
func ExecFresh(program bfcode.Program, kind bands.Kind, input bfio.Input, output bfio.Output) (bands.Band, error) {
	band := bands.New(kind)
	return band, Exec(program, band, input, output)
}
