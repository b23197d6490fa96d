package bfvm

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfio"
)

func mustParse(t *testing.T, src string) bfcode.Program {
	t.Helper()
	program, err := bfcode.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return program
}

const helloWorld = `
++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
`

func TestHelloWorld(t *testing.T) {
	program := mustParse(t, helloWorld)
	for _, kind := range []bands.Kind{bands.KindBounded, bands.KindUnbounded} {
		out := new(bfio.Capture)
		if _, err := ExecFresh(program, kind, nil, out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("%v: got %q", kind, out.String())
		}
	}
}

func TestReadPrint(t *testing.T) {
	out := new(bfio.Capture)
	if _, err := ExecFresh(mustParse(t, ",."), bands.KindUnbounded, bfio.NewQueue("A"), out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "A" {
		t.Fatalf("got %q", out.String())
	}
}

func TestReadExhausted(t *testing.T) {
	band := bands.NewUnbounded()
	band.Write(9)
	if err := Exec(mustParse(t, ","), band, bfio.NewQueue(""), nil); err != nil {
		t.Fatal(err)
	}
	if band.Read() != 0 {
		t.Fatalf("got %v", band.Read())
	}

	band.Write(9)
	if err := Exec(mustParse(t, ","), band, nil, nil); err != nil {
		t.Fatal(err)
	}
	if band.Read() != 0 {
		t.Fatalf("got %v", band.Read())
	}
}

func TestReadTruncates(t *testing.T) {
	band := bands.NewUnbounded()
	in := bfio.NewQueue("é€")
	program := mustParse(t, ",>,")
	if err := Exec(program, band, in, nil); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(band.Cells(), []byte{0xe9, 0xac}) {
		t.Fatalf("got %x", band.Cells())
	}
}

func TestCat(t *testing.T) {
	// copy input until exhaustion reads a zero
	out := new(bfio.Capture)
	if _, err := ExecFresh(mustParse(t, ",[.,]"), bands.KindBounded, bfio.NewQueue("hello"), out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello" {
		t.Fatalf("got %q", out.String())
	}
}

func TestEmptyLoop(t *testing.T) {
	band, err := ExecFresh(mustParse(t, "[]"), bands.KindUnbounded, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(band.Cells(), []byte{0}) || band.Head() != 0 {
		t.Fatalf("got %v at %d", band.Cells(), band.Head())
	}
}

func TestLoopRunsUntilStopped(t *testing.T) {
	// "+[.]" never clears its cell; only the failing output ends it
	errStop := errors.New("stop")
	n := 0
	out := bfio.OutputFunc(func(rune) error {
		n++
		if n == 1000 {
			return errStop
		}
		return nil
	})
	_, err := ExecFresh(mustParse(t, "+[.]"), bands.KindBounded, nil, out)
	if !errors.Is(err, errStop) {
		t.Fatalf("got %v", err)
	}
	if n != 1000 {
		t.Fatalf("got %v", n)
	}
}

func TestUnboundedGrowth(t *testing.T) {
	band, err := ExecFresh(mustParse(t, "<"), bands.KindUnbounded, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(band.Cells(), []byte{0, 0}) || band.Head() != 0 {
		t.Fatalf("got %v at %d", band.Cells(), band.Head())
	}
}

func TestBoundedOverflow(t *testing.T) {
	program := mustParse(t, "+"+strings.Repeat("<", 15_001))
	band, err := ExecFresh(program, bands.KindBounded, nil, nil)
	if !errors.Is(err, bands.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
	var fault *bands.Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %T", err)
	}
	if fault.Offset != -15_001 {
		t.Fatalf("got %+v", fault)
	}
	if !strings.HasPrefix(err.Error(), "Move(-15001): head moved out of bounds") {
		t.Fatalf("got %v", err)
	}
	// effects before the fault stay
	if band.Head() != 15_000 || band.Read() != 1 {
		t.Fatalf("got %v at %d", band.Read(), band.Head())
	}

	// the same distance is fine without a bound
	if _, err := ExecFresh(program, bands.KindUnbounded, nil, nil); err != nil {
		t.Fatal(err)
	}
}

func TestFaultInsideLoop(t *testing.T) {
	_, err := ExecFresh(mustParse(t, "+[>+]"), bands.KindBounded, nil, nil)
	if !errors.Is(err, bands.ErrOutOfBounds) {
		t.Fatalf("got %v", err)
	}
}

func TestRepeatable(t *testing.T) {
	program := mustParse(t, "++++++[>++++++++<-]>+.")
	for range 3 {
		out := new(bfio.Capture)
		if _, err := ExecFresh(program, bands.KindUnbounded, nil, out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "1" {
			t.Fatalf("got %q", out.String())
		}
	}
}

func TestPersistentBand(t *testing.T) {
	band := bands.NewBounded()
	out := new(bfio.Capture)
	for _, src := range []string{"+++", ">++", "<.>."} {
		if err := Exec(mustParse(t, src), band, nil, out); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(out.Runes, []rune{3, 2}) {
		t.Fatalf("got %v", out.Runes)
	}
}

func TestWrapAround(t *testing.T) {
	out := new(bfio.Capture)
	if _, err := ExecFresh(mustParse(t, "-."), bands.KindBounded, nil, out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.Runes, []rune{255}) {
		t.Fatalf("got %v", out.Runes)
	}
}
