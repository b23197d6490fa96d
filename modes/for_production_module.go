package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is what cmd/bfi runs with. It provides a nil test.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
