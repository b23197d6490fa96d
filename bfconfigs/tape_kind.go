package bfconfigs

import (
	"github.com/reusee/bfi/bands"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
)

var infiniteMemoryFlag = cmds.Switch("-m", "use a band that grows on demand instead of 30000 cells", "-infinite-memory")

// TapeKind selects the band for every program run. Unbounded comes at a
// performance cost, so the fixed-capacity band is the default.
func (Module) TapeKind(
	loader configs.Loader,
) bands.Kind {
	if *infiniteMemoryFlag || configs.First[bool](loader, "infinite_memory") {
		return bands.KindUnbounded
	}
	return bands.KindBounded
}
