package sessions

import (
	"github.com/reusee/bfi/bfconfigs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
}
