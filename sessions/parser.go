package sessions

import (
	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/logs"
)

// Parser logs matched loop spans at debug level.
func (Module) Parser(
	logger logs.Logger,
) *bfcode.Parser {
	return &bfcode.Parser{
		OnLoop: func(open, close int) {
			logger.Debug("loop", "from", open+1, "to", close)
		},
	}
}
