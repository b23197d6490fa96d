package main

import (
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/sessions"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
	Debugs   debugs.Module
}
