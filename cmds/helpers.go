package cmds

// Var defines name to set a value, and name+"." to reset it to zero.
func Var[T any](name string, desc string, aliases ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Alias(aliases...))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines name (and aliases) to turn on, "!"+name to turn off.
func Switch(name string, desc string, aliases ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc).Alias(aliases...))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))
	return &value
}
