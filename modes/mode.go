package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Hermetic reports whether providers should avoid touching the host,
// such as reading config files from the user's directories.
func (m Mode) Hermetic() bool {
	return m != ModeProduction
}
