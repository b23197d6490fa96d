package bands

import (
	"encoding/gob"
	"fmt"
	"io"
)

func init() {
	gob.Register(&Unbounded{})
	gob.Register(&Bounded{})
}

type snapshot struct {
	Band Band
}

// Snapshot writes band to w so a later session can Restore it.
func Snapshot(w io.Writer, band Band) error {
	if err := gob.NewEncoder(w).Encode(snapshot{
		Band: band,
	}); err != nil {
		return fmt.Errorf("snapshot band: %w", err)
	}
	return nil
}

func Restore(r io.Reader) (Band, error) {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("restore band: %w", err)
	}
	if err := validate(s.Band); err != nil {
		return nil, fmt.Errorf("restore band: %w", err)
	}
	return s.Band, nil
}

func validate(band Band) error {
	switch band := band.(type) {
	case *Unbounded:
		if len(band.Right) == 0 {
			band.Right = []byte{0}
		}
		if band.Pos >= len(band.Right) || band.Pos < -len(band.Left) {
			return fmt.Errorf("head %d outside band", band.Pos)
		}
	case *Bounded:
		if band.Pos < 0 || band.Pos >= len(band.Data) {
			return fmt.Errorf("head %d outside band", band.Pos)
		}
	default:
		return fmt.Errorf("unknown band type %T", band)
	}
	return nil
}
