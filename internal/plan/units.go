package plan

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompatibleUnits = errors.New("incompatible units")

type dimension int

const (
	mass dimension = iota
	volume
)

type unitDef struct {
	dim    dimension
	factor float64 // to grams or millilitres
}

var units = map[string]unitDef{
	"kg":  {mass, 1000},
	"g":   {mass, 1},
	"mg":  {mass, 1e-3},
	"mcg": {mass, 1e-6},
	"ug":  {mass, 1e-6},
	"µg":  {mass, 1e-6},
	"l":   {volume, 1000},
	"ml":  {volume, 1},
}

// Convert expresses q in unit `to`. Identical units (case-insensitive) always
// convert; otherwise both must be known mass or volume units.
func Convert(q float64, from, to string) (float64, error) {
	f, t := strings.ToLower(strings.TrimSpace(from)), strings.ToLower(strings.TrimSpace(to))
	if f == t {
		return q, nil
	}
	fd, okF := units[f]
	td, okT := units[t]
	if !okF || !okT || fd.dim != td.dim {
		return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleUnits, from, to)
	}
	return q * fd.factor / td.factor, nil
}
