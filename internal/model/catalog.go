package model

import (
	"fmt"
	"strconv"
	"strings"
)

// GateKind distinguishes gate behavior at the type level. Sliding gates
// need return-run space behind the opening; swing gates do not.
type GateKind int

const (
	KindSwing GateKind = iota
	KindSliding
	KindCustom
)

func (k GateKind) String() string {
	switch k {
	case KindSliding:
		return "Sliding"
	case KindCustom:
		return "Custom"
	default:
		return "Swing"
	}
}

// GateType is one entry of the gate catalog. DefaultWidthMM of zero means
// the type carries no default and the opening must be set explicitly.
type GateType struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Kind           GateKind `json:"kind"`
	DefaultWidthMM float64  `json:"default_width_mm"`
}

// GateCatalog lists the gate types the planner knows about.
var GateCatalog = []GateType{
	{ID: "single-900", Label: "Single Swing 900", Kind: KindSwing, DefaultWidthMM: 900},
	{ID: "single-1800", Label: "Single Swing 1800", Kind: KindSwing, DefaultWidthMM: 1800},
	{ID: "double-900", Label: "Double Swing 2x900", Kind: KindSwing, DefaultWidthMM: 1800},
	{ID: "double-1800", Label: "Double Swing 2x1800", Kind: KindSwing, DefaultWidthMM: 3600},
	{ID: "sliding-4800", Label: "Sliding 4800", Kind: KindSliding, DefaultWidthMM: 4800},
	{ID: "custom-opening", Label: "Custom Opening", Kind: KindCustom, DefaultWidthMM: 0},
}

// CatalogType returns the catalog entry for a type id.
func CatalogType(id string) (GateType, bool) {
	for _, t := range GateCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return GateType{}, false
}

// GateTypeIDs returns the ids of all catalog types, in catalog order.
func GateTypeIDs() []string {
	ids := make([]string, len(GateCatalog))
	for i, t := range GateCatalog {
		ids[i] = t.ID
	}
	return ids
}

// WidthRange is a sliding-gate width bucket, bounds in meters inclusive.
type WidthRange struct {
	MinM float64 `json:"min_m"`
	MaxM float64 `json:"max_m"`
}

// String formats the range back into the "min/max" catalog form.
func (r WidthRange) String() string {
	return fmt.Sprintf("%g/%g", r.MinM, r.MaxM)
}

// Contains reports whether the width in meters falls inside the range.
func (r WidthRange) Contains(widthM float64) bool {
	return widthM >= r.MinM && widthM <= r.MaxM
}

// ParseWidthRange parses a "min/max" range string with bounds in meters.
func ParseWidthRange(s string) (WidthRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return WidthRange{}, fmt.Errorf("width range %q: want \"min/max\"", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return WidthRange{}, fmt.Errorf("width range %q: bad min: %w", s, err)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return WidthRange{}, fmt.Errorf("width range %q: bad max: %w", s, err)
	}
	if max < min {
		return WidthRange{}, fmt.Errorf("width range %q: max below min", s)
	}
	return WidthRange{MinM: min, MaxM: max}, nil
}

// DefaultSlidingRanges returns the configured sliding-gate width buckets.
func DefaultSlidingRanges() []WidthRange {
	return []WidthRange{
		{MinM: 0, MaxM: 3.0},
		{MinM: 3.0, MaxM: 4.5},
		{MinM: 4.5, MaxM: 6.0},
	}
}
