package engine

import (
	"fmt"
	"math"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// gateVertexEpsilon is the coordinate tolerance for finding the runs
// adjacent to a gate's anchor endpoint. Looser than the classifier's
// tolerance: hand-drawn neighbors snap less precisely than shared vertices.
const gateVertexEpsilon = 1.0 // mm

// ResolutionStatus distinguishes the outcomes of a lookup that must not
// silently pick a default.
type ResolutionStatus int

const (
	Resolved ResolutionStatus = iota
	NotFound
	Ambiguous
)

func (s ResolutionStatus) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// EffectiveWidth resolves a gate's opening width in mm. An explicit
// positive opening always wins over the type default. Custom gates have no
// default, so a custom gate without an opening resolves to NotFound.
func EffectiveWidth(gate model.Gate) (float64, ResolutionStatus) {
	if gate.OpeningMM > 0 {
		return gate.OpeningMM, Resolved
	}
	t, ok := model.CatalogType(gate.Type)
	if !ok || t.DefaultWidthMM <= 0 {
		return 0, NotFound
	}
	return t.DefaultWidthMM, Resolved
}

// ResolveWidthRange picks the catalog width bucket containing the gate's
// resolved width. Overlapping configured ranges that both match make the
// resolution Ambiguous; the caller surfaces that rather than guessing.
func ResolveWidthRange(gate model.Gate, ranges []model.WidthRange) (model.WidthRange, ResolutionStatus) {
	widthMM, status := EffectiveWidth(gate)
	if status != Resolved {
		return model.WidthRange{}, NotFound
	}
	widthM := widthMM / 1000.0

	var matched []model.WidthRange
	for _, r := range ranges {
		if r.Contains(widthM) {
			matched = append(matched, r)
		}
	}
	switch len(matched) {
	case 0:
		return model.WidthRange{}, NotFound
	case 1:
		return matched[0], Resolved
	default:
		return model.WidthRange{}, Ambiguous
	}
}

// requiredReturn returns the return space a sliding gate needs.
func requiredReturn(gate model.Gate) float64 {
	if gate.ReturnLengthMM > 0 {
		return gate.ReturnLengthMM
	}
	return model.DefaultSlidingReturnMM
}

// anchorEndpoint returns the endpoint of the gate line the sliding leaf
// retracts toward.
func anchorEndpoint(gate model.Gate, line model.Line) geom.Point {
	if gate.SlidingReturnDirection == model.ReturnRight {
		return line.B
	}
	return line.A
}

// ValidateSlidingReturn checks that every run adjacent to a sliding gate's
// anchor endpoint is long enough to receive the open leaf. Each violating
// neighbor yields its own finding; non-sliding gates always pass.
func ValidateSlidingReturn(gate model.Gate, line model.Line, allLines []model.Line) []string {
	if gate.Kind() != model.KindSliding {
		return nil
	}
	required := requiredReturn(gate)
	anchor := anchorEndpoint(gate, line)

	var findings []string
	for _, other := range allLines {
		if other.ID == line.ID {
			continue
		}
		if other.A.Distance(anchor) > gateVertexEpsilon && other.B.Distance(anchor) > gateVertexEpsilon {
			continue
		}
		if other.LengthMM < required {
			findings = append(findings, fmt.Sprintf(
				"sliding gate needs %.2fm of return run but the adjacent fence is only %.2fm",
				required/1000.0, other.LengthMM/1000.0))
		}
	}
	return findings
}

// ReturnRun is the drawable geometry of a sliding gate's return run: the
// strip of fence behind the opening that receives the sliding leaf.
// Rendering/export only; validation never reads it.
type ReturnRun struct {
	Start     geom.Point `json:"start"`
	End       geom.Point `json:"end"`
	Thickness float64    `json:"thickness"` // mm
}

// ReturnRunGeometry computes the return run for a sliding gate as a
// collinear extension beyond the anchor endpoint, away from the opening.
// scale is the caller's unit-per-pixel factor; a zero-length gate line or
// a non-positive or non-finite scale yields no geometry rather than an
// error.
func ReturnRunGeometry(gate model.Gate, line model.Line, scale, thicknessMM float64) *ReturnRun {
	if gate.Kind() != model.KindSliding {
		return nil
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil
	}
	if !line.A.IsFinite() || !line.B.IsFinite() {
		return nil
	}

	anchor := anchorEndpoint(gate, line)
	other := line.B
	if gate.SlidingReturnDirection == model.ReturnRight {
		other = line.A
	}

	dir := anchor.Sub(other).Normalize()
	if dir == (geom.Point{}) {
		return nil
	}

	required := requiredReturn(gate)
	return &ReturnRun{
		Start:     anchor,
		End:       anchor.Add(dir.Mul(required)),
		Thickness: thicknessMM,
	}
}
