package engine

import (
	"fmt"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// Result holds everything one recalculation pass produces.
type Result struct {
	SegmentsByRun map[string][]model.PanelSegment
	Segments      []model.PanelSegment // all segments, in run order
	Posts         []model.Post
	NewLeftovers  []model.Leftover
	Pool          model.LeftoverPool // updated pool to thread into the next pass
	Warnings      []string
	GateFindings  []string
	ReturnRuns    map[string]*ReturnRun // by gate ID; nil entries omitted
}

// Recalculate runs a full pass over the plan: allocates every run against
// the shared leftover pool in slice order, rebuilds all posts, and
// validates all gates. The input plan is not mutated; the caller decides
// whether to adopt the returned pool.
func Recalculate(plan model.Plan) Result {
	res := Result{
		SegmentsByRun: make(map[string][]model.PanelSegment, len(plan.Lines)),
		ReturnRuns:    make(map[string]*ReturnRun),
	}

	pool := plan.Pool.Clone()
	joints := make(map[string][]float64, len(plan.Lines))

	for _, line := range plan.Lines {
		var alloc Allocation
		alloc, pool = FitPanels(line.ID, line.LengthMM, line.EvenSpacing, pool)
		res.SegmentsByRun[line.ID] = alloc.Segments
		res.Segments = append(res.Segments, alloc.Segments...)
		res.NewLeftovers = append(res.NewLeftovers, alloc.NewLeftovers...)
		res.Warnings = append(res.Warnings, alloc.Warnings...)
		joints[line.ID] = alloc.JointPositions
	}
	res.Pool = pool

	res.Posts = GeneratePosts(plan.Lines, plan.Gates, joints)

	for _, gate := range plan.Gates {
		line := plan.FindLine(gate.RunID)
		if line == nil {
			res.GateFindings = append(res.GateFindings,
				fmt.Sprintf("gate %s references missing run %s", gate.ID, gate.RunID))
			continue
		}
		if _, status := EffectiveWidth(gate); status != Resolved {
			res.GateFindings = append(res.GateFindings,
				fmt.Sprintf("gate %s: opening width %s", gate.ID, status))
		} else if gate.Kind() == model.KindSliding {
			res.GateFindings = append(res.GateFindings, checkWidthRange(gate)...)
		}
		res.GateFindings = append(res.GateFindings, ValidateSlidingReturn(gate, *line, plan.Lines)...)
		if rr := ReturnRunGeometry(gate, *line, 1.0, plan.Settings.ReturnThicknessMM); rr != nil {
			res.ReturnRuns[gate.ID] = rr
		}
	}

	return res
}

// checkWidthRange re-resolves a sliding gate's width bucket and compares
// it against the bucket stored on the gate, if any.
func checkWidthRange(gate model.Gate) []string {
	var findings []string

	bucket, status := ResolveWidthRange(gate, model.DefaultSlidingRanges())
	if status != Resolved {
		findings = append(findings,
			fmt.Sprintf("gate %s: width range %s", gate.ID, status))
		return findings
	}

	if gate.WidthRange == "" {
		return findings
	}
	declared, err := model.ParseWidthRange(gate.WidthRange)
	if err != nil {
		findings = append(findings, fmt.Sprintf("gate %s: %v", gate.ID, err))
		return findings
	}
	if declared != bucket {
		findings = append(findings, fmt.Sprintf(
			"gate %s: declared width range %s no longer matches resolved range %s",
			gate.ID, declared, bucket))
	}
	return findings
}
