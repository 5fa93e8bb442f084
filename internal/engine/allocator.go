// Package engine implements the fence run layout algorithms: panel and
// leftover allocation, post topology classification, and gate geometry
// validation. Everything here is a pure synchronous computation; the
// caller owns all state between passes.
package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// Allocation is the result of fitting panels to a single run.
type Allocation struct {
	Segments       []model.PanelSegment
	JointPositions []float64 // run-local distances of interior panel joints
	NewLeftovers   []model.Leftover
	Warnings       []string
}

// FitPanels converts one run's length into cut segments, consuming and
// producing offcut stock. The pool is taken by value and returned updated;
// callers fold it through successive runs so that allocation order is
// explicit (first run, first served).
func FitPanels(runID string, lengthMM float64, evenSpacing bool, pool model.LeftoverPool) (Allocation, model.LeftoverPool) {
	pool = pool.Clone()
	var alloc Allocation

	if lengthMM < model.PositionEpsilon {
		return alloc, pool
	}

	if evenSpacing {
		allocEven(runID, lengthMM, &alloc, &pool)
	} else {
		allocFixed(runID, lengthMM, &alloc, &pool)
	}
	return alloc, pool
}

// allocFixed emits full stock panels back to back plus a remainder cut.
func allocFixed(runID string, lengthMM float64, alloc *Allocation, pool *model.LeftoverPool) {
	const L = model.StockPanelLength

	fullCount := int(math.Floor(lengthMM / L))
	remainder := lengthMM - float64(fullCount)*L
	if remainder < model.PositionEpsilon {
		remainder = 0
	}

	pos := 0.0
	for i := 0; i < fullCount; i++ {
		alloc.Segments = append(alloc.Segments, model.PanelSegment{
			ID:       uuid.New().String()[:8],
			RunID:    runID,
			StartMM:  pos,
			EndMM:    pos + L,
			LengthMM: L,
		})
		pos += L
	}

	if remainder > 0 {
		if remainder < model.MinLeftoverLength {
			alloc.Warnings = append(alloc.Warnings, fmt.Sprintf(
				"run %s: %.0fmm remainder panel is below the %.0fmm minimum; consider even spacing or lengthening the run",
				runID, remainder, model.MinLeftoverLength))
		}
		seg := cutPiece(runID, remainder, alloc, pool)
		seg.StartMM = pos
		seg.EndMM = lengthMM
		seg.IsRemainder = true
		alloc.Segments = append(alloc.Segments, seg)
	}

	for j := L; j < lengthMM-model.PositionEpsilon; j += L {
		alloc.JointPositions = append(alloc.JointPositions, j)
	}
}

// allocEven divides the run into equal segments.
func allocEven(runID string, lengthMM float64, alloc *Allocation, pool *model.LeftoverPool) {
	const L = model.StockPanelLength

	panelCount := int(math.Ceil(lengthMM / L))
	if panelCount < 1 {
		panelCount = 1
	}
	spacing := lengthMM / float64(panelCount)
	needsCut := L-spacing > model.PositionEpsilon

	for i := 0; i < panelCount; i++ {
		start := float64(i) * spacing
		end := float64(i+1) * spacing
		if i == panelCount-1 {
			end = lengthMM
		}

		var seg model.PanelSegment
		if needsCut {
			seg = cutPiece(runID, spacing, alloc, pool)
		} else {
			seg = model.PanelSegment{
				ID:       uuid.New().String()[:8],
				RunID:    runID,
				LengthMM: spacing,
			}
		}
		seg.StartMM = start
		seg.EndMM = end
		alloc.Segments = append(alloc.Segments, seg)
	}

	for i := 1; i < panelCount; i++ {
		alloc.JointPositions = append(alloc.JointPositions, float64(i)*spacing)
	}
}

// cutPiece sources a cut of requiredMM from the leftover pool if any
// unconsumed offcut covers the piece plus cutting buffer, otherwise from a
// fresh stock panel. Either way the residual is registered back into the
// pool when it is long enough to reuse.
func cutPiece(runID string, requiredMM float64, alloc *Allocation, pool *model.LeftoverPool) model.PanelSegment {
	seg := model.PanelSegment{
		ID:       uuid.New().String()[:8],
		RunID:    runID,
		LengthMM: requiredMM,
	}

	sourceLen := model.StockPanelLength
	if lo, ok := pool.ConsumeBest(requiredMM); ok {
		seg.UsesLeftoverID = lo.ID
		sourceLen = lo.LengthMM
	}

	residual := sourceLen - requiredMM - model.CutBuffer
	if residual >= model.MinLeftoverLength {
		nl := model.NewLeftover(residual)
		pool.Add(nl)
		alloc.NewLeftovers = append(alloc.NewLeftovers, nl)
	}
	return seg
}
