package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

func TestEffectiveWidth_ExplicitOpeningWins(t *testing.T) {
	g := model.Gate{Type: "single-900", OpeningMM: 1234}
	w, status := EffectiveWidth(g)
	assert.Equal(t, Resolved, status)
	assert.Equal(t, 1234.0, w)
}

func TestEffectiveWidth_TypeDefaults(t *testing.T) {
	cases := map[string]float64{
		"single-900":   900,
		"single-1800":  1800,
		"double-900":   1800,
		"double-1800":  3600,
		"sliding-4800": 4800,
	}
	for typeID, want := range cases {
		w, status := EffectiveWidth(model.Gate{Type: typeID})
		assert.Equal(t, Resolved, status, typeID)
		assert.Equal(t, want, w, typeID)
	}
}

func TestEffectiveWidth_CustomWithoutOpeningNotFound(t *testing.T) {
	_, status := EffectiveWidth(model.Gate{Type: "custom-opening"})
	assert.Equal(t, NotFound, status)
}

func TestResolveWidthRange_SingleMatch(t *testing.T) {
	g := model.Gate{Type: "sliding-4800"} // 4.8m
	r, status := ResolveWidthRange(g, model.DefaultSlidingRanges())
	require.Equal(t, Resolved, status)
	assert.Equal(t, 4.5, r.MinM)
	assert.Equal(t, 6.0, r.MaxM)
}

func TestResolveWidthRange_OverlapIsAmbiguous(t *testing.T) {
	ranges := []model.WidthRange{
		{MinM: 0, MaxM: 5},
		{MinM: 4, MaxM: 6},
	}
	g := model.Gate{Type: "sliding-4800"} // 4.8m matches both
	_, status := ResolveWidthRange(g, ranges)
	assert.Equal(t, Ambiguous, status)
}

func TestResolveWidthRange_NoMatchNotFound(t *testing.T) {
	ranges := []model.WidthRange{{MinM: 0, MaxM: 2}}
	g := model.Gate{Type: "sliding-4800"}
	_, status := ResolveWidthRange(g, ranges)
	assert.Equal(t, NotFound, status)
}

func TestValidateSlidingReturn_ShortNeighborFails(t *testing.T) {
	gateLine := line("g", 0, 0, 4800, 0)
	neighbor := line("n", 0, 0, 0, 3000)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft}

	findings := ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, neighbor})

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "4.80m")
	assert.Contains(t, findings[0], "3.00m")
}

func TestValidateSlidingReturn_LongNeighborPasses(t *testing.T) {
	gateLine := line("g", 0, 0, 4800, 0)
	neighbor := line("n", 0, 0, 0, 5000)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft}

	findings := ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, neighbor})
	assert.Empty(t, findings)
}

func TestValidateSlidingReturn_AllViolatingNeighborsReported(t *testing.T) {
	gateLine := line("g", 0, 0, 4800, 0)
	n1 := line("n1", 0, 0, 0, 2000)
	n2 := line("n2", 0, 0, -1000, 0)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft}

	findings := ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, n1, n2})
	assert.Len(t, findings, 2, "no short-circuit on the first violation")
}

func TestValidateSlidingReturn_RightDirectionUsesLineB(t *testing.T) {
	gateLine := line("g", 0, 0, 4800, 0)
	shortAtB := line("n", 4800, 0, 4800, 1000)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnRight}

	findings := ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, shortAtB})
	assert.Len(t, findings, 1)
}

func TestValidateSlidingReturn_ExplicitReturnLength(t *testing.T) {
	gateLine := line("g", 0, 0, 3000, 0)
	neighbor := line("n", 0, 0, 0, 3000)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft, ReturnLengthMM: 2500}

	findings := ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, neighbor})
	assert.Empty(t, findings, "3.0m neighbor covers an explicit 2.5m return")
}

func TestValidateSlidingReturn_SwingGateSkipped(t *testing.T) {
	gateLine := line("g", 0, 0, 1800, 0)
	neighbor := line("n", 0, 0, 0, 100)
	gate := model.Gate{ID: "g1", Type: "double-1800", RunID: "g"}

	assert.Empty(t, ValidateSlidingReturn(gate, gateLine, []model.Line{gateLine, neighbor}))
}

func TestReturnRunGeometry_CollinearExtension(t *testing.T) {
	gateLine := line("g", 1000, 0, 5800, 0)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft}

	rr := ReturnRunGeometry(gate, gateLine, 1.0, 50)
	require.NotNil(t, rr)
	// Anchored at A, extending away from the opening (negative X).
	assert.InDelta(t, 1000.0, rr.Start.X, 0.001)
	assert.InDelta(t, 1000.0-4800.0, rr.End.X, 0.001)
	assert.InDelta(t, 0.0, rr.End.Y, 0.001)
	assert.Equal(t, 50.0, rr.Thickness)
}

func TestReturnRunGeometry_RightDirection(t *testing.T) {
	gateLine := line("g", 0, 0, 4800, 0)
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnRight, ReturnLengthMM: 2000}

	rr := ReturnRunGeometry(gate, gateLine, 1.0, 50)
	require.NotNil(t, rr)
	assert.InDelta(t, 4800.0, rr.Start.X, 0.001)
	assert.InDelta(t, 6800.0, rr.End.X, 0.001)
}

func TestReturnRunGeometry_DegenerateInputsYieldNoGeometry(t *testing.T) {
	gate := model.Gate{ID: "g1", Type: "sliding-4800", RunID: "g",
		SlidingReturnDirection: model.ReturnLeft}

	zero := line("g", 100, 100, 100, 100)
	assert.Nil(t, ReturnRunGeometry(gate, zero, 1.0, 50), "zero-length line")

	ok := line("g", 0, 0, 4800, 0)
	assert.Nil(t, ReturnRunGeometry(gate, ok, 0, 50), "zero scale")
	assert.Nil(t, ReturnRunGeometry(gate, ok, -2, 50), "negative scale")
	assert.Nil(t, ReturnRunGeometry(gate, ok, math.NaN(), 50), "NaN scale")
	assert.Nil(t, ReturnRunGeometry(gate, ok, math.Inf(1), 50), "infinite scale")

	bad := ok
	bad.A.X = math.NaN()
	assert.Nil(t, ReturnRunGeometry(gate, bad, 1.0, 50), "non-finite endpoint")
}

func TestReturnRunGeometry_SwingGateHasNone(t *testing.T) {
	gateLine := line("g", 0, 0, 1800, 0)
	gate := model.Gate{ID: "g1", Type: "single-1800", RunID: "g"}
	assert.Nil(t, ReturnRunGeometry(gate, gateLine, 1.0, 50))
}
