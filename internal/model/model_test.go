package model

import (
	"testing"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
)

func TestNewLineLengthFromDistance(t *testing.T) {
	l := NewLine(geom.Pt(0, 0), geom.Pt(3000, 4000))
	if l.LengthMM != 5000 {
		t.Errorf("expected drawn length 5000, got %v", l.LengthMM)
	}
	if l.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestGateKindFromCatalog(t *testing.T) {
	cases := map[string]GateKind{
		"single-900":     KindSwing,
		"double-1800":    KindSwing,
		"sliding-4800":   KindSliding,
		"custom-opening": KindCustom,
		"no-such-type":   KindCustom,
	}
	for typeID, want := range cases {
		g := Gate{Type: typeID}
		if got := g.Kind(); got != want {
			t.Errorf("kind of %q: expected %v, got %v", typeID, want, got)
		}
	}
}

func TestCatalogType(t *testing.T) {
	typ, ok := CatalogType("sliding-4800")
	if !ok {
		t.Fatal("sliding-4800 missing from catalog")
	}
	if typ.DefaultWidthMM != 4800 {
		t.Errorf("expected default width 4800, got %v", typ.DefaultWidthMM)
	}
	if _, ok := CatalogType("bogus"); ok {
		t.Error("unknown type id should not resolve")
	}
}

func TestParseWidthRange(t *testing.T) {
	r, err := ParseWidthRange("3.0/4.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.MinM != 3.0 || r.MaxM != 4.5 {
		t.Errorf("expected 3.0/4.5, got %v/%v", r.MinM, r.MaxM)
	}
	if !r.Contains(4.0) || r.Contains(5.0) {
		t.Error("containment check wrong")
	}
}

func TestParseWidthRangeErrors(t *testing.T) {
	for _, s := range []string{"", "3.0", "a/b", "5/3", "1/2/3"} {
		if _, err := ParseWidthRange(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestPlanFinders(t *testing.T) {
	plan := NewPlan()
	l := NewLine(geom.Pt(0, 0), geom.Pt(1000, 0))
	g := NewGate("single-900", l.ID)
	l.GateID = g.ID
	plan.Lines = append(plan.Lines, l)
	plan.Gates = append(plan.Gates, g)

	if plan.FindLine(l.ID) == nil {
		t.Error("FindLine failed")
	}
	if plan.FindLine("missing") != nil {
		t.Error("FindLine should return nil for unknown id")
	}
	if plan.FindGate(g.ID) == nil {
		t.Error("FindGate failed")
	}
	if plan.GateForRun(l.ID) == nil {
		t.Error("GateForRun failed")
	}
	if plan.GateForRun("other") != nil {
		t.Error("GateForRun should return nil for gateless run")
	}
}
