package model

import (
	"github.com/google/uuid"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
)

// Material constants. All lengths are in mm.
const (
	// StockPanelLength is the fixed manufactured panel length segments are cut from.
	StockPanelLength = 2390.0
	// MinLeftoverLength is the shortest offcut worth keeping for reuse.
	// Anything shorter is scrap.
	MinLeftoverLength = 300.0
	// CutBuffer is the material lost per cut beyond the piece length
	// (saw kerf plus handling allowance).
	CutBuffer = 300.0
	// PositionEpsilon is the tolerance for run-local position equality.
	PositionEpsilon = 0.5
	// DefaultSlidingReturnMM is the return space a sliding gate needs when
	// no explicit return length is configured.
	DefaultSlidingReturnMM = 4800.0
)

// Line represents one straight fence run between two posts.
//
// LengthMM is authoritative for allocation and validation; A and B are
// authoritative for topology and geometry. The two may diverge when the
// editor decouples drawn length from entered length.
type Line struct {
	ID          string     `json:"id"`
	A           geom.Point `json:"a"`
	B           geom.Point `json:"b"`
	LengthMM    float64    `json:"length_mm"`
	Locked90    bool       `json:"locked_90"`
	EvenSpacing bool       `json:"even_spacing"`
	GateID      string     `json:"gate_id,omitempty"`
}

// NewLine creates a line between two points with the drawn distance as its
// length.
func NewLine(a, b geom.Point) Line {
	return Line{
		ID:       uuid.New().String()[:8],
		A:        a,
		B:        b,
		LengthMM: a.Distance(b),
	}
}

// ReturnDirection selects which end of a run a sliding gate opens toward.
type ReturnDirection string

const (
	ReturnLeft  ReturnDirection = "left"  // gate slides toward line.A
	ReturnRight ReturnDirection = "right" // gate slides toward line.B
)

// Gate represents a gate attached to a single run.
type Gate struct {
	ID                     string          `json:"id"`
	Type                   string          `json:"type"` // catalog type id, see GateCatalog
	OpeningMM              float64         `json:"opening_mm"`
	RunID                  string          `json:"run_id"`
	SlidingReturnDirection ReturnDirection `json:"sliding_return_direction,omitempty"`
	ReturnLengthMM         float64         `json:"return_length_mm,omitempty"`
	WidthRange             string          `json:"width_range,omitempty"` // "min/max" in meters
}

// NewGate creates a gate of the given catalog type attached to a run.
func NewGate(typeID, runID string) Gate {
	return Gate{
		ID:                     uuid.New().String()[:8],
		Type:                   typeID,
		RunID:                  runID,
		SlidingReturnDirection: ReturnLeft,
	}
}

// Kind returns the tagged kind for the gate's catalog type. Unknown type
// ids are treated as custom so width resolution fails loudly instead of
// guessing a default.
func (g Gate) Kind() GateKind {
	if t, ok := CatalogType(g.Type); ok {
		return t.Kind
	}
	return KindCustom
}

// PanelSegment is one physical cut piece placed along a run, in run-local
// coordinates [0, LengthMM].
type PanelSegment struct {
	ID            string  `json:"id"`
	RunID         string  `json:"run_id"`
	StartMM       float64 `json:"start_mm"`
	EndMM         float64 `json:"end_mm"`
	LengthMM      float64 `json:"length_mm"`
	UsesLeftoverID string `json:"uses_leftover_id,omitempty"`
	IsRemainder   bool    `json:"is_remainder,omitempty"`
}

// Leftover is an offcut available for reuse in a later, shorter cut.
// Once consumed it stays in the pool for bookkeeping but is excluded from
// further matching.
type Leftover struct {
	ID       string  `json:"id"`
	LengthMM float64 `json:"length_mm"`
	Consumed bool    `json:"consumed"`
}

// NewLeftover creates an unconsumed leftover of the given length.
func NewLeftover(lengthMM float64) Leftover {
	return Leftover{
		ID:       uuid.New().String()[:8],
		LengthMM: lengthMM,
	}
}

// PostCategory is the topological role of a post in the fence graph.
type PostCategory string

const (
	PostEnd    PostCategory = "end"    // run terminus or gate-bearing vertex
	PostCorner PostCategory = "corner" // direction change or T-junction
	PostLine   PostCategory = "line"   // collinear joint between panels
)

// Post is one physical post. Posts are derived state: they are rebuilt from
// lines and gates on every recalculation and never persisted as truth.
type Post struct {
	ID       string       `json:"id"`
	Pos      geom.Point   `json:"pos"`
	Category PostCategory `json:"category"`
}

// PlanSettings holds pricing and rendering configuration for a plan.
type PlanSettings struct {
	PricePerPanel     float64 `json:"price_per_panel"`
	PricePerPost      float64 `json:"price_per_post"`
	WastePercent      float64 `json:"waste_percent"`       // extra purchase allowance
	ReturnThicknessMM float64 `json:"return_thickness_mm"` // drawn thickness of sliding return runs
}

// DefaultSettings returns the settings applied to new plans.
func DefaultSettings() PlanSettings {
	return PlanSettings{
		PricePerPanel:     89.0,
		PricePerPost:      32.0,
		WastePercent:      10.0,
		ReturnThicknessMM: 50.0,
	}
}

// Plan ties a full fence layout together for save/load.
type Plan struct {
	Name     string       `json:"name"`
	Lines    []Line       `json:"lines"`
	Gates    []Gate       `json:"gates"`
	Pool     LeftoverPool `json:"pool"`
	Settings PlanSettings `json:"settings"`
}

// NewPlan returns an empty plan with default settings.
func NewPlan() Plan {
	return Plan{
		Name:     "Untitled",
		Lines:    []Line{},
		Gates:    []Gate{},
		Settings: DefaultSettings(),
	}
}

// FindLine returns a pointer to the line with the given ID, or nil.
func (p *Plan) FindLine(id string) *Line {
	for i := range p.Lines {
		if p.Lines[i].ID == id {
			return &p.Lines[i]
		}
	}
	return nil
}

// FindGate returns a pointer to the gate with the given ID, or nil.
func (p *Plan) FindGate(id string) *Gate {
	for i := range p.Gates {
		if p.Gates[i].ID == id {
			return &p.Gates[i]
		}
	}
	return nil
}

// GateForRun returns the gate attached to the given run, or nil.
func (p *Plan) GateForRun(runID string) *Gate {
	for i := range p.Gates {
		if p.Gates[i].RunID == runID {
			return &p.Gates[i]
		}
	}
	return nil
}
