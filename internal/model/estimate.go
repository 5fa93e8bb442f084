package model

import "math"

// MaterialEstimate summarizes what a layout consumes: the counts the
// pricing and export layers are owed.
type MaterialEstimate struct {
	SegmentCount    int     `json:"segment_count"`
	FreshPanels     int     `json:"fresh_panels"`     // full stock panels purchased
	LeftoverCuts    int     `json:"leftover_cuts"`    // segments sourced from pool offcuts
	TotalCutMM      float64 `json:"total_cut_mm"`     // summed segment length
	ReusableMM      float64 `json:"reusable_mm"`      // leftover length registered this pass
	WasteMM         float64 `json:"waste_mm"`         // purchased length lost to kerf and scrap
	PostsEnd        int     `json:"posts_end"`
	PostsCorner     int     `json:"posts_corner"`
	PostsLine       int     `json:"posts_line"`
	PanelsWithWaste int     `json:"panels_with_waste"` // recommended purchase incl. waste factor
	WastePercent    float64 `json:"waste_percent"`
	EstimatedCost   float64 `json:"estimated_cost"`
}

// EstimateMaterials computes purchase quantities and cost for a completed
// recalculation. Every segment not sourced from a leftover consumes one
// fresh stock panel (full panels are used whole; remainder cuts take a
// fresh panel and may give part of it back as a new leftover).
func EstimateMaterials(segments []PanelSegment, posts []Post, newLeftovers []Leftover, settings PlanSettings) MaterialEstimate {
	est := MaterialEstimate{
		SegmentCount: len(segments),
		WastePercent: settings.WastePercent,
	}

	for _, s := range segments {
		est.TotalCutMM += s.LengthMM
		if s.UsesLeftoverID != "" {
			est.LeftoverCuts++
		} else {
			est.FreshPanels++
		}
	}
	for _, l := range newLeftovers {
		est.ReusableMM += l.LengthMM
	}

	purchasedMM := float64(est.FreshPanels) * StockPanelLength
	var freshCutMM float64
	for _, s := range segments {
		if s.UsesLeftoverID == "" {
			freshCutMM += s.LengthMM
		}
	}
	est.WasteMM = purchasedMM - freshCutMM - est.ReusableMM
	if est.WasteMM < 0 {
		est.WasteMM = 0
	}

	for _, p := range posts {
		switch p.Category {
		case PostCorner:
			est.PostsCorner++
		case PostLine:
			est.PostsLine++
		default:
			est.PostsEnd++
		}
	}

	wasteFactor := 1.0 + settings.WastePercent/100.0
	est.PanelsWithWaste = int(math.Ceil(float64(est.FreshPanels) * wasteFactor))
	if est.PanelsWithWaste < est.FreshPanels {
		est.PanelsWithWaste = est.FreshPanels
	}

	est.EstimatedCost = float64(est.PanelsWithWaste)*settings.PricePerPanel +
		float64(len(posts))*settings.PricePerPost

	return est
}
