package model

import "testing"

func TestDefaultAppConfigMatchesSettings(t *testing.T) {
	c := DefaultAppConfig()
	d := DefaultSettings()
	if c.DefaultPricePerPanel != d.PricePerPanel {
		t.Errorf("panel price mismatch: %v vs %v", c.DefaultPricePerPanel, d.PricePerPanel)
	}
	if c.RecentProjects == nil {
		t.Error("recent projects must not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	c := DefaultAppConfig()
	c.DefaultPricePerPanel = 123
	c.DefaultWastePercent = 7

	var s PlanSettings
	c.ApplyToSettings(&s)
	if s.PricePerPanel != 123 || s.WastePercent != 7 {
		t.Errorf("settings not applied: %+v", s)
	}
}

func TestAddRecentProject(t *testing.T) {
	c := DefaultAppConfig()
	c.AddRecentProject("/tmp/a.json")
	c.AddRecentProject("/tmp/b.json")
	c.AddRecentProject("/tmp/a.json") // re-open moves to front, no duplicate

	if len(c.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c.RecentProjects))
	}
	if c.RecentProjects[0] != "/tmp/a.json" {
		t.Errorf("most recent first, got %v", c.RecentProjects)
	}

	for i := 0; i < 20; i++ {
		c.AddRecentProject(string(rune('a'+i)) + ".json")
	}
	if len(c.RecentProjects) > 10 {
		t.Errorf("recent list must cap at 10, got %d", len(c.RecentProjects))
	}
}
