// Package project handles JSON persistence of fence plans and application
// configuration.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// SavePlan writes the plan to the specified JSON file, creating parent
// directories as needed.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a plan from the specified JSON file.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, err
	}
	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if plan.Lines == nil {
		plan.Lines = []model.Line{}
	}
	if plan.Gates == nil {
		plan.Gates = []model.Gate{}
	}
	return plan, nil
}

// ValidatePlan checks referential integrity between lines and gates before
// a plan is handed to the engine. Problems are returned as messages, not
// errors: a broken reference is a user-facing finding, not a crash.
func ValidatePlan(plan model.Plan) []string {
	var problems []string

	lineIDs := make(map[string]bool, len(plan.Lines))
	for _, l := range plan.Lines {
		if lineIDs[l.ID] {
			problems = append(problems, fmt.Sprintf("duplicate line id %s", l.ID))
		}
		lineIDs[l.ID] = true
		if l.LengthMM < 0 {
			problems = append(problems, fmt.Sprintf("line %s has negative length", l.ID))
		}
	}

	gatesPerRun := make(map[string]int, len(plan.Gates))
	for _, g := range plan.Gates {
		if !lineIDs[g.RunID] {
			problems = append(problems, fmt.Sprintf("gate %s references missing run %s", g.ID, g.RunID))
			continue
		}
		gatesPerRun[g.RunID]++
		if gatesPerRun[g.RunID] > 1 {
			problems = append(problems, fmt.Sprintf("run %s carries more than one gate", g.RunID))
		}
	}

	for _, l := range plan.Lines {
		if l.GateID == "" {
			continue
		}
		found := false
		for _, g := range plan.Gates {
			if g.ID == l.GateID {
				found = true
				break
			}
		}
		if !found {
			problems = append(problems, fmt.Sprintf("line %s references missing gate %s", l.ID, l.GateID))
		}
	}

	return problems
}
