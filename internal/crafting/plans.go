package crafting

import (
	"context"
	"time"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/metrics"
	"github.com/osse101/craftplanner/internal/planner"
)

func (s *service) EffectiveQuantity(ctx context.Context, sessionID, itemID string) (*EffectiveInfo, error) {
	if _, err := s.item(itemID); err != nil {
		return nil, err
	}
	inv, _, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryEffective, time.Now())

	return &EffectiveInfo{
		ItemID:      itemID,
		Owned:       inv.Quantity(itemID),
		Effective:   s.planner.EffectiveQuantity(inv, itemID),
		Substitutes: s.planner.Substitutes(inv, itemID),
	}, nil
}

func (s *service) RequiredMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryMaterials, time.Now())
	return s.planner.RequiredMaterials(inv, demands), nil
}

func (s *service) AllPossibleMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryAllMaterials, time.Now())
	return s.planner.AllPossibleMaterials(inv, demands), nil
}

func (s *service) ShoppingList(ctx context.Context, sessionID string) ([]domain.ShoppingItem, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryShopping, time.Now())
	return s.planner.ShoppingList(inv, demands), nil
}

// CraftingSteps returns the ordered steps with corrected building requirements
func (s *service) CraftingSteps(ctx context.Context, sessionID string) ([]Step, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QuerySteps, time.Now())

	raw := s.planner.CraftingSteps(inv, demands)
	steps := make([]Step, len(raw))
	corrected := 0
	for i := range raw {
		steps[i] = Step{CraftingStep: raw[i], Building: building.Step(s.corrector, raw[i])}
		if steps[i].Building.WasCorrected {
			corrected++
		}
	}
	if corrected > 0 {
		metrics.BuildingCorrections.Add(float64(corrected))
		logger.FromContext(ctx).Debug(LogMsgBuildingsCorrected, "session_id", sessionID, "count", corrected)
	}
	return steps, nil
}

func (s *service) Buildings(ctx context.Context, sessionID string) ([]domain.BuildingGroup, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryBuildings, time.Now())
	return building.Summarize(s.planner.CraftingSteps(inv, demands), s.corrector), nil
}

// Analyze computes materials and steps together and reports graph anomalies
func (s *service) Analyze(ctx context.Context, sessionID string) (*planner.Report, error) {
	inv, demands, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryReport, time.Now())

	report := s.planner.Analyze(inv, demands)
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlanComputed, "session_id", sessionID,
		"demands", len(demands), "materials", len(report.Materials), "steps", len(report.Steps))

	if !report.Diagnostics.Clean() {
		metrics.RecordDiagnostics(report.Diagnostics.CycleGuardHits, report.Diagnostics.UnknownItems)
		log.Warn(LogMsgDiagnostics, "session_id", sessionID,
			"cycle_guard_hits", report.Diagnostics.CycleGuardHits,
			"unknown_ids", report.Diagnostics.UnknownIDs)
	}
	return report, nil
}
