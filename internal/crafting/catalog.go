package crafting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/metrics"
)

func (s *service) ListItems(ctx context.Context, criteria catalog.Criteria) ([]*domain.Item, error) {
	if !domain.IsValidRecipeType(criteria.RecipeType) {
		return nil, fmt.Errorf(ErrFmtInvalidRecipeType, domain.ErrInvalidInput, criteria.RecipeType)
	}
	items := catalog.Filter(s.planner.Catalog(), criteria)
	logger.FromContext(ctx).Debug(LogMsgItemListingComputed, "query", criteria.Query, "count", len(items))
	return items, nil
}

func (s *service) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.item(itemID)
}

// ResolveItem maps a player-typed name to an item, with suggestions when the
// name does not match exactly
func (s *service) ResolveItem(ctx context.Context, name string, limit int) (*ResolveResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf(ErrFmtEmptyName, domain.ErrInvalidInput)
	}

	result := &ResolveResult{Query: name, Suggestions: s.resolver.Suggest(name, limit)}
	if id, ok := s.resolver.Resolve(name); ok {
		result.Item, _ = s.planner.Catalog().Item(id)
	} else {
		logger.FromContext(ctx).Debug(LogMsgResolveMissed, "name", name, "suggestions", len(result.Suggestions))
	}
	return result, nil
}

func (s *service) RecipeTree(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.RecipeTree, error) {
	logger.FromContext(ctx).Debug(LogMsgRecipeTreeCalled, "item_id", itemID, "quantity", quantity, "recipe", recipeIndex)
	if _, err := s.item(itemID); err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryTree, time.Now())
	return &domain.RecipeTree{
		Root:   s.planner.RecipeTree(itemID, clampQuantity(quantity), recipeIndex),
		Skills: s.planner.SkillSummary(itemID, recipeIndex),
	}, nil
}

func (s *service) Calculate(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.Calculation, error) {
	logger.FromContext(ctx).Debug(LogMsgCalculateCalled, "item_id", itemID, "quantity", quantity, "recipe", recipeIndex)
	if _, err := s.item(itemID); err != nil {
		return nil, err
	}
	defer metrics.ObserveQuery(metrics.QueryCalculate, time.Now())
	return s.planner.Calculate(itemID, clampQuantity(quantity), recipeIndex), nil
}

func clampQuantity(quantity int) int {
	if quantity < domain.MinDemandQuantity {
		return domain.MinDemandQuantity
	}
	return quantity
}
