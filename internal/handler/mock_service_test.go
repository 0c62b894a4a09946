package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
	"github.com/osse101/craftplanner/internal/planner"
)

// MockCraftingService records calls so tests can check what handlers pass on
type MockCraftingService struct {
	mock.Mock
}

var _ crafting.Service = (*MockCraftingService)(nil)

// result returns args.Get(0) as T, or the zero value when the mock returned nil
func result[T any](args mock.Arguments) T {
	var zero T
	if v := args.Get(0); v != nil {
		return v.(T)
	}
	return zero
}

func (m *MockCraftingService) ListItems(ctx context.Context, criteria catalog.Criteria) ([]*domain.Item, error) {
	args := m.Called(ctx, criteria)
	return result[[]*domain.Item](args), args.Error(1)
}

func (m *MockCraftingService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	return result[*domain.Item](args), args.Error(1)
}

func (m *MockCraftingService) ResolveItem(ctx context.Context, name string, limit int) (*crafting.ResolveResult, error) {
	args := m.Called(ctx, name, limit)
	return result[*crafting.ResolveResult](args), args.Error(1)
}

func (m *MockCraftingService) RecipeTree(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.RecipeTree, error) {
	args := m.Called(ctx, itemID, quantity, recipeIndex)
	return result[*domain.RecipeTree](args), args.Error(1)
}

func (m *MockCraftingService) Calculate(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.Calculation, error) {
	args := m.Called(ctx, itemID, quantity, recipeIndex)
	return result[*domain.Calculation](args), args.Error(1)
}

func (m *MockCraftingService) CreateSession(ctx context.Context) crafting.SessionInfo {
	args := m.Called(ctx)
	return result[crafting.SessionInfo](args)
}

func (m *MockCraftingService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockCraftingService) GetInventory(ctx context.Context, sessionID string) ([]inventory.Entry, error) {
	args := m.Called(ctx, sessionID)
	return result[[]inventory.Entry](args), args.Error(1)
}

func (m *MockCraftingService) SetInventory(ctx context.Context, sessionID, itemID string, quantity int) (inventory.Entry, error) {
	args := m.Called(ctx, sessionID, itemID, quantity)
	return result[inventory.Entry](args), args.Error(1)
}

func (m *MockCraftingService) RemoveInventoryItem(ctx context.Context, sessionID, itemID string) error {
	return m.Called(ctx, sessionID, itemID).Error(0)
}

func (m *MockCraftingService) ClearInventory(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockCraftingService) GetBuildList(ctx context.Context, sessionID string) ([]domain.BuildDemand, error) {
	args := m.Called(ctx, sessionID)
	return result[[]domain.BuildDemand](args), args.Error(1)
}

func (m *MockCraftingService) AddToBuildList(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error) {
	args := m.Called(ctx, sessionID, itemID, quantity, recipeIndex)
	return result[domain.BuildDemand](args), args.Error(1)
}

func (m *MockCraftingService) UpdateBuildListItem(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error) {
	args := m.Called(ctx, sessionID, itemID, quantity, recipeIndex)
	return result[domain.BuildDemand](args), args.Error(1)
}

func (m *MockCraftingService) RemoveFromBuildList(ctx context.Context, sessionID, itemID string) error {
	return m.Called(ctx, sessionID, itemID).Error(0)
}

func (m *MockCraftingService) ClearBuildList(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockCraftingService) EffectiveQuantity(ctx context.Context, sessionID, itemID string) (*crafting.EffectiveInfo, error) {
	args := m.Called(ctx, sessionID, itemID)
	return result[*crafting.EffectiveInfo](args), args.Error(1)
}

func (m *MockCraftingService) RequiredMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error) {
	args := m.Called(ctx, sessionID)
	return result[[]domain.MaterialRequirement](args), args.Error(1)
}

func (m *MockCraftingService) AllPossibleMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error) {
	args := m.Called(ctx, sessionID)
	return result[[]domain.MaterialRequirement](args), args.Error(1)
}

func (m *MockCraftingService) ShoppingList(ctx context.Context, sessionID string) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx, sessionID)
	return result[[]domain.ShoppingItem](args), args.Error(1)
}

func (m *MockCraftingService) CraftingSteps(ctx context.Context, sessionID string) ([]crafting.Step, error) {
	args := m.Called(ctx, sessionID)
	return result[[]crafting.Step](args), args.Error(1)
}

func (m *MockCraftingService) Buildings(ctx context.Context, sessionID string) ([]domain.BuildingGroup, error) {
	args := m.Called(ctx, sessionID)
	return result[[]domain.BuildingGroup](args), args.Error(1)
}

func (m *MockCraftingService) Analyze(ctx context.Context, sessionID string) (*planner.Report, error) {
	args := m.Called(ctx, sessionID)
	return result[*planner.Report](args), args.Error(1)
}
