package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
	"github.com/osse101/craftplanner/internal/naming"
	"github.com/osse101/craftplanner/internal/planner"
	"github.com/osse101/craftplanner/internal/session"
)

// SessionInfo identifies a planner session
type SessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// EffectiveInfo is an item's owned amount plus what owned consumers stand in for
type EffectiveInfo struct {
	ItemID      string              `json:"item_id"`
	Owned       int                 `json:"owned"`
	Effective   int                 `json:"effective"`
	Substitutes []domain.Substitute `json:"substitutes"`
}

// Step is a crafting step with its building requirement corrected
type Step struct {
	domain.CraftingStep
	Building building.Correction `json:"building"`
}

// ResolveResult is the outcome of a free-text item lookup
type ResolveResult struct {
	Query       string              `json:"query"`
	Item        *domain.Item        `json:"item,omitempty"`
	Suggestions []naming.Suggestion `json:"suggestions"`
}

// Service is the session-aware facade over the planner used by the API
type Service interface {
	// Catalog queries
	ListItems(ctx context.Context, criteria catalog.Criteria) ([]*domain.Item, error)
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	ResolveItem(ctx context.Context, name string, limit int) (*ResolveResult, error)
	RecipeTree(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.RecipeTree, error)
	Calculate(ctx context.Context, itemID string, quantity, recipeIndex int) (*domain.Calculation, error)

	// Session lifecycle
	CreateSession(ctx context.Context) SessionInfo
	DeleteSession(ctx context.Context, sessionID string) error

	// Inventory
	GetInventory(ctx context.Context, sessionID string) ([]inventory.Entry, error)
	SetInventory(ctx context.Context, sessionID, itemID string, quantity int) (inventory.Entry, error)
	RemoveInventoryItem(ctx context.Context, sessionID, itemID string) error
	ClearInventory(ctx context.Context, sessionID string) error

	// Build list
	GetBuildList(ctx context.Context, sessionID string) ([]domain.BuildDemand, error)
	AddToBuildList(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error)
	UpdateBuildListItem(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error)
	RemoveFromBuildList(ctx context.Context, sessionID, itemID string) error
	ClearBuildList(ctx context.Context, sessionID string) error

	// Plans
	EffectiveQuantity(ctx context.Context, sessionID, itemID string) (*EffectiveInfo, error)
	RequiredMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error)
	AllPossibleMaterials(ctx context.Context, sessionID string) ([]domain.MaterialRequirement, error)
	ShoppingList(ctx context.Context, sessionID string) ([]domain.ShoppingItem, error)
	CraftingSteps(ctx context.Context, sessionID string) ([]Step, error)
	Buildings(ctx context.Context, sessionID string) ([]domain.BuildingGroup, error)
	Analyze(ctx context.Context, sessionID string) (*planner.Report, error)
}

type service struct {
	planner   planner.Planner
	sessions  session.Store
	resolver  naming.Resolver
	corrector building.Corrector
}

// NewService creates the crafting service
func NewService(p planner.Planner, sessions session.Store, resolver naming.Resolver, corrector building.Corrector) Service {
	return &service{
		planner:   p,
		sessions:  sessions,
		resolver:  resolver,
		corrector: corrector,
	}
}

func (s *service) item(itemID string) (*domain.Item, error) {
	item, ok := s.planner.Catalog().Item(itemID)
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownItem, domain.ErrItemNotFound, itemID)
	}
	return item, nil
}

// snapshot copies session state so the planner runs without the session lock
func (s *service) snapshot(ctx context.Context, sessionID string) (domain.Inventory, []domain.BuildDemand, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	inv, demands := sess.Snapshot()
	return inv, demands, nil
}
