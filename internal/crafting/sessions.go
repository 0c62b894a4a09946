package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/metrics"
)

func (s *service) CreateSession(ctx context.Context) SessionInfo {
	sess := s.sessions.Create(ctx)
	metrics.SessionCreated()
	return SessionInfo{ID: sess.ID, CreatedAt: sess.CreatedAt}
}

func (s *service) DeleteSession(ctx context.Context, sessionID string) error {
	if !s.sessions.Delete(ctx, sessionID) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}

func (s *service) GetInventory(ctx context.Context, sessionID string) ([]inventory.Entry, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Entries(), nil
}

// SetInventory stores the owned quantity of a catalog item; zero or less removes it
func (s *service) SetInventory(ctx context.Context, sessionID, itemID string, quantity int) (inventory.Entry, error) {
	if _, err := s.item(itemID); err != nil {
		return inventory.Entry{}, err
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return inventory.Entry{}, err
	}

	var entry inventory.Entry
	sess.Mutate(func(l *inventory.Ledger, _ *inventory.BuildList) {
		l.Set(itemID, quantity)
		entry = inventory.Entry{ItemID: itemID, Quantity: l.Quantity(itemID)}
	})

	logger.FromContext(ctx).Info(LogMsgInventorySet, "session_id", sessionID, "item_id", itemID, "quantity", entry.Quantity)
	return entry, nil
}

func (s *service) RemoveInventoryItem(ctx context.Context, sessionID, itemID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Mutate(func(l *inventory.Ledger, _ *inventory.BuildList) {
		l.Remove(itemID)
	})
	return nil
}

func (s *service) ClearInventory(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Mutate(func(l *inventory.Ledger, _ *inventory.BuildList) {
		l.Clear()
	})
	logger.FromContext(ctx).Info(LogMsgInventoryCleared, "session_id", sessionID)
	return nil
}

func (s *service) GetBuildList(ctx context.Context, sessionID string) ([]domain.BuildDemand, error) {
	_, demands, err := s.snapshot(ctx, sessionID)
	return demands, err
}

// AddToBuildList appends a demand or merges it into an existing entry for the
// same item. Out-of-range recipe indexes are stored as the first recipe.
func (s *service) AddToBuildList(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error) {
	item, err := s.item(itemID)
	if err != nil {
		return domain.BuildDemand{}, err
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.BuildDemand{}, err
	}

	var demand domain.BuildDemand
	sess.Mutate(func(_ *inventory.Ledger, b *inventory.BuildList) {
		demand = b.Add(itemID, quantity, item.ResolveRecipeIndex(recipeIndex))
	})

	logger.FromContext(ctx).Info(LogMsgBuildListAdded,
		"session_id", sessionID, "item_id", itemID, "quantity", demand.Quantity, "recipe", demand.RecipeIndex)
	return demand, nil
}

func (s *service) UpdateBuildListItem(ctx context.Context, sessionID, itemID string, quantity, recipeIndex int) (domain.BuildDemand, error) {
	item, err := s.item(itemID)
	if err != nil {
		return domain.BuildDemand{}, err
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.BuildDemand{}, err
	}

	var demand domain.BuildDemand
	err = sess.Update(func(_ *inventory.Ledger, b *inventory.BuildList) error {
		var updateErr error
		demand, updateErr = b.Update(itemID, quantity, item.ResolveRecipeIndex(recipeIndex))
		return updateErr
	})
	if err != nil {
		return domain.BuildDemand{}, err
	}

	logger.FromContext(ctx).Info(LogMsgBuildListUpdated,
		"session_id", sessionID, "item_id", itemID, "quantity", demand.Quantity, "recipe", demand.RecipeIndex)
	return demand, nil
}

func (s *service) RemoveFromBuildList(ctx context.Context, sessionID, itemID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return sess.Update(func(_ *inventory.Ledger, b *inventory.BuildList) error {
		if !b.Remove(itemID) {
			return fmt.Errorf("%w: %s is not in the build list", domain.ErrItemNotFound, itemID)
		}
		logger.FromContext(ctx).Info(LogMsgBuildListRemoved, "session_id", sessionID, "item_id", itemID)
		return nil
	})
}

func (s *service) ClearBuildList(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Mutate(func(_ *inventory.Ledger, b *inventory.BuildList) {
		b.Clear()
	})
	logger.FromContext(ctx).Info(LogMsgBuildListCleared, "session_id", sessionID)
	return nil
}
