package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
)

func TestStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10, time.Hour, nil)

	sess := s.Create(ctx)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	assert.True(t, s.Delete(ctx, sess.ID))
	assert.False(t, s.Delete(ctx, sess.ID))

	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	var evicted []string
	s := NewStore(2, time.Hour, func(id string) { evicted = append(evicted, id) })

	first := s.Create(ctx)
	second := s.Create(ctx)
	_, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	third := s.Create(ctx)

	assert.Equal(t, []string{second.ID}, evicted)
	_, err = s.Get(ctx, first.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, third.ID)
	assert.NoError(t, err)
}

func TestStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10, 20*time.Millisecond, nil)

	sess := s.Create(ctx)
	time.Sleep(60 * time.Millisecond)

	_, err := s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Defaults(t *testing.T) {
	s := NewStore(0, 0, nil).(*store)

	assert.NotNil(t, s.lru)
	assert.Equal(t, 0, s.Len())
}

func TestSession_SnapshotIsolated(t *testing.T) {
	sess := newSession("test")
	require.NoError(t, sess.Update(func(l *inventory.Ledger, b *inventory.BuildList) error {
		l.Set("ore", 5)
		b.Add("ingot", 2, 0)
		return nil
	}))

	inv, demands := sess.Snapshot()
	inv["ore"] = 99
	demands[0].Quantity = 99

	again, demandsAgain := sess.Snapshot()
	assert.Equal(t, 5, again.Quantity("ore"))
	assert.Equal(t, 2, demandsAgain[0].Quantity)
	assert.Equal(t, []inventory.Entry{{ItemID: "ore", Quantity: 5}}, sess.Entries())
}

func TestSession_ConcurrentUpdates(t *testing.T) {
	sess := newSession("test")
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Mutate(func(l *inventory.Ledger, _ *inventory.BuildList) {
				l.Set("ore", l.Quantity("ore")+1)
			})
		}()
	}
	wg.Wait()

	inv, _ := sess.Snapshot()
	assert.Equal(t, 50, inv.Quantity("ore"))
}

func TestSession_UpdateReturnsError(t *testing.T) {
	sess := newSession("test")

	err := sess.Update(func(_ *inventory.Ledger, b *inventory.BuildList) error {
		_, err := b.Update("missing", 1, 0)
		return err
	})

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
