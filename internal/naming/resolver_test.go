package naming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/domain"
)

func testResolver() Resolver {
	return NewResolver(domain.NewCatalog([]domain.Item{
		{ID: "1001", Name: "Rough Wood Log"},
		{ID: "2001", Name: "Rough Plank"},
		{ID: "2004", Name: "Ferralith Ingot"},
		{ID: "2012", Name: "Pyrelite Ingot"},
		{ID: "3001", Name: "Ferralith Nails"},
		{ID: "9000", Name: "rough plank"},
	}))
}

func TestResolver_Resolve(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{"by id", "2004", "2004", true},
		{"exact name", "Rough Plank", "2001", true},
		{"case and spacing ignored", "  ROUGH   plank ", "2001", true},
		{"first registration wins on duplicate names", "rough plank", "2001", true},
		{"unknown", "Diamond", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolver_Suggest(t *testing.T) {
	r := testResolver()

	t.Run("prefix before substring", func(t *testing.T) {
		got := r.Suggest("ferralith", 0)
		require.Len(t, got, 2)
		assert.Equal(t, SourcePrefix, got[0].Source)
		assert.Equal(t, "Ferralith Ingot", got[0].Name)
	})

	t.Run("substring", func(t *testing.T) {
		got := r.Suggest("ingot", 0)
		require.Len(t, got, 2)
		for _, s := range got {
			assert.Equal(t, SourceSubstr, s.Source)
		}
	})

	t.Run("typo falls back to edit distance", func(t *testing.T) {
		got := r.Suggest("rough plnk", 3)
		require.NotEmpty(t, got)
		assert.Equal(t, SourceFuzzy, got[0].Source)
		assert.Equal(t, 1, got[0].Distance)
		assert.Equal(t, "2001", got[0].ItemID)
	})

	t.Run("short queries skip fuzzy matching", func(t *testing.T) {
		assert.Empty(t, r.Suggest("zz", 3))
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, r.Suggest("r", 1), 1)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Nil(t, r.Suggest("   ", 3))
	})
}

func TestResolver_RegisterItem(t *testing.T) {
	r := testResolver()

	r.RegisterItem("7777", "Stone Hearth")
	r.RegisterItem("8888", "")

	id, ok := r.Resolve("stone hearth")
	assert.True(t, ok)
	assert.Equal(t, "7777", id)

	_, ok = r.Resolve("8888")
	assert.False(t, ok)
}

func TestLevenshteinLimit(t *testing.T) {
	assert.Equal(t, 1, levenshteinLimit(4))
	assert.Equal(t, 2, levenshteinLimit(8))
	assert.Equal(t, 3, levenshteinLimit(20))
}

func TestResolver_ConcurrentLookups(t *testing.T) {
	r := testResolver()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id, ok := r.Resolve("  FERRALITH   nails ")
				assert.True(t, ok)
				assert.Equal(t, "3001", id)
				assert.NotEmpty(t, r.Suggest("pyrelite ingt", 3))
			}
		}()
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rough wood log", normalize("  Rough\tWOOD  log "))
	assert.Empty(t, normalize("   "))
}
