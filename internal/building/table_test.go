package building

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	t.Run("shipped table matches defaults", func(t *testing.T) {
		table, err := LoadTable(filepath.Join("..", "..", "configs", "buildings", "corrections.yaml"))
		require.NoError(t, err)

		assert.Equal(t, DefaultTable(), table)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read building table")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("patterns: [unclosed"), 0o644))

		_, err := LoadTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse building table")
	})

	t.Run("incomplete pattern rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("patterns:\n  - contains: Ingot\n"), 0o644))

		_, err := LoadTable(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTable))
	})
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		valid bool
	}{
		{"empty table", Table{}, true},
		{"defaults", *DefaultTable(), true},
		{"correction without building", Table{Corrections: map[string]string{"Molten Tin": ""}}, false},
		{"skill without building", Table{Skills: map[string]string{"Cooking": ""}}, false},
		{"misassignment without words", Table{Misassignments: []Misassignment{{Building: "A", Replacement: "B"}}}, false},
		{"type without name", Table{Types: []Type{{Category: CategoryCrafting}}}, false},
		{"negative tier keyword", Table{Tiers: []TierKeyword{{Keyword: "Odd", Tier: -1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTable)
			}
		})
	}
}
