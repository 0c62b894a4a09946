package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	ErrInvalidItem   = errors.New("invalid item definition")

	// Reported by Report.Err in strict mode; the planner itself tolerates both
	ErrDanglingReference = errors.New("dangling item reference")
	ErrCycleDetected     = errors.New("cycle detected in recipe graph")
)

// Config is the catalog file: item id -> definition
type Config map[string]Def

// Def is a single item definition in the catalog file
type Def struct {
	Name            string      `json:"name"`
	Tier            *int        `json:"tier,omitempty"`
	Rarity          int         `json:"rarity"`
	Icon            string      `json:"icon,omitempty"`
	Recipes         []RecipeDef `json:"recipes"`
	ExtractionSkill int         `json:"extraction_skill,omitempty"`
}

// RecipeDef is a recipe as exported by the game data tooling
type RecipeDef struct {
	OutputQuantity      int             `json:"output_quantity"`
	ConsumedItems       []IngredientDef `json:"consumed_items"`
	SkillRequirement    *SkillDef       `json:"skill_requirement"`
	BuildingRequirement *string         `json:"building_requirement"`
	LevelRequirements   int             `json:"level_requirements,omitempty"`
}

// IngredientDef references another item by its numeric id
type IngredientDef struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// SkillDef is the profession requirement of a recipe
type SkillDef struct {
	SkillName  string `json:"skill_name"`
	SkillLevel int    `json:"skill_level"`
	SkillID    int    `json:"skill_id"`
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (Config, error)
	Validate(config Config) (*Report, error)
	Build(config Config) *domain.Catalog
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader. An empty schemaPath disables schema validation.
func NewLoader(schemaValidator validation.SchemaValidator, schemaPath string) Loader {
	return &catalogLoader{
		schemaValidator: schemaValidator,
		schemaPath:      schemaPath,
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if l.schemaPath != "" && l.schemaValidator != nil {
		if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
			return nil, fmt.Errorf(ErrFmtSchemaValidationFailed, path, err)
		}
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return config, nil
}

// Validate rejects structurally broken definitions and reports data-quality
// problems the planner can live with
func (l *catalogLoader) Validate(config Config) (*Report, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, domain.ErrEmptyCatalog)
	}

	for _, id := range sortedIDs(config) {
		def := config[id]
		if err := validateDef(id, &def); err != nil {
			return nil, err
		}
	}

	report := &Report{
		Dangling: findDanglingReferences(config),
		Cycles:   detectCycles(config),
	}
	return report, nil
}

func validateDef(id string, def *Def) error {
	if def.Name == "" {
		return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidItem, id)
	}
	if def.Rarity != 0 && !domain.Rarity(def.Rarity).Valid() {
		return fmt.Errorf(ErrFmtItemBadRarity, ErrInvalidItem, id, def.Rarity)
	}

	for r, recipe := range def.Recipes {
		if recipe.OutputQuantity < 1 {
			return fmt.Errorf(ErrFmtRecipeBadOutput, ErrInvalidItem, id, r, recipe.OutputQuantity)
		}
		if recipe.SkillRequirement != nil && recipe.SkillRequirement.SkillName == "" {
			return fmt.Errorf(ErrFmtSkillMissingName, ErrInvalidItem, id, r)
		}
		for _, ing := range recipe.ConsumedItems {
			if ing.ID < 0 {
				return fmt.Errorf(ErrFmtIngredientNegativeID, ErrInvalidItem, id, r, ing.ID)
			}
			if ing.Quantity < 1 {
				return fmt.Errorf(ErrFmtIngredientBadQuantity, ErrInvalidItem, id, r, ing.ID, ing.Quantity)
			}
		}
	}
	return nil
}

// Build converts a validated config into the planner's catalog
func (l *catalogLoader) Build(config Config) *domain.Catalog {
	items := make([]domain.Item, 0, len(config))
	for _, id := range sortedIDs(config) {
		items = append(items, toDomainItem(id, config[id]))
	}
	return domain.NewCatalog(items)
}

func toDomainItem(id string, def Def) domain.Item {
	tier := domain.BaseTier
	if def.Tier != nil && *def.Tier >= 0 {
		tier = *def.Tier
	}
	rarity := domain.Rarity(def.Rarity)
	if !rarity.Valid() {
		rarity = domain.RarityCommon
	}

	item := domain.Item{
		ID:      id,
		Name:    def.Name,
		Tier:    tier,
		Rarity:  rarity,
		Icon:    def.Icon,
		Recipes: make([]domain.Recipe, 0, len(def.Recipes)),
	}
	for _, r := range def.Recipes {
		recipe := domain.Recipe{
			OutputQuantity:      r.OutputQuantity,
			ConsumedItems:       make([]domain.Ingredient, 0, len(r.ConsumedItems)),
			BuildingRequirement: r.BuildingRequirement,
			LevelRequirement:    r.LevelRequirements,
		}
		if r.SkillRequirement != nil {
			recipe.SkillRequirement = &domain.SkillRequirement{
				SkillName:  r.SkillRequirement.SkillName,
				SkillLevel: r.SkillRequirement.SkillLevel,
				SkillID:    r.SkillRequirement.SkillID,
			}
		}
		for _, ing := range r.ConsumedItems {
			recipe.ConsumedItems = append(recipe.ConsumedItems, domain.Ingredient{
				ItemID:   IngredientKey(ing.ID),
				Quantity: ing.Quantity,
			})
		}
		item.Recipes = append(item.Recipes, recipe)
	}
	return item
}

// IngredientKey converts a numeric ingredient id to the catalog's string key
func IngredientKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func sortedIDs(config Config) []string {
	ids := make([]string, 0, len(config))
	for id := range config {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadCatalog loads, validates and builds the catalog at path, logging the
// data-quality report. With strict set, dangling references and cycles are errors.
func LoadCatalog(ctx context.Context, loader Loader, path string, strict bool) (*domain.Catalog, *Report, error) {
	log := logger.FromContext(ctx)

	config, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}

	report, err := loader.Validate(config)
	if err != nil {
		return nil, nil, err
	}

	for _, ref := range report.Dangling {
		log.Warn(LogMsgDanglingReference, "item_id", ref.ItemID, "recipe", ref.RecipeIndex, "missing_id", ref.MissingID)
	}
	for _, c := range report.Cycles {
		log.Warn(LogMsgCycleDetected, "from", c.From, "to", c.To)
	}

	if strict {
		if err := report.Err(); err != nil {
			return nil, report, err
		}
	}

	catalog := loader.Build(config)
	log.Info(LogMsgCatalogLoaded, "path", path, "items", catalog.Len(),
		"dangling_refs", len(report.Dangling), "cycles", len(report.Cycles))
	return catalog, report, nil
}
