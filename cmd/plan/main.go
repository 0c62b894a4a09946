// Command plan prints crafting plans for a build list in the terminal.
//
// Usage:
//
//	plan -build build.json [-inventory inventory.json] [-view report]
//	plan -item "Copper Nails" -quantity 20 -view tree
//	plan -item "Copper Nails" -quantity 20 -inventory inventory.json -view shopping
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/craftplanner/internal/bootstrap"
	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/config"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/naming"
	"github.com/osse101/craftplanner/internal/planner"
	"github.com/osse101/craftplanner/internal/render"
)

// Views
const (
	viewMaterials = "materials"
	viewAll       = "all"
	viewShopping  = "shopping"
	viewSteps     = "steps"
	viewBuildings = "buildings"
	viewTree      = "tree"
	viewCalculate = "calculate"
	viewReport    = "report"
)

var errUsage = errors.New("either -build or -item is required")

type options struct {
	catalogPath     string
	schemaPath      string
	correctionsPath string
	inventoryPath   string
	buildPath       string
	item            string
	quantity        int
	recipe          int
	view            string
	asJSON          bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "plan:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, defaults *config.Config) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.StringVar(&opts.catalogPath, "catalog", defaults.CatalogPath, "item catalog JSON")
	fs.StringVar(&opts.schemaPath, "schema", defaults.CatalogSchemaPath, "catalog JSON schema, empty to skip")
	fs.StringVar(&opts.correctionsPath, "corrections", defaults.BuildingCorrectionsPath, "building corrections YAML")
	fs.StringVar(&opts.inventoryPath, "inventory", "", "inventory JSON: {\"item id or name\": quantity}")
	fs.StringVar(&opts.buildPath, "build", "", "build list JSON: [{\"item_id\": ..., \"quantity\": ..., \"recipe_index\": ...}]")
	fs.StringVar(&opts.item, "item", "", "single item id or name to calculate")
	fs.IntVar(&opts.quantity, "quantity", 1, "quantity for -item")
	fs.IntVar(&opts.recipe, "recipe", 0, "recipe index for -item")
	fs.StringVar(&opts.view, "view", viewReport, "materials, all, shopping, steps, buildings, report, or with -item also tree and calculate")
	fs.BoolVar(&opts.asJSON, "json", false, "print JSON instead of styled text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.buildPath == "" && opts.item == "" {
		return nil, errUsage
	}
	return opts, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	defaults, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseFlags(args, defaults)
	if err != nil {
		return err
	}

	// keep stdout for the plan itself
	logger.InitLoggerWithWriter(logger.Config{
		Level:   logger.LevelWarn,
		Format:  logger.FormatText,
		Service: "plan",
		Version: defaults.Version,
		Catalog: opts.catalogPath,
	}, os.Stderr)

	cfg := *defaults
	cfg.CatalogPath = opts.catalogPath
	cfg.CatalogSchemaPath = opts.schemaPath
	cfg.BuildingCorrectionsPath = opts.correctionsPath

	cat, _, err := bootstrap.LoadCatalog(ctx, &cfg)
	if err != nil {
		return err
	}
	p := planner.New(cat)
	corrector := bootstrap.LoadCorrector(&cfg)
	resolver := naming.NewResolver(cat)

	stock := domain.Inventory{}
	if opts.inventoryPath != "" {
		if stock, err = readInventory(opts.inventoryPath, resolver); err != nil {
			return err
		}
	}

	if opts.item != "" {
		return runItem(out, p, resolver, corrector, stock, opts)
	}

	demands, err := readBuildList(opts.buildPath, resolver)
	if err != nil {
		return err
	}
	return runBuild(out, p, corrector, stock, demands, opts)
}

// runItem plans a single target. The tree and calculate views ignore the
// inventory; every other view treats the item as a one-entry build list.
func runItem(out io.Writer, p planner.Planner, resolver naming.Resolver, corrector building.Corrector,
	stock domain.Inventory, opts *options) error {
	id, err := resolve(resolver, opts.item)
	if err != nil {
		return err
	}
	quantity := max(opts.quantity, domain.MinDemandQuantity)

	switch opts.view {
	case viewTree:
		tree := &domain.RecipeTree{
			Root:   p.RecipeTree(id, quantity, opts.recipe),
			Skills: p.SkillSummary(id, opts.recipe),
		}
		if opts.asJSON {
			return writeJSON(out, tree)
		}
		_, err = fmt.Fprintln(out, render.Tree(tree))
		return err
	case viewCalculate:
		calc := p.Calculate(id, quantity, opts.recipe)
		if opts.asJSON {
			return writeJSON(out, calc)
		}
		_, err = fmt.Fprintln(out, render.Calculation(calc))
		return err
	}

	list := inventory.NewBuildList()
	item, _ := p.Catalog().Item(id)
	list.Add(id, quantity, item.ResolveRecipeIndex(opts.recipe))
	return runBuild(out, p, corrector, stock, list.Demands(), opts)
}

func runBuild(out io.Writer, p planner.Planner, corrector building.Corrector, stock domain.Inventory, demands []domain.BuildDemand, opts *options) error {
	var (
		payload any
		text    string
	)
	switch opts.view {
	case viewMaterials:
		rows := p.RequiredMaterials(stock, demands)
		payload, text = rows, render.Materials(render.TitleMaterials, rows)
	case viewAll:
		rows := p.AllPossibleMaterials(stock, demands)
		payload, text = rows, render.Materials(render.TitleAllMaterials, rows)
	case viewShopping:
		rows := p.ShoppingList(stock, demands)
		payload, text = rows, render.ShoppingList(rows)
	case viewSteps:
		steps := p.CraftingSteps(stock, demands)
		payload, text = steps, render.Steps(steps, corrector)
	case viewBuildings:
		groups := building.Summarize(p.CraftingSteps(stock, demands), corrector)
		payload, text = groups, render.Buildings(groups)
	case viewReport:
		report := p.Analyze(stock, demands)
		payload, text = report, render.Report(report, corrector)
	default:
		return fmt.Errorf("unknown view %q", opts.view)
	}

	if opts.asJSON {
		return writeJSON(out, payload)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

func resolve(resolver naming.Resolver, nameOrID string) (string, error) {
	if id, ok := resolver.Resolve(nameOrID); ok {
		return id, nil
	}
	msg := fmt.Sprintf("%s: %q", domain.ErrMsgItemNotFound, nameOrID)
	if suggestions := resolver.Suggest(nameOrID, 3); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestions[0].Name)
	}
	return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, msg)
}

// readInventory accepts item ids or names as keys
func readInventory(path string, resolver naming.Resolver) (domain.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}

	// an id and a name may point at the same item, so sum before storing
	totals := make(map[string]int, len(raw))
	for key, quantity := range raw {
		id, err := resolve(resolver, key)
		if err != nil {
			return nil, err
		}
		totals[id] += quantity
	}
	ledger := inventory.NewLedger()
	for id, quantity := range totals {
		ledger.Set(id, quantity)
	}
	return ledger.Snapshot(), nil
}

// readBuildList merges repeated items the same way the API build list does
func readBuildList(path string, resolver naming.Resolver) ([]domain.BuildDemand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build list: %w", err)
	}
	var raw []domain.BuildDemand
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse build list: %w", err)
	}

	list := inventory.NewBuildList()
	for _, d := range raw {
		id, err := resolve(resolver, d.ItemID)
		if err != nil {
			return nil, err
		}
		list.Add(id, d.Quantity, d.RecipeIndex)
	}
	return list.Demands(), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
