package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/craftplanner/internal/building"
	"github.com/osse101/craftplanner/internal/catalog"
	"github.com/osse101/craftplanner/internal/config"
	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/metrics"
	"github.com/osse101/craftplanner/internal/naming"
	"github.com/osse101/craftplanner/internal/planner"
	"github.com/osse101/craftplanner/internal/session"
	"github.com/osse101/craftplanner/internal/validation"
)

// Components holds everything the binaries need to answer planner queries
type Components struct {
	Catalog   *domain.Catalog
	Report    *catalog.Report
	Planner   planner.Planner
	Corrector building.Corrector
	Resolver  naming.Resolver
	Sessions  session.Store
	Service   crafting.Service
}

// LoadCatalog resolves and loads the catalog named by cfg. A missing schema
// file only disables schema validation.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*domain.Catalog, *catalog.Report, error) {
	path, err := validation.ResolvePath(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgResolveCatalogPath, err)
	}

	schemaPath := ""
	if cfg.CatalogSchemaPath != "" {
		if resolved, err := validation.ResolvePath(cfg.CatalogSchemaPath); err == nil {
			schemaPath = resolved
		} else {
			slog.Warn(LogMsgSchemaUnavailable, "path", cfg.CatalogSchemaPath)
		}
	}

	loader := catalog.NewLoader(validation.NewSchemaValidator(), schemaPath)
	cat, report, err := catalog.LoadCatalog(ctx, loader, path, cfg.CatalogStrict)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	return cat, report, nil
}

// LoadCorrector builds the building corrector from the configured table,
// falling back to the built-in table when the file is missing or invalid
func LoadCorrector(cfg *config.Config) building.Corrector {
	if cfg.BuildingCorrectionsPath != "" {
		if path, err := validation.ResolvePath(cfg.BuildingCorrectionsPath); err == nil {
			table, err := building.LoadTable(path)
			if err == nil {
				slog.Info(LogMsgCorrectionsLoaded, "path", path, "corrections", len(table.Corrections))
				return building.NewCorrector(table)
			}
			slog.Warn(LogMsgCorrectionsFallback, "path", path, "error", err)
			return building.NewCorrector(nil)
		}
	}
	slog.Warn(LogMsgCorrectionsFallback, "path", cfg.BuildingCorrectionsPath)
	return building.NewCorrector(nil)
}

// Build loads the catalog and wires the planner, session store and service
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	cat, report, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	metrics.CatalogItems.Set(float64(cat.Len()))

	p := planner.New(cat)
	corrector := LoadCorrector(cfg)
	resolver := naming.NewResolver(cat)
	sessions := session.NewStore(cfg.SessionCacheSize, cfg.SessionTTL, func(id string) {
		metrics.SessionEvicted()
		slog.Debug(LogMsgSessionEvicted, "session_id", id)
	})

	slog.Info(LogMsgPlannerReady, "items", cat.Len(), "session_capacity", cfg.SessionCacheSize, "session_ttl", cfg.SessionTTL)

	return &Components{
		Catalog:   cat,
		Report:    report,
		Planner:   p,
		Corrector: corrector,
		Resolver:  resolver,
		Sessions:  sessions,
		Service:   crafting.NewService(p, sessions, resolver, corrector),
	}, nil
}

// CheckHealth reports ready once a non-empty catalog is loaded
func (c *Components) CheckHealth(ctx context.Context) error {
	if c == nil || c.Catalog == nil || c.Catalog.Len() == 0 {
		return domain.ErrEmptyCatalog
	}
	return nil
}
