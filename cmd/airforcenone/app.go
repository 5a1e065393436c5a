package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/unklstewy/airforcenone/internal/db"
	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/adsb"
	"github.com/unklstewy/airforcenone/pkg/callsign"
	"github.com/unklstewy/airforcenone/pkg/classify"
	"github.com/unklstewy/airforcenone/pkg/config"
	"github.com/unklstewy/airforcenone/pkg/geo"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

// app holds the wired pipeline shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	source *adsb.RateLimitedSource
	engine *classify.Engine

	// CatalogFault is set when the registry could not be loaded
	catalogFault error
}

// newApp wires source, registry, matcher, geocoder and engine from configuration.
// Catalog and geocoder failures degrade the pipeline instead of failing it.
// An invalid callsign rule file is a configuration error.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, opts ...classify.Option) (*app, error) {
	client := adsb.NewClient(cfg.Source.BaseURL, cfg.Source.UserAgent, cfg.Source.Timeout)

	retry := adsb.DefaultRetryConfig()
	retry.MaxRetries = cfg.Source.MaxRetries
	retry.Logger = logger

	source := adsb.NewRateLimitedSource(client, cfg.Source.MinInterval,
		adsb.WithRetry(retry),
		adsb.WithLogger(logger))

	reg, catalogFault := loadRegistry(ctx, cfg, logger)

	matcher, err := loadMatcher(cfg.Rules.Path)
	if err != nil {
		return nil, err
	}

	resolver, err := newResolver(cfg.Geo, logger)
	if err != nil {
		return nil, err
	}

	policy, ok := classify.PolicyFor(cfg.Classify.Variant,
		cfg.Classify.PriorityCountries,
		cfg.Classify.TopCategories,
		cfg.Classify.HighCategories,
		cfg.Classify.MilitaryCategories)
	if !ok {
		return nil, errors.Newf("unknown classify variant %q", cfg.Classify.Variant)
	}

	checkCatalogFit(policy.Name(), reg, logger)

	engineOpts := []classify.Option{
		classify.WithPolicy(policy),
		classify.WithResolver(resolver),
		classify.WithSampleSize(cfg.Classify.SampleSize),
		classify.WithLogger(logger),
	}
	engine := classify.NewEngine(reg, matcher, append(engineOpts, opts...)...)

	logger.Infow("Pipeline ready",
		"registry", reg.Len(),
		"rules", matcher.Len(),
		"policy", policy.Name(),
		"geo", cfg.Geo.Enabled)

	return &app{
		cfg:          cfg,
		logger:       logger,
		source:       source,
		engine:       engine,
		catalogFault: catalogFault,
	}, nil
}

// run executes one poll cycle.
func (a *app) run(ctx context.Context, sel adsb.Selector) classify.Report {
	return a.engine.Run(ctx, a.source, sel)
}

// loadRegistry picks the registry source: database, catalog file, or the
// built-in table. A load fault leaves an empty registry (callsign matching only).
func loadRegistry(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*registry.Registry, error) {
	switch {
	case cfg.Catalog.UseDatabase:
		database, err := db.ConnectWithRetry(ctx, cfg.Database, 3, time.Second, logger)
		if err != nil {
			err = errors.Mark(err, registry.ErrCatalogLoad)
			logger.Warnw("Catalog database unavailable, using callsign matching only", "error", err)
			return registry.Empty(), err
		}
		defer database.Close()

		reg, err := db.NewCatalogRepository(database).LoadRegistry(ctx)
		if err != nil {
			logger.Warnw("Catalog load failed, using callsign matching only", "error", err)
			return reg, err
		}
		logger.Infow("Loaded catalog from database", "aircraft", reg.Len())
		return reg, nil

	case cfg.Catalog.Path != "":
		reg, stats, err := registry.FromCatalog(cfg.Catalog.Path, logger)
		if err != nil {
			logger.Warnw("Catalog load failed, using callsign matching only",
				"path", cfg.Catalog.Path,
				"error", err)
			return reg, err
		}
		logger.Infow("Loaded catalog",
			"path", cfg.Catalog.Path,
			"aircraft", stats.Loaded,
			"skipped", stats.Skipped)
		return reg, nil

	default:
		return registry.Builtin(), nil
	}
}

// checkCatalogFit warns when the catalog lacks the field the policy tiers on.
// A plane-alert-db file has categories but no countries, so under the country
// policy every registry hit would land in tier standard.
func checkCatalogFit(policy string, reg *registry.Registry, logger *zap.SugaredLogger) bool {
	if reg.Len() == 0 {
		return true
	}
	switch {
	case policy == "country" && len(reg.Countries()) == 0:
		logger.Warnw("Catalog has no country data, registry matches cannot reach tier priority",
			"aircraft", reg.Len(),
			"hint", "set classify.variant to category for plane-alert-db catalogs")
		return false
	case policy == "category" && len(reg.Categories()) == 0:
		logger.Warnw("Catalog has no category data, registry matches will be tier other",
			"aircraft", reg.Len(),
			"hint", "set classify.variant to country")
		return false
	}
	return true
}

func loadMatcher(path string) (*callsign.Matcher, error) {
	if path == "" {
		return callsign.Default(), nil
	}
	m, err := callsign.LoadMatcher(path)
	if err != nil {
		return nil, errors.Wrap(err, "callsign rules")
	}
	return m, nil
}

func newResolver(cfg config.GeoConfig, logger *zap.SugaredLogger) (*geo.Resolver, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	cache, err := geo.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	var g geo.Geocoder = geo.NopGeocoder{}
	if rg, err := geo.NewRgeoGeocoder(); err != nil {
		logger.Warnw("Reverse geocoder unavailable, overflight country disabled", "error", err)
	} else {
		g = rg
	}
	return geo.NewResolver(g, cache, logger), nil
}
