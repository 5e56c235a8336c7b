package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chup1x/carmodels/internal/config"
	"github.com/chup1x/carmodels/internal/prerender"
	resultserv "github.com/chup1x/carmodels/internal/services/results"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
	vpicserv "github.com/chup1x/carmodels/internal/services/vpic"
	"github.com/chup1x/carmodels/internal/transport/v1/rest"
	"github.com/chup1x/carmodels/internal/view"
)

type App struct {
	config   *config.Config
	log      *slog.Logger
	selector *selectorserv.SelectorService
	results  *resultserv.ResultService
	cache    *prerender.Cache
	renderer *view.Renderer
}

func New(config *config.Config, log *slog.Logger) (*App, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("to load templates: %w", err)
	}

	client := vpicserv.NewClient(config.VPIC.BaseURL, config.VPIC.Timeout)
	results := resultserv.NewResultService(client, log)

	return &App{
		config:   config,
		log:      log,
		selector: selectorserv.NewSelectorService(client),
		results:  results,
		cache:    prerender.NewCache(results, renderer),
		renderer: renderer,
	}, nil
}

// Prerender renders the configured seed routes into the cache.
func (a *App) Prerender(ctx context.Context) error {
	routes, err := a.config.Prerender.Routes()
	if err != nil {
		return err
	}

	a.log.Info("prerendering result pages", "routes", len(routes))
	if err := a.cache.Warm(ctx, routes); err != nil {
		return err
	}

	return nil
}

// Export prerenders the seed routes and writes them below dir.
func (a *App) Export(ctx context.Context, dir string) ([]string, error) {
	if err := a.Prerender(ctx); err != nil {
		return nil, err
	}

	written, err := a.cache.Export(dir)
	if err != nil {
		return written, fmt.Errorf("to export result pages: %w", err)
	}

	return written, nil
}

// Serve prerenders the seed routes and then serves until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	if err := a.Prerender(ctx); err != nil {
		return err
	}

	if err := a.Server().Start(ctx); err != nil {
		return fmt.Errorf("start web server: %w", err)
	}

	return nil
}

// Server builds the HTTP server without starting it.
func (a *App) Server() *rest.Server {
	return rest.New(a.config, a.deps())
}

func (a *App) deps() rest.Deps {
	return rest.Deps{
		Selector: a.selector,
		Results:  a.results,
		Cache:    a.cache,
		Renderer: a.renderer,
		Logger:   a.log,
	}
}
