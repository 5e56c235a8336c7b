// Package prerender keeps rendered results pages keyed by route. Pages for a
// seed set are rendered ahead of serving; any other route is rendered on its
// first request, which blocks until the render completes, and is reused
// afterwards.
package prerender

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/chup1x/carmodels/internal/domain"
	resultserv "github.com/chup1x/carmodels/internal/services/results"
)

type resultFetcher interface {
	Fetch(ctx context.Context, route domain.ResultRoute) (*resultserv.Page, error)
}

type pageRenderer interface {
	ResultBytes(page *resultserv.Page) ([]byte, error)
}

// Page is a rendered results page.
type Page struct {
	Route domain.ResultRoute
	Body  []byte
	ETag  string
}

type Cache struct {
	results  resultFetcher
	renderer pageRenderer

	mu    sync.RWMutex
	pages map[domain.ResultRoute]*Page
	group singleflight.Group
}

func NewCache(results resultFetcher, renderer pageRenderer) *Cache {
	return &Cache{
		results:  results,
		renderer: renderer,
		pages:    make(map[domain.ResultRoute]*Page),
	}
}

// Warm renders every route of the seed set.
func (c *Cache) Warm(ctx context.Context, routes []domain.ResultRoute) error {
	for _, route := range routes {
		if _, err := c.Get(ctx, route); err != nil {
			return fmt.Errorf("to prerender %s: %w", route, err)
		}
	}
	return nil
}

// Get returns the cached page for route, rendering it first when needed.
// Concurrent callers for the same route share one render.
func (c *Cache) Get(ctx context.Context, route domain.ResultRoute) (*Page, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	if p, ok := c.lookup(route); ok {
		renderCacheTotal.WithLabelValues("hit").Inc()
		return p, nil
	}

	v, err, _ := c.group.Do(flightKey(route), func() (any, error) {
		if p, ok := c.lookup(route); ok {
			return p, nil
		}
		renderCacheTotal.WithLabelValues("miss").Inc()

		// The shared render must not die with the first caller's request.
		p, err := c.render(context.WithoutCancel(ctx), route)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.pages[route] = p
		c.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Page), nil
}

// flightKey joins the route with a byte no path segment can carry, so
// unescaped slashes cannot make two routes collide.
func flightKey(route domain.ResultRoute) string {
	return route.MakeID + "\x00" + route.Year
}

func (c *Cache) lookup(route domain.ResultRoute) (*Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[route]
	return p, ok
}

func (c *Cache) render(ctx context.Context, route domain.ResultRoute) (*Page, error) {
	ctx, span := otel.Tracer("internal/prerender").Start(ctx, "prerender.render")
	defer span.End()
	span.SetAttributes(
		attribute.String("make_id", route.MakeID),
		attribute.String("year", route.Year),
	)

	data, err := c.results.Fetch(ctx, route)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	body, err := c.renderer.ResultBytes(data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &Page{
		Route: route,
		Body:  body,
		ETag:  `"` + strconv.FormatUint(xxh3.Hash(body), 16) + `"`,
	}, nil
}

// Len reports the number of cached pages.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Routes lists the cached routes in a stable order.
func (c *Cache) Routes() []domain.ResultRoute {
	c.mu.RLock()
	routes := make([]domain.ResultRoute, 0, len(c.pages))
	for r := range c.pages {
		routes = append(routes, r)
	}
	c.mu.RUnlock()

	sort.Slice(routes, func(i, j int) bool {
		return routes[i].String() < routes[j].String()
	})
	return routes
}

var errUnsafeRoute = errors.New("route segment is not a plain path element")

// Export writes every cached page to dir/result/{makeID}/{year}/index.html.
func (c *Cache) Export(dir string) ([]string, error) {
	var written []string
	for _, route := range c.Routes() {
		p, _ := c.lookup(route)
		if !safeSegment(route.MakeID) || !safeSegment(route.Year) {
			return written, fmt.Errorf("to export %s: %w", route, errUnsafeRoute)
		}

		target := filepath.Join(dir, "result", route.MakeID, route.Year, "index.html")
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("to create %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, p.Body, 0o644); err != nil {
			return written, fmt.Errorf("to write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}

func safeSegment(s string) bool {
	return s != "" && s != "." && s != ".." && filepath.Base(s) == s
}
