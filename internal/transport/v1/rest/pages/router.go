package pagescntrl

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/chup1x/carmodels/internal/prerender"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
	"github.com/chup1x/carmodels/internal/view"
)

// RegisterPageRoutes mounts the selector and results pages and returns the
// controller so the server can reuse its not-found page.
func RegisterPageRoutes(router fiber.Router, selector *selectorserv.SelectorService, cache *prerender.Cache, renderer *view.Renderer, log *slog.Logger) *pagesController {
	pagesCntrl := NewPagesController(selector, cache, renderer, log)
	router.Get("/", pagesCntrl.selectorHandler)
	router.Get("/next", pagesCntrl.nextHandler)
	router.Get("/result/:makeID?/:year?", pagesCntrl.resultHandler)
	return pagesCntrl
}
