package pagescntrl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/chup1x/carmodels/internal/domain"
	"github.com/chup1x/carmodels/internal/prerender"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
	"github.com/chup1x/carmodels/internal/view"
)

type selectorLoader interface {
	Load(ctx context.Context) *selectorserv.Page
}

type resultPages interface {
	Get(ctx context.Context, route domain.ResultRoute) (*prerender.Page, error)
}

type pagesController struct {
	selector selectorLoader
	results  resultPages
	renderer *view.Renderer
	log      *slog.Logger
}

func NewPagesController(selector selectorLoader, results resultPages, renderer *view.Renderer, log *slog.Logger) *pagesController {
	return &pagesController{
		selector: selector,
		results:  results,
		renderer: renderer,
		log:      log,
	}
}

func (p *pagesController) selectorHandler(c *fiber.Ctx) error {
	page := p.selector.Load(c.UserContext())
	page.Selection = selectionFromQuery(c)

	return p.html(c, fiber.StatusOK, func(w io.Writer) error {
		return p.renderer.Selector(w, page)
	})
}

// nextHandler is the forward action for clients that do not run the page
// script.
func (p *pagesController) nextHandler(c *fiber.Ctx) error {
	sel := selectionFromQuery(c)
	if !sel.Ready() {
		return c.Redirect("/"+selectionQuery(sel), fiber.StatusSeeOther)
	}

	return c.Redirect(sel.Path(), fiber.StatusSeeOther)
}

func (p *pagesController) resultHandler(c *fiber.Ctx) error {
	page, err := p.results.Get(c.UserContext(), routeFromParams(c))
	if errors.Is(err, domain.ErrNotFound) {
		return p.NotFound(c)
	}
	if err != nil {
		p.log.ErrorContext(c.UserContext(), "to render result page", "path", c.Path(), "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderETag, page.ETag)
	if c.Get(fiber.HeaderIfNoneMatch) == page.ETag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page.Body)
}

// NotFound renders the not-found page with a 404 status.
func (p *pagesController) NotFound(c *fiber.Ctx) error {
	return p.html(c, fiber.StatusNotFound, p.renderer.NotFound)
}

func (p *pagesController) html(c *fiber.Ctx, status int, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		p.log.ErrorContext(c.UserContext(), "to render page", "path", c.Path(), "error", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
