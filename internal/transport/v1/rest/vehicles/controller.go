package vehiclescntrl

import (
	"context"
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/chup1x/carmodels/internal/domain"
	resultserv "github.com/chup1x/carmodels/internal/services/results"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
)

type selectorLoader interface {
	Load(ctx context.Context) *selectorserv.Page
}

type resultFetcher interface {
	Fetch(ctx context.Context, route domain.ResultRoute) (*resultserv.Page, error)
}

type vehiclesController struct {
	selector  selectorLoader
	results   resultFetcher
	validator *validator.Validate
}

func NewVehiclesController(selector selectorLoader, results resultFetcher) *vehiclesController {
	return &vehiclesController{
		selector:  selector,
		results:   results,
		validator: validator.New(),
	}
}

func (v *vehiclesController) getMakesHandler(c *fiber.Ctx) error {
	page := v.selector.Load(c.UserContext())
	if page.Failed() {
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{Error: page.Error})
	}

	return c.JSON(getMakesResponse{
		VehicleTypes: page.VehicleTypes,
		Years:        page.Years,
	})
}

func (v *vehiclesController) getModelsHandler(c *fiber.Ctx) error {
	var req getModelsRequest
	if err := c.ParamsParser(&req); err != nil {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}
	if err := v.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: domain.ErrNotFound.Error()})
	}

	route := domain.ResultRoute{MakeID: unescape(req.MakeID), Year: unescape(req.Year)}
	page, err := v.results.Fetch(c.UserContext(), route)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: domain.ErrNotFound.Error()})
	}
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(getModelsResponse{
		MakeID: page.MakeID,
		Year:   page.Year,
		Models: page.Models,
	})
}

func unescape(raw string) string {
	s, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return s
}
