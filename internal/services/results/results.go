package resultserv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chup1x/carmodels/internal/domain"
	vpicserv "github.com/chup1x/carmodels/internal/services/vpic"
)

type modelsFetcher interface {
	GetModels(ctx context.Context, makeID, year string) ([]vpicserv.ModelRecord, error)
}

// Page is the data behind a results page.
type Page struct {
	MakeID string                `json:"make_id"`
	Year   string                `json:"year"`
	Models []domain.VehicleModel `json:"models"`
}

type ResultService struct {
	models modelsFetcher
	log    *slog.Logger
}

func NewResultService(models modelsFetcher, log *slog.Logger) *ResultService {
	if log == nil {
		log = slog.Default()
	}
	return &ResultService{
		models: models,
		log:    log,
	}
}

// Fetch resolves the models for a route. A route missing either parameter
// yields domain.ErrNotFound; upstream failures degrade to an empty list and
// are only logged.
func (s *ResultService) Fetch(ctx context.Context, route domain.ResultRoute) (*Page, error) {
	if err := route.Validate(); err != nil {
		return nil, fmt.Errorf("to resolve result route %q: %w", route.String(), err)
	}

	page := &Page{
		MakeID: route.MakeID,
		Year:   route.Year,
		Models: []domain.VehicleModel{},
	}

	records, err := s.models.GetModels(ctx, route.MakeID, route.Year)
	if err != nil {
		s.log.ErrorContext(ctx, "error fetching vehicle models",
			"makeID", route.MakeID,
			"year", route.Year,
			"error", err,
		)
		return page, nil
	}

	for _, r := range records {
		page.Models = append(page.Models, domain.VehicleModel{ModelName: r.ModelName})
	}

	return page, nil
}
