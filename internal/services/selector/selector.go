package selectorserv

import (
	"context"
	"time"

	"github.com/chup1x/carmodels/internal/domain"
	vpicserv "github.com/chup1x/carmodels/internal/services/vpic"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	default:
		return "loading"
	}
}

type makesFetcher interface {
	GetMakes(ctx context.Context) ([]vpicserv.MakeRecord, error)
}

// Page is the state of the selector page. The zero value is loading.
type Page struct {
	Phase        Phase
	VehicleTypes []domain.VehicleType
	Years        []int
	Error        string
	Selection    domain.Selection
}

func (p *Page) Settled() bool { return p.Phase != PhaseLoading }

func (p *Page) Failed() bool { return p.Phase == PhaseFailed }

// CanNavigate mirrors the enabled state of the forward action.
func (p *Page) CanNavigate() bool {
	return p.Phase == PhaseReady && p.Selection.Ready()
}

type SelectorService struct {
	makes makesFetcher
	Now   func() time.Time
}

func NewSelectorService(makes makesFetcher) *SelectorService {
	return &SelectorService{
		makes: makes,
		Now:   time.Now,
	}
}

// Load issues the single makes request and settles the page.
func (s *SelectorService) Load(ctx context.Context) *Page {
	page := &Page{}

	records, err := s.makes.GetMakes(ctx)
	if err != nil {
		page.Phase = PhaseFailed
		page.Error = err.Error()
		return page
	}

	page.VehicleTypes = make([]domain.VehicleType, 0, len(records))
	for _, r := range records {
		page.VehicleTypes = append(page.VehicleTypes, r.MakeName)
	}
	page.Years = domain.Years(s.Now())
	page.Phase = PhaseReady

	return page
}
