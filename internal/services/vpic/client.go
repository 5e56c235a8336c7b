package vpicserv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/chup1x/carmodels/internal/domain"
)

const (
	DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api"

	endpointMakes  = "makes"
	endpointModels = "models"
)

// MakeRecord is one entry of GetMakesForVehicleType.
type MakeRecord struct {
	MakeID   int    `json:"MakeId"`
	MakeName string `json:"MakeName"`
}

// ModelRecord is one entry of GetModelsForMakeIdYear.
type ModelRecord struct {
	MakeID    int    `json:"Make_ID"`
	MakeName  string `json:"Make_Name"`
	ModelID   int    `json:"Model_ID"`
	ModelName string `json:"ModelName"`
}

type makesResponse struct {
	Count   int          `json:"Count"`
	Message string       `json:"Message"`
	Results []MakeRecord `json:"Results"`
}

type modelsResponse struct {
	Count   int           `json:"Count"`
	Message string        `json:"Message"`
	Results []ModelRecord `json:"Results"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetMakes lists makes of passenger cars.
func (c *Client) GetMakes(ctx context.Context) ([]MakeRecord, error) {
	addr := c.baseURL + "/vehicles/GetMakesForVehicleType/car?format=json"

	var body makesResponse
	if err := c.getJSON(ctx, endpointMakes, addr, &body); err != nil {
		return nil, fmt.Errorf("to fetch vehicle types: %w", err)
	}
	if body.Results == nil {
		return []MakeRecord{}, nil
	}

	return body.Results, nil
}

// GetModels lists models for a make identifier and model year. Both values
// are passed through as given.
func (c *Client) GetModels(ctx context.Context, makeID, year string) ([]ModelRecord, error) {
	addr := fmt.Sprintf("%s/vehicles/GetModelsForMakeIdYear/makeId/%s/modelyear/%s?format=json",
		c.baseURL, url.PathEscape(makeID), url.PathEscape(year))

	var body modelsResponse
	if err := c.getJSON(ctx, endpointModels, addr, &body); err != nil {
		return nil, fmt.Errorf("to fetch vehicle models for %s/%s: %w", makeID, year, err)
	}
	if body.Results == nil {
		return []ModelRecord{}, nil
	}

	return body.Results, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, addr string, out any) (err error) {
	start := time.Now()
	defer func() {
		observe(endpoint, start, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: to get a response: %w", domain.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: to decode a json body: %w", domain.ErrUpstream, err)
	}

	return nil
}
