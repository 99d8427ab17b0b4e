package address

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://vapi.vnappmob.com/api/v2/province/"
	requestTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

type provinceDTO struct {
	ID   string `json:"province_id"`
	Name string `json:"province_name"`
	Type string `json:"province_type"`
}

type districtDTO struct {
	ID   string `json:"district_id"`
	Name string `json:"district_name"`
}

type wardDTO struct {
	ID   string `json:"ward_id"`
	Name string `json:"ward_name"`
}

type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

// VNAppMobClient reads the Vietnamese province/district/ward directory from
// the VNAppMob v2 API.
//
// Supported env vars:
//   - ADDRESS_API_BASE_URL (default: https://vapi.vnappmob.com/api/v2/province/)
//
// The base URL keeps its trailing slash; without it the API answers with a
// redirect to plain HTTP.
type VNAppMobClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IAddressLookup = (*VNAppMobClient)(nil)

func NewVNAppMobClient(baseURL string, httpClient *http.Client) *VNAppMobClient {
	if baseURL == "" {
		baseURL = os.Getenv("ADDRESS_API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &VNAppMobClient{baseURL: baseURL, client: httpClient}
}

func (c *VNAppMobClient) Provinces(ctx context.Context) ([]entities.Region, error) {
	var env resultsEnvelope[provinceDTO]
	if err := c.get(ctx, "", &env); err != nil {
		return nil, err
	}
	out := make([]entities.Region, 0, len(env.Results))
	for _, p := range env.Results {
		out = append(out, entities.Region{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (c *VNAppMobClient) Districts(ctx context.Context, provinceID string) ([]entities.Region, error) {
	var env resultsEnvelope[districtDTO]
	if err := c.get(ctx, "district/"+url.PathEscape(provinceID), &env); err != nil {
		return nil, err
	}
	out := make([]entities.Region, 0, len(env.Results))
	for _, d := range env.Results {
		out = append(out, entities.Region{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (c *VNAppMobClient) Wards(ctx context.Context, districtID string) ([]entities.Region, error) {
	var env resultsEnvelope[wardDTO]
	if err := c.get(ctx, "ward/"+url.PathEscape(districtID), &env); err != nil {
		return nil, err
	}
	out := make([]entities.Region, 0, len(env.Results))
	for _, w := range env.Results {
		out = append(out, entities.Region{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

func (c *VNAppMobClient) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TheCodeCup")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("address api %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("address api %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("address api %s: decode: %w", path, err)
	}
	return nil
}
