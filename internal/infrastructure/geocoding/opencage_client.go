package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Component keys tried in order when picking a city name.
var cityComponents = []string{"city", "town", "village", "state_district", "state"}

type OpenCageClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOpenCageClient(baseURL, apiKey string, httpClient *http.Client) *OpenCageClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenCageClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type reverseResponse struct {
	Results []struct {
		Components map[string]interface{} `json:"components"`
	} `json:"results"`
}

// ReverseCity returns the lowercased city for the coordinates, or "" when the
// response carries none of the known components.
func (c *OpenCageClient) ReverseCity(ctx context.Context, lat, lon float64) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid geocoder url: %v", err)
	}
	endpoint.RawQuery = "q=" + formatCoord(lat) + "+" + formatCoord(lon) + "&key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %v", err)
	}

	if len(body.Results) == 0 {
		return "", nil
	}

	return pickCity(body.Results[0].Components), nil
}

func pickCity(components map[string]interface{}) string {
	for _, key := range cityComponents {
		v, ok := components[key].(string)
		if !ok {
			continue
		}
		if city := strings.ToLower(strings.TrimSpace(v)); city != "" {
			return city
		}
	}
	return ""
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
