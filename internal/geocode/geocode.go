// Package geocode resolves coordinates to a locality name through the
// OpenStreetMap Nominatim reverse-geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Client queries a Nominatim-compatible reverse-geocoding endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a geocoding client. An empty baseURL selects the public
// Nominatim instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		userAgent:  "findly/1.0",
	}
}

type reverseResponse struct {
	Address struct {
		City   string `json:"city"`
		Town   string `json:"town"`
		County string `json:"county"`
	} `json:"address"`
}

// Locality returns a human-readable name for the coordinates, preferring
// city, then town, then county. Callers should fall back to CoordinateLabel
// on error; a geocoding failure is never fatal.
func (c *Client) Locality(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding: unexpected status %d", resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding reverse geocode response: %w", err)
	}

	switch {
	case decoded.Address.City != "":
		return decoded.Address.City, nil
	case decoded.Address.Town != "":
		return decoded.Address.Town, nil
	case decoded.Address.County != "":
		return decoded.Address.County, nil
	}
	return CoordinateLabel(lat, lon), nil
}

// CoordinateLabel is the fallback display name for coordinates that could
// not be resolved.
func CoordinateLabel(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}
