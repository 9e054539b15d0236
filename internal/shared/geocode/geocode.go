package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"agri-connect/internal/shared/geo"
)

// Client resolves coordinates to place labels and back against a
// Nominatim-compatible endpoint. Lookups are best-effort: on any
// failure ReverseLabel falls back to the literal coordinate string and
// Forward falls back to the documented default coordinate. Results are
// cached because discovery views poll with the same coordinates.
type Client struct {
	endpoint string
	httpc    *http.Client
	cache    *gocache.Cache
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: 10 * time.Second},
		cache:    gocache.New(24*time.Hour, time.Hour),
	}
}

// ReverseLabel maps a coordinate to a human-readable place name.
func (c *Client) ReverseLabel(ctx context.Context, coord geo.Coordinate) string {
	key := fmt.Sprintf("rev:%.4f:%.4f", coord.Lat, coord.Lng)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(string)
	}

	label := c.reverse(ctx, coord)
	if label == "" {
		label = coord.String()
	}

	c.cache.SetDefault(key, label)
	return label
}

func (c *Client) reverse(ctx context.Context, coord geo.Coordinate) string {
	if c.endpoint == "" {
		return ""
	}

	u := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", c.endpoint, coord.Lat, coord.Lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ""
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var out struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ""
	}
	return out.DisplayName
}

// Forward maps a place name to a coordinate. When the lookup fails the
// default coordinate is returned with ok=false so callers can decide
// whether to accept the fallback.
func (c *Client) Forward(ctx context.Context, place string) (geo.Coordinate, bool) {
	key := "fwd:" + place
	if cached, ok := c.cache.Get(key); ok {
		return cached.(geo.Coordinate), true
	}

	coord, ok := c.forward(ctx, place)
	if !ok {
		return geo.DefaultCoordinate, false
	}

	c.cache.SetDefault(key, coord)
	return coord, true
}

func (c *Client) forward(ctx context.Context, place string) (geo.Coordinate, bool) {
	if c.endpoint == "" || place == "" {
		return geo.Coordinate{}, false
	}

	u := fmt.Sprintf("%s/search?format=jsonv2&limit=1&q=%s", c.endpoint, url.QueryEscape(place))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return geo.Coordinate{}, false
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return geo.Coordinate{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Coordinate{}, false
	}

	var out []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out) == 0 {
		return geo.Coordinate{}, false
	}

	var coord geo.Coordinate
	if _, err := fmt.Sscanf(out[0].Lat, "%f", &coord.Lat); err != nil {
		return geo.Coordinate{}, false
	}
	if _, err := fmt.Sscanf(out[0].Lon, "%f", &coord.Lng); err != nil {
		return geo.Coordinate{}, false
	}
	if !coord.Valid() {
		return geo.Coordinate{}, false
	}

	return coord, true
}
