// pkg/geocode/kakao.go
package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultAPIBase = "https://dapi.kakao.com"

// Coordinates is a WGS84 point for the detail-page radius map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Client resolves district-level addresses through the Kakao local API.
// Detail pages only ever geocode the masked (parcel-stripped) address.
type Client struct {
	restKey string
	apiBase string
	client  *http.Client
}

func NewClient(restKey string) *Client {
	return &Client{
		restKey: restKey,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientWithBase(restKey, apiBase string) *Client {
	c := NewClient(restKey)
	c.apiBase = apiBase
	return c
}

// Enabled reports whether a REST key is configured. Without one the map
// degrades to a placeholder, not an error.
func (c *Client) Enabled() bool {
	return c.restKey != ""
}

type kakaoAddressResponse struct {
	Documents []struct {
		X string `json:"x"` // longitude
		Y string `json:"y"` // latitude
	} `json:"documents"`
}

// Resolve returns coordinates for an address, or (nil, nil) when the
// address is unknown or the service is unreachable.
func (c *Client) Resolve(addr string) (*Coordinates, error) {
	if !c.Enabled() || addr == "" {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s/v2/local/search/address.json?query=%s", c.apiBase, url.QueryEscape(addr))
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var payload kakaoAddressResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil
	}
	if len(payload.Documents) == 0 {
		return nil, nil
	}

	lng, errX := strconv.ParseFloat(payload.Documents[0].X, 64)
	lat, errY := strconv.ParseFloat(payload.Documents[0].Y, 64)
	if errX != nil || errY != nil {
		return nil, nil
	}

	return &Coordinates{Lat: lat, Lng: lng}, nil
}
