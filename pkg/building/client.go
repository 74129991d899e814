// pkg/building/client.go
package building

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIBase = "https://apis.data.go.kr/1613000/BldRgstHubService"

// Info is the subset of the building-ledger record the register form
// consumes.
type Info struct {
	BuildingName          string  `json:"building_name"`
	MainPurposeName       string  `json:"main_purpose_name"`
	GroundFloorCount      int     `json:"ground_floor_count"`
	UndergroundFloorCount int     `json:"underground_floor_count"`
	TotalArea             float64 `json:"total_area"`
	BuildingArea          float64 `json:"building_area"`
	PlotArea              float64 `json:"plot_area"`
	FloorAreaRatio        float64 `json:"floor_area_ratio"`
	BuildingCoverageRatio float64 `json:"building_coverage_ratio"`
	UseApprovalDate       string  `json:"use_approval_date"`
	IllegalBuilding       bool    `json:"illegal_building"`
	StructureName         string  `json:"structure_name"`
}

// Client queries the national building ledger (건축물대장 총괄표제부).
type Client struct {
	serviceKey string
	apiBase    string
	client     *http.Client
}

func NewClient(serviceKey string) *Client {
	return &Client{
		serviceKey: serviceKey,
		apiBase:    defaultAPIBase,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBase is used by tests to point at a stub server.
func NewClientWithBase(serviceKey, apiBase string) *Client {
	c := NewClient(serviceKey)
	c.apiBase = apiBase
	return c
}

// Enabled reports whether a service key is configured.
func (c *Client) Enabled() bool {
	return c.serviceKey != ""
}

// ledger payloads arrive with every numeric field as a string; items may
// be a single object or an array depending on row count.
type ledgerResponse struct {
	Response struct {
		Body struct {
			Items struct {
				Item json.RawMessage `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type ledgerRow struct {
	BldNm         string `json:"bldNm"`
	MainPurpsCdNm string `json:"mainPurpsCdNm"`
	GrndFlrCnt    string `json:"grndFlrCnt"`
	UgrndFlrCnt   string `json:"ugrndFlrCnt"`
	TotArea       string `json:"totArea"`
	ArchArea      string `json:"archArea"`
	PlatArea      string `json:"platArea"`
	VlRat         string `json:"vlRat"`
	BcRat         string `json:"bcRat"`
	UseAprDay     string `json:"useAprDay"`
	VlRatEstmTot  string `json:"vlRatEstmTot"`
	MainStrctCdNm string `json:"mainStrctCdNm"`
}

// Lookup fetches the recap title record for a parcel. A parcel the ledger
// does not know, or any transport failure, yields (nil, nil): the caller
// renders "no data" instead of failing the form.
func (c *Client) Lookup(sigunguCd, bjdongCd, bun, ji string) (*Info, json.RawMessage, error) {
	if !c.Enabled() {
		return nil, nil, nil
	}

	params := url.Values{}
	params.Set("serviceKey", c.serviceKey)
	params.Set("sigunguCd", sigunguCd)
	params.Set("bjdongCd", bjdongCd)
	params.Set("platGbCd", "0")
	params.Set("bun", padLot(bun))
	params.Set("ji", padLot(ji))
	params.Set("_type", "json")
	params.Set("numOfRows", "10")
	params.Set("pageNo", "1")

	reqURL := fmt.Sprintf("%s/getBrRecapTitleInfo?%s", c.apiBase, params.Encode())
	resp, err := c.client.Get(reqURL)
	if err != nil {
		return nil, nil, nil
	}
	defer resp.Body.Close()

	var payload ledgerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, nil
	}

	raw := payload.Response.Body.Items.Item
	row, ok := firstRow(raw)
	if !ok {
		return nil, nil, nil
	}

	info := &Info{
		BuildingName:          row.BldNm,
		MainPurposeName:       row.MainPurpsCdNm,
		GroundFloorCount:      parseInt(row.GrndFlrCnt),
		UndergroundFloorCount: parseInt(row.UgrndFlrCnt),
		TotalArea:             parseFloat(row.TotArea),
		BuildingArea:          parseFloat(row.ArchArea),
		PlotArea:              parseFloat(row.PlatArea),
		FloorAreaRatio:        parseFloat(row.VlRat),
		BuildingCoverageRatio: parseFloat(row.BcRat),
		UseApprovalDate:       row.UseAprDay,
		IllegalBuilding:       row.VlRatEstmTot == "위반",
		StructureName:         row.MainStrctCdNm,
	}
	return info, raw, nil
}

func firstRow(raw json.RawMessage) (ledgerRow, bool) {
	var row ledgerRow
	if len(raw) == 0 {
		return row, false
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var rows []ledgerRow
		if err := json.Unmarshal(raw, &rows); err != nil || len(rows) == 0 {
			return row, false
		}
		return rows[0], true
	}
	if err := json.Unmarshal(raw, &row); err != nil {
		return row, false
	}
	return row, true
}

// padLot zero-pads a lot number to the four digits the ledger expects;
// an empty sub-lot becomes "0000".
func padLot(lot string) string {
	if lot == "" {
		lot = "0"
	}
	for len(lot) < 4 {
		lot = "0" + lot
	}
	return lot
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
