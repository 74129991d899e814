// pkg/describe/generator.go
package describe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pxtown_backend/pkg/utils/area"
)

// Input carries the listing fields the generator writes from.
type Input struct {
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	DealType     string  `json:"deal_type"`
	Price        int64   `json:"price"`
	MonthlyRent  int64   `json:"monthly_rent"`
	AreaSqm      float64 `json:"area_sqm"`
	Address      string  `json:"address"`
	Region       string  `json:"region"`
	LandCategory string  `json:"land_category"`
	Zoning       string  `json:"zoning"`
	RoadFrontage string  `json:"road_frontage"`
	Shape        string  `json:"shape"`
	Terrain      string  `json:"terrain"`
}

// Result is a generated description plus where it came from: "genai"
// when the model produced it, "template" for the deterministic fallback.
type Result struct {
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Generator produces listing descriptions. With a GenAI endpoint
// configured it asks the model and falls back to the template on any
// failure; without one it renders the template directly.
type Generator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGenerator(baseURL, apiKey string) *Generator {
	return &Generator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type genaiRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type genaiResponse struct {
	Text string `json:"text"`
}

// Generate never returns an empty description.
func (g *Generator) Generate(in Input) Result {
	if g.baseURL != "" {
		if text, err := g.callGenAI(in); err == nil && strings.TrimSpace(text) != "" {
			return Result{Description: strings.TrimSpace(text), Source: "genai"}
		}
	}
	return Result{Description: Template(in), Source: "template"}
}

func (g *Generator) callGenAI(in Input) (string, error) {
	prompt := fmt.Sprintf(
		"다음 정보를 바탕으로 산업용 부동산 매물 소개글을 한 문단으로 작성해줘.\n"+
			"매물명: %s\n유형: %s %s\n지역: %s %s\n면적: %.1f㎡ (%.1f평)\n"+
			"가격: %s\n지목: %s\n용도지역: %s\n도로: %s\n형상/지세: %s %s",
		in.Title, in.Type, in.DealType, in.Region, in.Address,
		in.AreaSqm, area.SqmToPyeong(in.AreaSqm),
		area.FormatPrice(in.Price), in.LandCategory, in.Zoning,
		in.RoadFrontage, in.Shape, in.Terrain,
	)

	jsonData, err := json.Marshal(genaiRequest{Prompt: prompt, MaxTokens: 512})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", g.baseURL+"/v1/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genai API status %d", resp.StatusCode)
	}

	var payload genaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.Text, nil
}

// Template is the deterministic description assembled from the fields
// the admin already entered. Same input, same text.
func Template(in Input) string {
	pyeong := area.SqmToPyeong(in.AreaSqm)
	perPyeong := area.PricePerPyeong(in.Price, in.AreaSqm)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s에 위치한 %s %s입니다. ", in.Region, in.Address, in.Zoning, in.Type)
	fmt.Fprintf(&b, "면적 %.0f㎡(%.1f평), %s 지목. ", in.AreaSqm, pyeong, in.LandCategory)
	if in.RoadFrontage != "" {
		b.WriteString(in.RoadFrontage + ". ")
	}
	if in.DealType == "매매" {
		fmt.Fprintf(&b, "매매가 %s", area.FormatPrice(in.Price))
	} else {
		fmt.Fprintf(&b, "보증금 %s, 월세 %s", area.FormatPrice(in.Price), area.FormatPrice(in.MonthlyRent))
	}
	fmt.Fprintf(&b, ", 평당 %s. ", area.FormatPrice(perPyeong))
	if in.Shape != "" {
		fmt.Fprintf(&b, "%s 형상, ", in.Shape)
	}
	if in.Terrain != "" {
		fmt.Fprintf(&b, "%s 지형.", in.Terrain)
	}
	return strings.TrimSpace(b.String())
}
