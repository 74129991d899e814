// pkg/describe/generator_test.go
package describe

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleInput() Input {
	return Input{
		Title:        "화성시 팔탄면 공장",
		Type:         "공장",
		DealType:     "매매",
		Price:        25000,
		AreaSqm:      1652.9,
		Address:      "팔탄면 구장리",
		Region:       "경기",
		LandCategory: "공장용지",
		Zoning:       "계획관리",
		RoadFrontage: "6m 도로 접함",
		Shape:        "정방형",
		Terrain:      "평지",
	}
}

func TestGenerateWithGenAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"text":"모델이 작성한 매물 소개글입니다."}`))
	}))
	defer server.Close()

	g := NewGenerator(server.URL, "test-key")
	res := g.Generate(sampleInput())

	assert.Equal(t, "genai", res.Source)
	assert.Equal(t, "모델이 작성한 매물 소개글입니다.", res.Description)
}

func TestGenerateFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := NewGenerator(server.URL, "test-key")
	res := g.Generate(sampleInput())

	assert.Equal(t, "template", res.Source)
	assert.NotEmpty(t, res.Description)
}

func TestGenerateWithoutEndpoint(t *testing.T) {
	g := NewGenerator("", "")
	res := g.Generate(sampleInput())

	assert.Equal(t, "template", res.Source)
	assert.NotEmpty(t, res.Description)
}

func TestTemplateDeterministic(t *testing.T) {
	in := sampleInput()
	first := Template(in)
	second := Template(in)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "계획관리 공장입니다")
	assert.Contains(t, first, "500.0평")
	assert.Contains(t, first, "매매가 2억 5,000만")
	assert.Contains(t, first, "평당 50만")
}

func TestTemplateLease(t *testing.T) {
	in := sampleInput()
	in.DealType = "임대"
	in.Price = 5000
	in.MonthlyRent = 350

	out := Template(in)

	assert.Contains(t, out, "보증금 5,000만")
	assert.Contains(t, out, "월세 350만")
}
