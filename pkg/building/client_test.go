// pkg/building/client_test.go
package building

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const ledgerFixture = `{
  "response": {
    "body": {
      "items": {
        "item": {
          "bldNm": "팔탄제1공장",
          "mainPurpsCdNm": "공장",
          "grndFlrCnt": "2",
          "ugrndFlrCnt": "0",
          "totArea": "1820.5",
          "archArea": "950.25",
          "platArea": "3305.8",
          "vlRat": "55.07",
          "bcRat": "28.75",
          "useAprDay": "20180412",
          "vlRatEstmTot": "",
          "mainStrctCdNm": "일반철골구조"
        }
      }
    }
  }
}`

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getBrRecapTitleInfo", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "41590", q.Get("sigunguCd"))
		assert.Equal(t, "0123", q.Get("bun"))
		assert.Equal(t, "0004", q.Get("ji"))
		assert.Equal(t, "json", q.Get("_type"))
		w.Write([]byte(ledgerFixture))
	}))
	defer server.Close()

	c := NewClientWithBase("test-key", server.URL)
	info, raw, err := c.Lookup("41590", "25621", "123", "4")

	assert.NoError(t, err)
	assert.NotNil(t, info)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "팔탄제1공장", info.BuildingName)
	assert.Equal(t, 2, info.GroundFloorCount)
	assert.Equal(t, 1820.5, info.TotalArea)
	assert.Equal(t, "20180412", info.UseApprovalDate)
	assert.False(t, info.IllegalBuilding)
	assert.Equal(t, "일반철골구조", info.StructureName)
}

func TestLookupArrayPayload(t *testing.T) {
	payload := `{"response":{"body":{"items":{"item":[{"bldNm":"제2창고","vlRatEstmTot":"위반"}]}}}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := NewClientWithBase("test-key", server.URL)
	info, _, err := c.Lookup("41590", "25621", "55", "")

	assert.NoError(t, err)
	assert.NotNil(t, info)
	assert.Equal(t, "제2창고", info.BuildingName)
	assert.True(t, info.IllegalBuilding)
}

func TestLookupNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"body":{"items":{}}}}`))
	}))
	defer server.Close()

	c := NewClientWithBase("test-key", server.URL)
	info, raw, err := c.Lookup("41590", "25621", "9999", "0")

	assert.NoError(t, err)
	assert.Nil(t, info)
	assert.Empty(t, raw)
}

func TestLookupServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClientWithBase("test-key", server.URL)
	info, _, err := c.Lookup("41590", "25621", "1", "0")

	// transport failure degrades to "no data", never an error
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestLookupDisabledWithoutKey(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Enabled())

	info, _, err := c.Lookup("41590", "25621", "1", "0")
	assert.NoError(t, err)
	assert.Nil(t, info)
}
